package subject

import (
	"fmt"
	"strings"

	"github.com/study-space/core/internal/models"
)

const basePrompt = `You are an educational assistant specializing in providing factual, unbiased information for Year 11 and Year 12 students. Your role is to:

1. Provide accurate, educational content appropriate for senior high school level
2. Always maintain objectivity and avoid bias
3. Reference trusted university sources when possible
4. Explain concepts clearly and progressively
5. Encourage critical thinking and deeper understanding

`

const photographyPrompt = `You are particularly knowledgeable about:
- Photography techniques and composition
- Camera settings and equipment
- History of photography
- Visual storytelling and artistic expression
- Technical aspects of image creation`

const filmDirectingPrompt = `You are particularly knowledgeable about:
- Film directing techniques and theory
- Cinematography and visual storytelling
- Film history and analysis
- Production processes and workflows
- Media studies and criticism`

const mathematicsPrompt = `You are particularly knowledgeable about:
- Mathematical concepts and problem-solving
- Algebra, calculus, and geometry
- Statistical analysis and data interpretation
- Mathematical proofs and reasoning
- Real-world applications of mathematics`

const genericPrompt = "You provide comprehensive educational support across multiple subjects."

const citationReminder = "\n\nAlways cite sources when referencing specific information from universities."

// BuildSystemPrompt assembles the system prompt sent to the provider:
// preamble, subject expertise paragraph, source list, citation reminder.
// Deterministic for a given subject and source list.
func BuildSystemPrompt(s Subject, sources []models.Source) string {
	var b strings.Builder
	b.WriteString(basePrompt)

	switch s {
	case Photography:
		b.WriteString(photographyPrompt)
	case FilmDirecting:
		b.WriteString(filmDirectingPrompt)
	case Mathematics:
		b.WriteString(mathematicsPrompt)
	default:
		b.WriteString(genericPrompt)
	}

	b.WriteString("\n\nRefer to these trusted university sources when relevant:\n")
	for _, src := range sources {
		fmt.Fprintf(&b, "- %s (%s): %s\n", src.Name, src.Department, src.URL)
	}
	b.WriteString(citationReminder)

	return b.String()
}
