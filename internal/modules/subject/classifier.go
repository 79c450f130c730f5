package subject

import "strings"

var (
	photoKeywords = []string{
		"photo", "photography", "camera", "lens", "exposure", "aperture",
		"iso", "composition", "lighting", "portrait", "landscape",
	}
	filmKeywords = []string{
		"film", "cinema", "director", "directing", "movie", "screenplay",
		"cinematography", "editing", "production", "script",
	}
	mathKeywords = []string{
		"math", "mathematics", "algebra", "calculus", "geometry",
		"statistics", "equation", "formula", "theorem", "proof",
		"integral", "derivative",
	}
)

// Detect classifies a message by counting distinct keyword hits per subject.
// The branch order is load-bearing: a photography/film tie resolves to
// film_directing because the photography branch requires a strict majority
// over both others while the film branch only has to beat math. Do not "fix"
// it, clients depend on the existing routing.
func Detect(message string) Subject {
	lower := strings.ToLower(message)

	photoScore := scoreKeywords(lower, photoKeywords)
	filmScore := scoreKeywords(lower, filmKeywords)
	mathScore := scoreKeywords(lower, mathKeywords)

	switch {
	case photoScore > filmScore && photoScore > mathScore:
		return Photography
	case filmScore > mathScore:
		return FilmDirecting
	case mathScore > 0:
		return Mathematics
	default:
		return Default
	}
}

func scoreKeywords(lower string, keywords []string) int {
	score := 0
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			score++
		}
	}
	return score
}
