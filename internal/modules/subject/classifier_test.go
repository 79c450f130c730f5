package subject

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Subject
	}{
		{
			name:    "no keywords returns default",
			message: "tell me about ancient history",
			want:    Default,
		},
		{
			name:    "photography keywords win outright",
			message: "what aperture and iso should I set on my camera",
			want:    Photography,
		},
		{
			name:    "film keywords win outright",
			message: "how does a director approach editing and production",
			want:    FilmDirecting,
		},
		{
			name:    "single math keyword is enough",
			message: "Explain derivatives",
			want:    Mathematics,
		},
		{
			name:    "case insensitive",
			message: "HELP ME WITH CALCULUS",
			want:    Mathematics,
		},
		{
			name:    "keyword matches as substring",
			message: "photographic principles",
			want:    Photography,
		},
		{
			name:    "repeated keyword counts once",
			message: "film film film versus equation theorem",
			want:    Mathematics,
		},
		{
			name:    "empty message returns default",
			message: "",
			want:    Default,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.message))
		})
	}
}

// A photography/film tie must resolve to film_directing: the photography
// branch requires a strict majority, the film branch does not.
func TestDetectTieBreakFavorsFilm(t *testing.T) {
	// camera + lens vs film + cinema: 2-2-0
	msg := "camera lens film cinema"
	assert.Equal(t, FilmDirecting, Detect(msg))
}

func TestDetectFilmMathTieFavorsMath(t *testing.T) {
	// film vs equation: 1-1 means film > math is false, math > 0 fires
	msg := "film equation"
	assert.Equal(t, Mathematics, Detect(msg))
}

func TestDetectDeterministic(t *testing.T) {
	msg := "screenplay lighting statistics"
	first := Detect(msg)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Detect(msg))
	}
}
