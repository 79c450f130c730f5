// Package subject routes student messages to a teaching subject and carries
// the per-subject model and university source catalog.
package subject

import "strings"

// Subject is a canonical subject identifier, always lowercase.
type Subject string

const (
	Photography   Subject = "photography"
	FilmDirecting Subject = "film_directing"
	Media         Subject = "media"
	Mathematics   Subject = "mathematics"
	Default       Subject = "default"
)

// Normalize maps free-form input to the canonical form. It does not validate:
// unknown subjects pass through lowercased and resolve to the default model.
func Normalize(raw string) Subject {
	return Subject(strings.ToLower(strings.TrimSpace(raw)))
}

func (s Subject) String() string { return string(s) }
