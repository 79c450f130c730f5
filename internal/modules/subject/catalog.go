package subject

import "github.com/study-space/core/internal/models"

// maxSources caps how many curated sources feed the system prompt and the
// stored exchange record. The full list stays available via ResourcesFor.
const maxSources = 5

// ModelDescriptor identifies the provider and model serving a subject.
type ModelDescriptor struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

// Name returns the "provider/model" form recorded on stored exchanges.
func (d ModelDescriptor) Name() string { return d.Provider + "/" + d.Model }

var aiModels = map[Subject]ModelDescriptor{
	Photography:   {Provider: "anthropic", Model: "claude-sonnet-4-20250514"},
	FilmDirecting: {Provider: "gemini", Model: "gemini-2.0-flash"},
	Media:         {Provider: "gemini", Model: "gemini-2.0-flash"},
	Mathematics:   {Provider: "openai", Model: "gpt-4o"},
	Default:       {Provider: "openai", Model: "gpt-4o"},
}

// universityResources is the curated per-subject catalog, in display priority
// order; only the top maxSources entries are ever served. Media has a model
// route but no curated list, so it is intentionally absent here.
var universityResources = map[Subject][]models.Source{
	Photography: {
		{Name: "Harvard University", URL: "https://www.harvard.edu", Department: "Visual and Environmental Studies"},
		{Name: "Oxford University", URL: "https://www.ox.ac.uk", Department: "Ruskin School of Art"},
		{Name: "Stanford University", URL: "https://www.stanford.edu", Department: "Art & Art History"},
		{Name: "MIT", URL: "https://www.mit.edu", Department: "Architecture"},
		{Name: "Yale University", URL: "https://www.yale.edu", Department: "School of Art"},
		{Name: "ANU", URL: "https://www.anu.edu.au", Department: "School of Art & Design"},
		{Name: "Cambridge University", URL: "https://www.cam.ac.uk", Department: "History of Art"},
		{Name: "UCLA", URL: "https://www.ucla.edu", Department: "Arts and Architecture"},
		{Name: "NYU", URL: "https://www.nyu.edu", Department: "Tisch School of the Arts"},
		{Name: "Columbia University", URL: "https://www.columbia.edu", Department: "School of the Arts"},
		{Name: "Princeton University", URL: "https://www.princeton.edu", Department: "Art and Archaeology"},
		{Name: "University of Edinburgh", URL: "https://www.ed.ac.uk", Department: "Edinburgh College of Art"},
		{Name: "Royal College of Art", URL: "https://www.rca.ac.uk", Department: "Photography"},
	},
	FilmDirecting: {
		{Name: "USC", URL: "https://www.usc.edu", Department: "School of Cinematic Arts"},
		{Name: "NYU", URL: "https://www.nyu.edu", Department: "Tisch School of the Arts"},
		{Name: "UCLA", URL: "https://www.ucla.edu", Department: "School of Theater, Film and Television"},
		{Name: "AFI", URL: "https://www.afi.com", Department: "American Film Institute"},
		{Name: "Columbia University", URL: "https://www.columbia.edu", Department: "School of the Arts"},
		{Name: "Harvard University", URL: "https://www.harvard.edu", Department: "Visual and Environmental Studies"},
		{Name: "Yale University", URL: "https://www.yale.edu", Department: "School of Drama"},
		{Name: "Stanford University", URL: "https://www.stanford.edu", Department: "Film Studies"},
		{Name: "ANU", URL: "https://www.anu.edu.au", Department: "School of Art & Design"},
		{Name: "Cambridge University", URL: "https://www.cam.ac.uk", Department: "Film Studies"},
		{Name: "Oxford University", URL: "https://www.ox.ac.uk", Department: "Film Studies"},
		{Name: "Northwestern University", URL: "https://www.northwestern.edu", Department: "Radio/Television/Film"},
		{Name: "University of Edinburgh", URL: "https://www.ed.ac.uk", Department: "Film Studies"},
	},
	Mathematics: {
		{Name: "MIT", URL: "https://www.mit.edu", Department: "Mathematics"},
		{Name: "Harvard University", URL: "https://www.harvard.edu", Department: "Mathematics"},
		{Name: "Stanford University", URL: "https://www.stanford.edu", Department: "Mathematics"},
		{Name: "Princeton University", URL: "https://www.princeton.edu", Department: "Mathematics"},
		{Name: "Cambridge University", URL: "https://www.cam.ac.uk", Department: "Mathematics"},
		{Name: "Oxford University", URL: "https://www.ox.ac.uk", Department: "Mathematics"},
		{Name: "Caltech", URL: "https://www.caltech.edu", Department: "Mathematics"},
		{Name: "Yale University", URL: "https://www.yale.edu", Department: "Mathematics"},
		{Name: "Columbia University", URL: "https://www.columbia.edu", Department: "Mathematics"},
		{Name: "ANU", URL: "https://www.anu.edu.au", Department: "Mathematical Sciences Institute"},
		{Name: "University of Chicago", URL: "https://www.uchicago.edu", Department: "Mathematics"},
		{Name: "UC Berkeley", URL: "https://www.berkeley.edu", Department: "Mathematics"},
		{Name: "Imperial College London", URL: "https://www.imperial.ac.uk", Department: "Mathematics"},
	},
}

// ModelFor resolves the model descriptor for a subject, falling back to the
// default route for unknown subjects.
func ModelFor(s Subject) ModelDescriptor {
	if desc, ok := aiModels[s]; ok {
		return desc
	}
	return aiModels[Default]
}

// SourcesFor returns the top curated sources for a subject, at most
// maxSources, in catalog order. Subjects without a curated list get an
// empty slice.
func SourcesFor(s Subject) []models.Source {
	catalog, ok := universityResources[s]
	if !ok {
		return []models.Source{}
	}
	n := len(catalog)
	if n > maxSources {
		n = maxSources
	}
	out := make([]models.Source, n)
	copy(out, catalog[:n])
	return out
}

// ResourcesFor returns the top curated entries for a subject, capped at
// maxSources like SourcesFor, each tagged with the subject it belongs to.
// ok is false when no list exists.
func ResourcesFor(s Subject) ([]models.UniversityResource, bool) {
	catalog, ok := universityResources[s]
	if !ok {
		return nil, false
	}
	n := len(catalog)
	if n > maxSources {
		n = maxSources
	}
	out := make([]models.UniversityResource, n)
	for i, src := range catalog[:n] {
		out[i] = models.UniversityResource{
			Name:       src.Name,
			URL:        src.URL,
			Department: src.Department,
			Subject:    s.String(),
		}
	}
	return out, true
}
