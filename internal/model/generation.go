package model

import "time"

// BoosterCount is the number of seoBoosters slots on a CMS page.
const BoosterCount = 2

// RecommendedBoosterLinks is the number of rows a booster file should
// have for the CMS component to be fully populated.
const RecommendedBoosterLinks = 23

// Exclusion records a page dropped before the build step.
type Exclusion struct {
	// URL is the raw page URL.
	URL string `json:"url"`

	// Reason is a short human readable reason, e.g. "status 404".
	Reason string `json:"reason"`

	// StatusCode is the HEAD status when a response was received.
	StatusCode int `json:"status_code,omitempty"`
}

// Generation is the state threaded through the generation pipeline.
// Steps read the inputs and fill in the derived fields.
type Generation struct {
	// Locale is the requested locale (e.g. "fr-FR").
	Locale string `json:"locale"`

	// StartedAt is when the generation began.
	StartedAt time.Time `json:"started_at"`

	// Pages are the rows of the URLs file. The probe step removes
	// pages that are not live.
	Pages []Page `json:"pages"`

	// HasLocaleColumn reports whether the URLs file has a locale column.
	HasLocaleColumn bool `json:"has_locale_column"`

	// AvailableLocales are the distinct locale column values in order of
	// first appearance.
	AvailableLocales []string `json:"available_locales,omitempty"`

	// Boosters are the two booster lists, index 0 and 1.
	Boosters [BoosterCount]BoosterList `json:"boosters"`

	// Titles are the derived booster titles, set by the build step.
	Titles [BoosterCount]string `json:"titles"`

	// Excluded are pages dropped by the probe step.
	Excluded []Exclusion `json:"excluded,omitempty"`

	// ForeignURLs are absolute URLs that do not point at the brand domain
	// and were therefore left untouched by normalization.
	ForeignURLs []string `json:"foreign_urls,omitempty"`

	// Document is the generated migration document.
	Document *Document `json:"document,omitempty"`

	// PerformedSteps lists the names of the steps that ran.
	PerformedSteps []string `json:"performed_steps"`

	// Error is the last step error, if any.
	Error error `json:"-"`

	// ErrorMessage is Error as a string, for serialization.
	ErrorMessage string `json:"error,omitempty"`
}

// NewGeneration creates a Generation for the given locale.
func NewGeneration(locale string) *Generation {
	return &Generation{
		Locale:         locale,
		StartedAt:      time.Now(),
		Pages:          make([]Page, 0),
		Excluded:       make([]Exclusion, 0),
		PerformedSteps: make([]string, 0),
	}
}

// AddExclusion records an excluded page.
func (g *Generation) AddExclusion(e Exclusion) {
	g.Excluded = append(g.Excluded, e)
}

// Summary is a condensed view of a Generation used by the report writers.
type Summary struct {
	DocumentID  string               `json:"document_id"`
	Locale      string               `json:"locale"`
	GeneratedAt time.Time            `json:"generated_at"`
	InputPages  int                  `json:"input_pages"`
	Migrations  int                  `json:"migrations"`
	Excluded    []Exclusion          `json:"excluded"`
	ForeignURLs []string             `json:"foreign_urls"`
	Titles      [BoosterCount]string `json:"titles"`
	LinkCounts  [BoosterCount]int    `json:"link_counts"`
	OutputPath  string               `json:"output_path,omitempty"`
	Digest      string               `json:"digest,omitempty"`
}

// NewSummary builds a Summary from a finished Generation.
func NewSummary(g *Generation) *Summary {
	s := &Summary{
		Locale:      g.Locale,
		GeneratedAt: g.StartedAt,
		InputPages:  len(g.Pages) + len(g.Excluded),
		Excluded:    g.Excluded,
		ForeignURLs: g.ForeignURLs,
		Titles:      g.Titles,
	}
	for i := range g.Boosters {
		s.LinkCounts[i] = g.Boosters[i].Len()
	}
	if g.Document != nil {
		s.DocumentID = g.Document.ID
		s.Migrations = len(g.Document.Migrations)
	}
	return s
}

// ShortBoosters returns the indexes of the booster lists with fewer rows
// than RecommendedBoosterLinks.
func (s *Summary) ShortBoosters() []int {
	short := make([]int, 0, BoosterCount)
	for i, n := range s.LinkCounts {
		if n < RecommendedBoosterLinks {
			short = append(short, i)
		}
	}
	return short
}
