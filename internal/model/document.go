package model

// Operation names understood by the CMS migration runner.
const (
	// OpReplace replaces the value found at Path.
	OpReplace = "replace"
)

// Filter property names used by the per-page predicate.
const (
	FilterPages       = "pages"
	FilterComponents  = "components"
	FilterSEOBoosters = "seoBoosters"
	FilterPropertyURL = "url"
)

// Document is the migration document written to seo_boosters_<locale>.json.
// Field order matches the order the CMS tooling emits.
type Document struct {
	// ID is "<YYYYMMDDHHMM>-Replace_seoBoosters-<locale>".
	ID string `json:"id"`

	// Locales lists the locales the migration applies to.
	Locales []string `json:"locales"`

	// Migrations holds one block per page.
	Migrations []Migration `json:"migrations"`

	// ContentID is the CMS content identifier (e.g. "dcx").
	ContentID string `json:"contentId"`
}

// Migration is a single migration block.
type Migration struct {
	Iterate Iterate `json:"$iterate"`
}

// Iterate selects CMS records with Filters and applies Migrate to each.
type Iterate struct {
	Filters []Filter    `json:"filters"`
	Migrate []Operation `json:"$migrate"`
}

// Filter is one predicate of an $iterate block. Exactly one of Has and
// Match is set.
type Filter struct {
	Has   string `json:"has,omitempty"`
	Match *Match `json:"match,omitempty"`
}

// Match selects records whose Property equals Value.
type Match struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

// HasFilter returns a filter matching records that contain name.
func HasFilter(name string) Filter {
	return Filter{Has: name}
}

// MatchFilter returns a filter matching records whose property equals value.
func MatchFilter(property, value string) Filter {
	return Filter{Match: &Match{Property: property, Value: value}}
}

// Operation is a JSON-patch style operation.
// Value is either a string (titles) or a []Link (link lists).
type Operation struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value"`
}

// Link is one entry of a seoBoosters link list.
type Link struct {
	Label    string       `json:"label"`
	URL      string       `json:"url"`
	Metadata LinkMetadata `json:"@metadata"`
}

// LinkMetadata carries the CMS type discriminator of a link.
type LinkMetadata struct {
	Type string `json:"type"`
}

// PageURL returns the page URL matched by the migration block, or ""
// when the block has no match filter.
func (m Migration) PageURL() string {
	for _, f := range m.Iterate.Filters {
		if f.Match != nil && f.Match.Property == FilterPropertyURL {
			return f.Match.Value
		}
	}
	return ""
}
