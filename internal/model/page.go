package model

// Page is a single row of the URLs input file.
type Page struct {
	// RawURL is the url column exactly as read from the file.
	// The liveness probe uses it because the cleaned URL is relative.
	RawURL string `json:"raw_url"`

	// URL is the cleaned, site-relative path (e.g. "/p/paris").
	// Empty until the normalize step has run.
	URL string `json:"url"`

	// Locale is the optional locale column (e.g. "fr-FR").
	Locale string `json:"locale,omitempty"`
}

// BoosterRow is a single row of an SEO booster input file.
type BoosterRow struct {
	// Label is the anchor text of the link.
	Label string `json:"label"`

	// URL is the link target. Cleaned in place by the normalize step.
	URL string `json:"url"`

	// Title is the title of the booster block. Only the first row's
	// title is used.
	Title string `json:"title,omitempty"`
}

// BoosterList is the content of one SEO booster input file.
type BoosterList struct {
	// Rows are the file rows in file order.
	Rows []BoosterRow `json:"rows"`
}

// Len returns the number of rows in the list.
func (b BoosterList) Len() int {
	return len(b.Rows)
}

// FirstTitle returns the title column of the first row, or "" when
// the list is empty.
func (b BoosterList) FirstTitle() string {
	if len(b.Rows) == 0 {
		return ""
	}
	return b.Rows[0].Title
}
