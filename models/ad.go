package models

// AdDetail is the full record extracted from a single ad page.
//
// Every field is independently defaulted: a failed DOM read for one field
// leaves the others intact, so a returned AdDetail always has all fields
// populated with either real data or its documented default.
type AdDetail struct {
	// ID is the site's ad identifier. Falls back to the trailing numeric
	// path segment of the URL, then to an error sentinel.
	ID string `json:"id"`

	// Categories is the breadcrumb trail, outermost first. Never nil.
	Categories []string `json:"categories"`

	// Title is the ad title with any "location • category • " prefix removed.
	Title string `json:"title"`

	// Price is the normalized price string ("" when absent).
	Price string `json:"price"`

	// Shipping is true iff a shipping-info element is present and non-empty.
	Shipping bool `json:"shipping"`

	// Location is the human-readable location string ("" on failure).
	Location string `json:"location"`

	// Views is the view counter, "0" when absent.
	Views string `json:"views"`

	// Description has runs of spaces/tabs collapsed to one space and runs
	// of newlines collapsed to one newline.
	Description string `json:"description"`

	// Images holds gallery image URLs. Never nil.
	Images []string `json:"images"`

	// Details, Features and ExtraInfo are key-value attribute blocks,
	// empty (never nil) when the containing DOM section is absent.
	Details  map[string]string `json:"details"`
	Features map[string]string `json:"features"`

	// Seller holds seller-related fields (name, type, active_since, …).
	Seller map[string]string `json:"seller"`

	ExtraInfo map[string]string `json:"extra_info"`
}

// AdSummary is the compact record extracted from one listing card on a
// search-results page. Cards missing AdID or URL are dropped before they
// ever become an AdSummary.
type AdSummary struct {
	// AdID is the card's data-adid attribute. Required.
	AdID string `json:"adid"`

	// URL is the absolute ad URL (site origin + data-href). Required.
	URL string `json:"url"`

	Title       string `json:"title"`
	Price       string `json:"price"`
	Description string `json:"description"`

	// ImageURL is resolved through src → data-src → first srcset entry.
	ImageURL string `json:"image_url"`
}
