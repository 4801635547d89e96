package models

// ListingQuery is the query-string payload for GET /inserate.
type ListingQuery struct {
	// Query is the free-text search term.
	Query string `form:"query"`

	// Location is a location string (city or postcode).
	Location string `form:"location"`

	// Radius is the search radius in kilometres around Location.
	Radius int `form:"radius" binding:"omitempty,min=0"`

	// MinPrice and MaxPrice bound the price range. Either may be set alone.
	MinPrice *int `form:"min_price" binding:"omitempty,min=0"`
	MaxPrice *int `form:"max_price" binding:"omitempty,min=0"`

	// PageCount is the number of result pages to crawl.
	// Default: 1. Clamped to the configured maximum before any navigation.
	PageCount int `form:"page_count" binding:"omitempty,min=1"`
}

// Defaults applies default values and clamps PageCount to maxPages.
func (q *ListingQuery) Defaults(maxPages int) {
	if q.PageCount < 1 {
		q.PageCount = 1
	}
	if maxPages > 0 && q.PageCount > maxPages {
		q.PageCount = maxPages
	}
}
