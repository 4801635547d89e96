package scraper

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/seimon-ohh/ebay-kleinanzeigen-api/models"
)

const (
	// SearchBaseURL is the origin used for search-result navigation.
	SearchBaseURL = "https://www.ebay-kleinanzeigen.de"

	// SiteBaseURL is the origin used for detail pages and for resolving
	// the relative hrefs found on listing cards.
	SiteBaseURL = "https://www.kleinanzeigen.de"
)

// DetailURLs returns the candidate URLs for an ad id, canonical path form
// first. The site has exposed both path schemes historically and either may
// 404 for a given ad, so callers try them in order.
func DetailURLs(id string) [2]string {
	return [2]string{
		SiteBaseURL + "/s-anzeige/" + id,
		SiteBaseURL + "/anzeigen/" + id,
	}
}

// BuildSearchURL composes the search URL for one result page:
// an optional /preis:<min>:<max> segment (present when either bound is
// set), the /s-seite:<n> page segment, and query parameters for the
// free-text query, location and radius when provided.
func BuildSearchURL(q models.ListingQuery, page int) string {
	path := ""
	if q.MinPrice != nil || q.MaxPrice != nil {
		minStr, maxStr := "", ""
		if q.MinPrice != nil {
			minStr = strconv.Itoa(*q.MinPrice)
		}
		if q.MaxPrice != nil {
			maxStr = strconv.Itoa(*q.MaxPrice)
		}
		path += fmt.Sprintf("/preis:%s:%s", minStr, maxStr)
	}
	path += fmt.Sprintf("/s-seite:%d", page)

	return SearchBaseURL + path + searchParams(q)
}

// BuildFallbackSearchURL is the simplified query-only form used when the
// full first-page URL fails to navigate.
func BuildFallbackSearchURL(q models.ListingQuery) string {
	return SearchBaseURL + "/s-seite:1" + searchParams(models.ListingQuery{Query: q.Query})
}

func searchParams(q models.ListingQuery) string {
	params := url.Values{}
	if q.Query != "" {
		params.Set("keywords", q.Query)
	}
	if q.Location != "" {
		params.Set("locationStr", q.Location)
	}
	if q.Radius > 0 {
		params.Set("radius", strconv.Itoa(q.Radius))
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}
