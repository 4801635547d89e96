package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/seimon-ohh/ebay-kleinanzeigen-api/models"
)

// ParseCards extracts ad summaries from the HTML of a search-results list.
// At most limit cards are considered. Cards are parsed independently: a
// card missing its identity attributes (data-adid, data-href) is dropped
// silently and never affects its siblings.
func ParseCards(html string, limit int) []models.AdSummary {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return []models.AdSummary{}
	}

	results := make([]models.AdSummary, 0, limit)
	doc.Find(selAdCard).EachWithBreak(func(i int, s *goquery.Selection) bool {
		if limit > 0 && i >= limit {
			return false
		}
		if ad, ok := parseCard(s); ok {
			results = append(results, ad)
		}
		return true
	})
	return results
}

// parseCard reads one listing card. The identity attributes are required;
// everything else resolves to an explicit default.
func parseCard(s *goquery.Selection) (models.AdSummary, bool) {
	article := s.Find("article").First()
	if article.Length() == 0 {
		return models.AdSummary{}, false
	}

	adID, _ := article.Attr("data-adid")
	href, _ := article.Attr("data-href")
	if adID == "" || href == "" {
		return models.AdSummary{}, false
	}

	return models.AdSummary{
		AdID:        adID,
		URL:         SiteBaseURL + href,
		Title:       strings.TrimSpace(article.Find(selCardTitle).First().Text()),
		Price:       normalizePrice(article.Find(selCardPrice).First().Text()),
		Description: strings.TrimSpace(article.Find(selCardDesc).First().Text()),
		ImageURL:    cardImageURL(article.Find(selCardImage).First()),
	}, true
}

// cardImageURL resolves the card image through the lazy-load priority
// chain: src, then data-src, then the first URL token of srcset.
func cardImageURL(img *goquery.Selection) string {
	if img.Length() == 0 {
		return ""
	}
	if src, ok := img.Attr("src"); ok && src != "" {
		return src
	}
	if src, ok := img.Attr("data-src"); ok && src != "" {
		return src
	}
	if srcset, ok := img.Attr("srcset"); ok && srcset != "" {
		first := strings.Split(srcset, ",")[0]
		return strings.TrimSpace(strings.Split(strings.TrimSpace(first), " ")[0])
	}
	return ""
}
