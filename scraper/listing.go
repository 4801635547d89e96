package scraper

import (
	"context"
	"log/slog"

	"github.com/seimon-ohh/ebay-kleinanzeigen-api/config"
	"github.com/seimon-ohh/ebay-kleinanzeigen-api/models"
)

// ListingCrawler walks search-result pages and accumulates ad summaries.
//
// The crawl trades completeness for robustness: once the first page has
// loaded, nothing that happens on later pages can fail the call. An empty
// page ends the crawl (the site ranks matches first, so further pages are
// assumed empty too); a navigation failure on page N returns pages 1..N-1.
type ListingCrawler struct {
	provider PageProvider
	cfg      config.ScraperConfig
}

// NewListingCrawler creates a ListingCrawler backed by the given provider.
func NewListingCrawler(provider PageProvider, cfg config.ScraperConfig) *ListingCrawler {
	return &ListingCrawler{provider: provider, cfg: cfg}
}

// Crawl acquires one page, walks up to q.PageCount result pages and
// returns every parsed ad summary. The page is released on every exit
// path. Only a total failure to reach the first page is an error.
func (c *ListingCrawler) Crawl(ctx context.Context, q models.ListingQuery) ([]models.AdSummary, error) {
	q.Defaults(c.cfg.MaxPageCount)

	page, err := c.provider.AcquirePage()
	if err != nil {
		return nil, models.NewScrapeError(models.ErrCodeBrowserCrash,
			"failed to acquire browser page", err)
	}
	defer c.provider.ReleasePage(page)

	// ── First page: the only navigation allowed to fail the crawl ───
	firstURL := BuildSearchURL(q, 1)
	if err := page.Navigate(ctx, firstURL, c.cfg.NavigationTimeout); err != nil {
		slog.Warn("first result page failed, retrying simplified URL",
			"url", firstURL, "error", err)
		fallback := BuildFallbackSearchURL(q)
		if err := page.Navigate(ctx, fallback, c.cfg.NavigationTimeout); err != nil {
			return nil, models.NewScrapeError(models.ErrCodeNavigation,
				"failed to load search results", err)
		}
	}

	results := make([]models.AdSummary, 0, q.PageCount*c.cfg.MaxCardsPerPage)
	for i := 0; i < q.PageCount; i++ {
		pageResults := c.parsePage(ctx, page)
		results = append(results, pageResults...)

		if i == q.PageCount-1 {
			break
		}
		if len(pageResults) == 0 {
			// The result set is exhausted; later pages will be empty too.
			slog.Debug("empty result page, ending crawl early", "page", i+1)
			break
		}

		nextURL := BuildSearchURL(q, i+2)
		if err := page.Navigate(ctx, nextURL, c.cfg.NavigationTimeout); err != nil {
			slog.Warn("failed to load result page, keeping partial results",
				"page", i+2, "error", err)
			break
		}
		pause(ctx, c.cfg.PageSettleDelay)
	}

	return results, nil
}

// parsePage waits for the result list to attach and parses its cards.
// A page whose container never attaches counts as zero results; it must
// not fail a crawl already holding earlier pages.
func (c *ListingCrawler) parsePage(ctx context.Context, page Page) []models.AdSummary {
	if err := page.WaitAttached(ctx, selResultList, c.cfg.CardAttachTimeout); err != nil {
		slog.Warn("result list did not attach, treating page as empty", "error", err)
		return nil
	}

	html, err := page.SectionHTML(selResultList)
	if err != nil {
		slog.Warn("failed to read result list, treating page as empty", "error", err)
		return nil
	}

	return ParseCards(html, c.cfg.MaxCardsPerPage)
}
