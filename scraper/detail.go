package scraper

import (
	"context"
	"log/slog"
	"sync"

	"github.com/seimon-ohh/ebay-kleinanzeigen-api/config"
	"github.com/seimon-ohh/ebay-kleinanzeigen-api/models"
)

// adIDSentinel is returned when neither the DOM nor the URL yields an ad
// id. The record is still returned; only navigation failures abort a call.
const adIDSentinel = "[ERROR] Ad ID not found"

// titleSentinel marks a detail page whose title element never resolved.
const titleSentinel = "[ERROR] Title not found"

// DetailExtractor produces one AdDetail from a live detail page.
type DetailExtractor struct {
	cfg config.ScraperConfig
}

// NewDetailExtractor creates a DetailExtractor with the given timing bounds.
func NewDetailExtractor(cfg config.ScraperConfig) *DetailExtractor {
	return &DetailExtractor{cfg: cfg}
}

// Extract navigates page to url and assembles the ad record.
//
// Only navigation and DOM readiness can fail the call. Every field read is
// isolated: a broken selector or a changed markup generation degrades that
// one field to its documented default and leaves the rest of the record
// intact. The compound sections are gathered concurrently; each goroutine
// issues independent read-only DOM queries against the same page and owns
// its result slot, so the WaitGroup join is the only synchronisation.
func (e *DetailExtractor) Extract(ctx context.Context, page Page, url string) (*models.AdDetail, error) {
	// ── 1. Navigation: the only step that propagates ────────────────
	if err := page.Navigate(ctx, url, e.cfg.NavigationTimeout); err != nil {
		return nil, models.NewScrapeError(models.ErrCodeNavigation,
			"failed to retrieve ad page", err)
	}
	if err := page.WaitStable(ctx, e.cfg.ReadyTimeout); err != nil {
		return nil, models.NewScrapeError(models.ErrCodeNavigation,
			"ad page did not become ready", err)
	}

	// ── 2. Best-effort title wait ───────────────────────────────────
	// Some ads hydrate the title late; give them a fixed pause and carry
	// on with whatever the DOM holds.
	if err := page.WaitVisible(ctx, selTitle, e.cfg.TitleWaitTimeout); err != nil {
		slog.Warn("title element did not appear in time", "url", url, "error", err)
		pause(ctx, e.cfg.HydrationPause)
	}

	// ── 3. Scalar fields, sequential, each independently defaulted ──
	ad := &models.AdDetail{
		ID:          e.extractID(page, url),
		Categories:  breadcrumbs(page),
		Title:       normalizeTitle(page.Text(selTitle, titleSentinel)),
		Price:       normalizePrice(page.Text(selPrice, "")),
		Views:       textOrFallback(page, selViews, "0"),
		Description: normalizeDescription(page.Text(selDescription, "")),
	}

	// ── 4. Compound fields, concurrent fan-out with join barrier ────
	var wg sync.WaitGroup
	gather := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}

	gather(func() {
		ad.Images = page.ImageSources(selImages)
	})
	gather(func() {
		ad.Seller = orDefault(map[string]string{}, func() (map[string]string, error) {
			return sellerDetails(page)
		})
	})
	gather(func() {
		// Gated: only attempted when the section exists at all.
		if !page.Has(selDetailsSection) {
			ad.Details = map[string]string{}
			return
		}
		ad.Details = orDefault(map[string]string{}, func() (map[string]string, error) {
			return adDetailsList(page)
		})
	})
	gather(func() {
		if !page.Has(selFeaturesSection) {
			ad.Features = map[string]string{}
			return
		}
		ad.Features = orDefault(map[string]string{}, func() (map[string]string, error) {
			return adFeatures(page)
		})
	})
	gather(func() {
		ad.Shipping = page.Text(selShipping, "") != ""
	})
	gather(func() {
		ad.Location = adLocation(page)
	})
	gather(func() {
		ad.ExtraInfo = orDefault(map[string]string{}, func() (map[string]string, error) {
			return adExtraInfo(page)
		})
	})
	wg.Wait()

	return ad, nil
}

// extractID reads the ad id box and falls back to the trailing digits of
// the URL path, then to the sentinel. It never fails the record.
func (e *DetailExtractor) extractID(page Page, url string) string {
	if id := page.Text(selAdID, ""); id != "" {
		return id
	}
	if id := adIDFromURL(url); id != "" {
		return id
	}
	return adIDSentinel
}

// breadcrumbs returns the non-empty breadcrumb texts in document order.
func breadcrumbs(page Page) []string {
	cats := make([]string, 0, 4)
	for _, c := range page.TextAll(selBreadcrumbs) {
		if c != "" {
			cats = append(cats, c)
		}
	}
	return cats
}

// textOrFallback reads selector and substitutes fallback for an empty read.
func textOrFallback(page Page, selector, fallback string) string {
	if v := page.Text(selector, ""); v != "" {
		return v
	}
	return fallback
}
