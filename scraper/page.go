package scraper

import (
	"context"
	"time"
)

// Page is the minimal browsing surface the extractors need. All read
// methods take a caller-supplied default and return it when the element is
// missing; only page-level failures (dead session, expired context) are
// reported as errors by the methods that can hit them. The production
// implementation lives in the browser package.
type Page interface {
	// Navigate loads the URL, bounded by timeout.
	Navigate(ctx context.Context, url string, timeout time.Duration) error

	// WaitStable blocks until the DOM stops mutating or timeout elapses.
	WaitStable(ctx context.Context, timeout time.Duration) error

	// WaitVisible blocks until the first match of selector is visible.
	WaitVisible(ctx context.Context, selector string, timeout time.Duration) error

	// WaitAttached blocks until the first match of selector exists in the
	// DOM, visible or not.
	WaitAttached(ctx context.Context, selector string, timeout time.Duration) error

	// Has reports whether selector matches at least one element right now.
	Has(selector string) bool

	// Text returns the trimmed text of the first match, or def.
	Text(selector, def string) string

	// TextAll returns the trimmed texts of every match. Never nil.
	TextAll(selector string) []string

	// Attribute returns the named attribute of the first match, or def.
	Attribute(selector, attr, def string) string

	// SectionHTML returns the outer HTML of the first match.
	SectionHTML(selector string) (string, error)

	// ImageSources returns the image URLs of every match, preferring the
	// src attribute and falling back to the lazy-load data attribute.
	ImageSources(selector string) []string
}

// PageProvider hands out isolated browsing pages. Release must be
// best-effort and safe to call on every exit path.
type PageProvider interface {
	AcquirePage() (Page, error)
	ReleasePage(Page)
}

// pause sleeps for d or until ctx is done, whichever comes first.
func pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// orDefault runs fn and substitutes def when it fails. This is the
// field-level fault-isolation primitive: a broken selector yields the
// field's documented default instead of voiding the whole record.
func orDefault[T any](def T, fn func() (T, error)) T {
	v, err := fn()
	if err != nil {
		return def
	}
	return v
}
