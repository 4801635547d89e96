package scraper

import (
	"context"
	"errors"
	"time"
)

var errNoElement = errors.New("element not found")

// fakePage is an in-memory Page for extractor tests. Selectors resolve
// against the configured maps; anything unconfigured behaves like a
// missing element (caller default, or an error for SectionHTML).
type fakePage struct {
	texts    map[string]string
	textAll  map[string][]string
	sections map[string]string
	images   []string

	navErr    map[string]error
	stableErr error
	titleErr  error

	navigated []string
}

func newFakePage() *fakePage {
	return &fakePage{
		texts:    map[string]string{},
		textAll:  map[string][]string{},
		sections: map[string]string{},
		navErr:   map[string]error{},
	}
}

func (f *fakePage) Navigate(_ context.Context, url string, _ time.Duration) error {
	f.navigated = append(f.navigated, url)
	return f.navErr[url]
}

func (f *fakePage) WaitStable(context.Context, time.Duration) error {
	return f.stableErr
}

func (f *fakePage) WaitVisible(_ context.Context, selector string, _ time.Duration) error {
	if selector == selTitle {
		return f.titleErr
	}
	return nil
}

func (f *fakePage) WaitAttached(_ context.Context, selector string, _ time.Duration) error {
	if _, ok := f.sections[selector]; !ok {
		return errNoElement
	}
	return nil
}

func (f *fakePage) Has(selector string) bool {
	if _, ok := f.sections[selector]; ok {
		return true
	}
	_, ok := f.texts[selector]
	return ok
}

func (f *fakePage) Text(selector, def string) string {
	if v, ok := f.texts[selector]; ok {
		return v
	}
	return def
}

func (f *fakePage) TextAll(selector string) []string {
	return f.textAll[selector]
}

func (f *fakePage) Attribute(_, _, def string) string {
	return def
}

func (f *fakePage) SectionHTML(selector string) (string, error) {
	if html, ok := f.sections[selector]; ok {
		return html, nil
	}
	return "", errNoElement
}

func (f *fakePage) ImageSources(string) []string {
	if f.images == nil {
		return []string{}
	}
	return f.images
}

// fakeSearchPage simulates a sequence of search-result pages for crawler
// tests. Navigation i fails with navErrs[i] when set; a successful
// navigation advances to the next entry of pages. An empty entry stands
// for a page whose result list never attaches.
type fakeSearchPage struct {
	pages   []string
	navErrs []error

	navigated []string
	current   int
}

func (f *fakeSearchPage) Navigate(_ context.Context, url string, _ time.Duration) error {
	attempt := len(f.navigated)
	f.navigated = append(f.navigated, url)
	if attempt < len(f.navErrs) && f.navErrs[attempt] != nil {
		return f.navErrs[attempt]
	}
	f.current++
	return nil
}

func (f *fakeSearchPage) WaitStable(context.Context, time.Duration) error { return nil }

func (f *fakeSearchPage) WaitVisible(context.Context, string, time.Duration) error { return nil }

func (f *fakeSearchPage) WaitAttached(_ context.Context, _ string, _ time.Duration) error {
	if f.currentHTML() == "" {
		return errNoElement
	}
	return nil
}

func (f *fakeSearchPage) Has(string) bool { return f.currentHTML() != "" }

func (f *fakeSearchPage) Text(_, def string) string { return def }

func (f *fakeSearchPage) TextAll(string) []string { return nil }

func (f *fakeSearchPage) Attribute(_, _, def string) string { return def }

func (f *fakeSearchPage) SectionHTML(string) (string, error) {
	if html := f.currentHTML(); html != "" {
		return html, nil
	}
	return "", errNoElement
}

func (f *fakeSearchPage) ImageSources(string) []string { return nil }

func (f *fakeSearchPage) currentHTML() string {
	if f.current == 0 || f.current > len(f.pages) {
		return ""
	}
	return f.pages[f.current-1]
}

// fakeProvider hands out a fixed page and records releases.
type fakeProvider struct {
	page       Page
	acquireErr error
	released   int
}

func (f *fakeProvider) AcquirePage() (Page, error) {
	if f.acquireErr != nil {
		return nil, f.acquireErr
	}
	return f.page, nil
}

func (f *fakeProvider) ReleasePage(Page) {
	f.released++
}
