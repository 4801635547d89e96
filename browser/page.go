package browser

import (
	"context"
	"strings"
	"time"

	"github.com/go-rod/rod"
)

// imageSourceAttrs is the attribute priority chain for gallery images.
// Lazy-loaded galleries park the real URL in a data attribute until the
// image scrolls into view.
var imageSourceAttrs = []string{"src", "data-imgsrc", "data-src"}

// Page wraps one pooled rod tab for the duration of a single request and
// implements the scraper.Page accessor surface. Read methods never report
// a missing element as an error: the caller's default is returned instead,
// so field-level fault isolation falls out of the contract.
type Page struct {
	page           *rod.Page
	router         *rod.HijackRouter
	defaultTimeout time.Duration
}

func (p *Page) Navigate(ctx context.Context, url string, timeout time.Duration) error {
	return p.page.Context(ctx).Timeout(timeout).Navigate(url)
}

func (p *Page) WaitStable(ctx context.Context, timeout time.Duration) error {
	return p.page.Context(ctx).Timeout(timeout).WaitDOMStable(300*time.Millisecond, 0.1)
}

func (p *Page) WaitVisible(ctx context.Context, selector string, timeout time.Duration) error {
	el, err := p.page.Context(ctx).Timeout(timeout).Element(selector)
	if err != nil {
		return err
	}
	return el.WaitVisible()
}

func (p *Page) WaitAttached(ctx context.Context, selector string, timeout time.Duration) error {
	_, err := p.page.Context(ctx).Timeout(timeout).Element(selector)
	return err
}

func (p *Page) Has(selector string) bool {
	has, _, err := p.page.Has(selector)
	return err == nil && has
}

func (p *Page) Text(selector, def string) string {
	el, err := p.reader().Element(selector)
	if err != nil {
		return def
	}
	text, err := el.Text()
	if err != nil {
		return def
	}
	return strings.TrimSpace(text)
}

func (p *Page) TextAll(selector string) []string {
	texts := []string{}
	els, err := p.reader().Elements(selector)
	if err != nil {
		return texts
	}
	for _, el := range els {
		if text, err := el.Text(); err == nil {
			texts = append(texts, strings.TrimSpace(text))
		}
	}
	return texts
}

func (p *Page) Attribute(selector, attr, def string) string {
	el, err := p.reader().Element(selector)
	if err != nil {
		return def
	}
	val, err := el.Attribute(attr)
	if err != nil || val == nil || *val == "" {
		return def
	}
	return *val
}

func (p *Page) SectionHTML(selector string) (string, error) {
	el, err := p.reader().Element(selector)
	if err != nil {
		return "", err
	}
	return el.HTML()
}

func (p *Page) ImageSources(selector string) []string {
	sources := []string{}
	els, err := p.reader().Elements(selector)
	if err != nil {
		return sources
	}
	seen := make(map[string]struct{}, len(els))
	for _, el := range els {
		for _, attr := range imageSourceAttrs {
			val, err := el.Attribute(attr)
			if err != nil || val == nil || *val == "" {
				continue
			}
			if _, dup := seen[*val]; !dup {
				seen[*val] = struct{}{}
				sources = append(sources, *val)
			}
			break
		}
	}
	return sources
}

// reader returns a page clone that fails fast on missing elements instead
// of polling, bounded by the default timeout as a safety net.
func (p *Page) reader() *rod.Page {
	return p.page.Timeout(p.defaultTimeout).Sleeper(rod.NotFoundSleeper)
}
