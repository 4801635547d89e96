package browser

import (
	"log/slog"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"

	"github.com/seimon-ohh/ebay-kleinanzeigen-api/config"
	"github.com/seimon-ohh/ebay-kleinanzeigen-api/models"
)

// Manager owns the shared browser process and hands out isolated pages,
// one per in-flight request. It is safe for concurrent use.
type Manager struct {
	browser     *rod.Browser
	pagePool    rod.Pool[rod.Page]
	cfg         config.BrowserConfig
	activePages atomic.Int32
}

// NewManager launches a headless browser and initialises the page pool.
func NewManager(cfg config.BrowserConfig) (*Manager, error) {
	l := launcher.New().
		Headless(cfg.Headless).
		NoSandbox(cfg.NoSandbox)

	if cfg.BrowserBin != "" {
		l = l.Bin(cfg.BrowserBin)
	}
	if cfg.Proxy != "" {
		l = l.Proxy(cfg.Proxy)
	}

	l.Set(flags.Flag("disable-gpu"))
	l.Set(flags.Flag("disable-dev-shm-usage"))
	l.Set(flags.Flag("disable-extensions"))
	l.Set(flags.Flag("disable-blink-features"), "AutomationControlled")
	l.Delete(flags.Flag("enable-automation"))
	l.Set(flags.Flag("no-first-run"))

	controlURL, err := l.Launch()
	if err != nil {
		return nil, models.NewScrapeError(
			models.ErrCodeBrowserCrash,
			"failed to launch browser",
			err,
		)
	}
	slog.Info("browser launched", "controlURL", controlURL)

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, models.NewScrapeError(
			models.ErrCodeBrowserCrash,
			"failed to connect to browser",
			err,
		)
	}

	pool := rod.NewPagePool(cfg.MaxPages)
	slog.Info("page pool created", "maxPages", cfg.MaxPages)

	return &Manager{
		browser:  browser,
		pagePool: pool,
		cfg:      cfg,
	}, nil
}

// AcquirePage borrows a tab from the pool (or creates one) and configures
// it as a fresh browsing context: fixed viewport, German locale, stable
// desktop user agent, resource blocking, optional stealth injection.
func (m *Manager) AcquirePage() (*Page, error) {
	raw, err := m.pagePool.Get(func() (*rod.Page, error) {
		return m.browser.Page(proto.TargetCreateTarget{})
	})
	if err != nil {
		return nil, models.NewScrapeError(
			models.ErrCodeBrowserCrash,
			"failed to acquire page from pool",
			err,
		)
	}
	m.activePages.Add(1)

	if err := m.setupPage(raw); err != nil {
		// A page that cannot be configured goes straight back to the pool.
		m.activePages.Add(-1)
		m.pagePool.Put(raw)
		return nil, err
	}

	router := setupHijack(raw, m.cfg.BlockedResourceTypes)

	return &Page{
		page:           raw,
		router:         router,
		defaultTimeout: m.cfg.DefaultTimeout,
	}, nil
}

// setupPage applies the fixed per-context settings every request gets.
func (m *Manager) setupPage(page *rod.Page) error {
	if err := (proto.EmulationSetDeviceMetricsOverride{
		Width:             m.cfg.ViewportWidth,
		Height:            m.cfg.ViewportHeight,
		DeviceScaleFactor: 1,
		Mobile:            false,
	}).Call(page); err != nil {
		return models.NewScrapeError(models.ErrCodeBrowserCrash,
			"failed to set viewport", err)
	}

	if err := (proto.NetworkSetUserAgentOverride{
		UserAgent:      m.cfg.UserAgent,
		AcceptLanguage: m.cfg.Locale,
	}).Call(page); err != nil {
		return models.NewScrapeError(models.ErrCodeBrowserCrash,
			"failed to set user agent", err)
	}

	setAcceptHeaders(page, m.cfg.Locale)

	if m.cfg.Stealth {
		if _, err := page.EvalOnNewDocument(stealth.JS); err != nil {
			slog.Warn("stealth injection failed, proceeding without stealth",
				"error", err,
			)
		}
	}
	return nil
}

// Stats returns a snapshot of the pool's current state.
func (m *Manager) Stats() models.PoolStats {
	return models.PoolStats{
		MaxPages:    m.cfg.MaxPages,
		ActivePages: int(m.activePages.Load()),
	}
}

// ReleasePage resets the tab and returns it to the pool. Best-effort:
// teardown errors are logged, never propagated.
func (m *Manager) ReleasePage(p *Page) {
	if p == nil {
		return
	}
	if p.router != nil {
		_ = p.router.Stop()
	}
	// about:blank drops the page's DOM before the tab is reused.
	if err := p.page.Navigate("about:blank"); err != nil {
		slog.Warn("cleanup: failed to navigate to about:blank", "error", err)
	}
	m.pagePool.Put(p.page)
	m.activePages.Add(-1)
}

// Close drains the page pool and kills the browser process.
// Call this on graceful shutdown to prevent zombie Chrome processes.
func (m *Manager) Close() {
	slog.Info("browser shutting down: draining page pool")
	m.pagePool.Cleanup(func(p *rod.Page) {
		_ = p.Close()
	})
	slog.Info("browser shutting down: closing browser")
	m.browser.MustClose()
	slog.Info("browser shutdown complete")
}
