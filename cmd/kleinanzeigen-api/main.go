package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/seimon-ohh/ebay-kleinanzeigen-api/api"
	"github.com/seimon-ohh/ebay-kleinanzeigen-api/browser"
	"github.com/seimon-ohh/ebay-kleinanzeigen-api/config"
	"github.com/seimon-ohh/ebay-kleinanzeigen-api/scraper"
)

// rodProvider adapts *browser.Manager to the scraper.PageProvider
// interface (the scraper packages never import browser directly).
type rodProvider struct {
	mgr *browser.Manager
}

func (p rodProvider) AcquirePage() (scraper.Page, error) {
	return p.mgr.AcquirePage()
}

func (p rodProvider) ReleasePage(page scraper.Page) {
	if rp, ok := page.(*browser.Page); ok {
		p.mgr.ReleasePage(rp)
	}
}

func main() {
	// ── 1. Load configuration ───────────────────────────────────────
	_ = godotenv.Load()
	cfg := config.Load()

	// ── 2. Initialise structured logging ────────────────────────────
	initLogger(cfg.Log)
	slog.Info("kleinanzeigen-api starting",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"mode", cfg.Server.Mode,
		"maxPages", cfg.Browser.MaxPages,
	)

	// ── 3. Launch browser ───────────────────────────────────────────
	mgr, err := browser.NewManager(cfg.Browser)
	if err != nil {
		slog.Error("failed to launch browser", "error", err)
		os.Exit(1)
	}
	defer mgr.Close()

	// ── 4. Setup router ─────────────────────────────────────────────
	startTime := time.Now()
	router := api.NewRouter(mgr, rodProvider{mgr: mgr}, cfg, startTime)

	// ── 5. Start HTTP server ────────────────────────────────────────
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		slog.Info("HTTP server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// ── 6. Graceful shutdown ────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig.String())

	// Give in-flight requests 5 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("HTTP server forced shutdown", "error", err)
	} else {
		slog.Info("HTTP server drained gracefully")
	}

	// mgr.Close() runs via defer — drains page pool and kills Chrome.
	slog.Info("kleinanzeigen-api stopped")
}

// initLogger configures slog based on the LogConfig.
func initLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}
