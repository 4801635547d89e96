package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/seimon-ohh/ebay-kleinanzeigen-api/api/handler"
	"github.com/seimon-ohh/ebay-kleinanzeigen-api/api/middleware"
	"github.com/seimon-ohh/ebay-kleinanzeigen-api/browser"
	"github.com/seimon-ohh/ebay-kleinanzeigen-api/config"
	"github.com/seimon-ohh/ebay-kleinanzeigen-api/models"
	"github.com/seimon-ohh/ebay-kleinanzeigen-api/scraper"
)

// NewRouter creates a configured Gin engine with all routes and middleware.
//
// Middleware chain:
//
//	Global:  Recovery → Logger
//	Data:    Auth (if enabled) → RateLimit
//
// Index and health stay outside auth so monitoring probes always work.
func NewRouter(mgr *browser.Manager, provider scraper.PageProvider, cfg *config.Config, startTime time.Time) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.Logger())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, models.IndexResponse{
			Message:   "Welcome to the Kleinanzeigen API",
			Endpoints: []string{"/inserate", "/inserat/{id}"},
		})
	})
	r.GET("/health", handler.Health(mgr, startTime))

	// Protected group — auth + rate limit.
	protected := r.Group("")
	if cfg.Auth.Enabled {
		protected.Use(middleware.Auth(cfg.Auth.APIKeys))
	}
	protected.Use(middleware.RateLimit(cfg.RateLimit))

	extractor := scraper.NewDetailExtractor(cfg.Scraper)
	crawler := scraper.NewListingCrawler(provider, cfg.Scraper)

	protected.GET("/inserat/:id", handler.Inserat(provider, extractor))
	protected.GET("/inserate", handler.Inserate(crawler, cfg.Scraper))

	return r
}
