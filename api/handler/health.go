package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/seimon-ohh/ebay-kleinanzeigen-api/browser"
	"github.com/seimon-ohh/ebay-kleinanzeigen-api/models"
)

// Health returns a handler for GET /health.
//
// Reports pool utilisation and degrades status when > 80% of pages are active.
func Health(mgr *browser.Manager, startTime time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats := mgr.Stats()

		status := "healthy"
		if stats.MaxPages > 0 && stats.ActivePages > int(float64(stats.MaxPages)*0.8) {
			status = "degraded"
		}

		c.JSON(http.StatusOK, models.HealthResponse{
			Status:    status,
			Uptime:    time.Since(startTime).Round(time.Second).String(),
			PoolStats: stats,
			Version:   "1.0.0",
		})
	}
}
