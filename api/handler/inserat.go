package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seimon-ohh/ebay-kleinanzeigen-api/models"
	"github.com/seimon-ohh/ebay-kleinanzeigen-api/scraper"
)

// DetailExtractor is the part of the detail scraper this handler needs.
type DetailExtractor interface {
	Extract(ctx context.Context, page scraper.Page, url string) (*models.AdDetail, error)
}

// Inserat returns a handler for GET /inserat/:id.
//
// The site exposes two historical path schemes for the same ad, so a
// failed extraction against the canonical form is retried once against
// the alternate form on the same page. Only when both fail does the
// caller see a 404, kept distinct from a generic server error.
func Inserat(provider scraper.PageProvider, extractor DetailExtractor) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, models.DetailResponse{
				Success: false,
				Error: &models.ErrorDetail{
					Code:    models.ErrCodeInvalidInput,
					Message: "ad id is required",
				},
			})
			return
		}

		page, err := provider.AcquirePage()
		if err != nil {
			respondDetailError(c, asScrapeError(err))
			return
		}
		defer provider.ReleasePage(page)

		urls := scraper.DetailURLs(id)
		ad, err := extractor.Extract(c.Request.Context(), page, urls[0])
		if err != nil {
			slog.Warn("canonical detail URL failed, trying alternate scheme",
				"id", id, "error", err)
			ad, err = extractor.Extract(c.Request.Context(), page, urls[1])
		}
		if err != nil {
			respondDetailError(c, models.NewScrapeError(
				models.ErrCodeNotFound,
				"ad "+id+" not found under either URL scheme",
				err,
			))
			return
		}

		c.JSON(http.StatusOK, models.DetailResponse{
			Success: true,
			Data:    ad,
		})
	}
}

func respondDetailError(c *gin.Context, err *models.ScrapeError) {
	c.JSON(mapErrorToStatus(err), models.DetailResponse{
		Success: false,
		Error:   err.ToDetail(),
	})
}
