package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seimon-ohh/ebay-kleinanzeigen-api/config"
	"github.com/seimon-ohh/ebay-kleinanzeigen-api/models"
)

// ListingCrawler is the part of the listing scraper this handler needs.
type ListingCrawler interface {
	Crawl(ctx context.Context, q models.ListingQuery) ([]models.AdSummary, error)
}

// Inserate returns a handler for GET /inserate.
//
// A crawl that stopped early (empty page, broken pagination) is still a
// success with whatever was accumulated; only a total failure to reach
// the first result page surfaces as an error.
func Inserate(crawler ListingCrawler, cfg config.ScraperConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q models.ListingQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			c.JSON(http.StatusBadRequest, models.ListingResponse{
				Success: false,
				Data:    []models.AdSummary{},
				Error: &models.ErrorDetail{
					Code:    models.ErrCodeInvalidInput,
					Message: err.Error(),
				},
			})
			return
		}
		q.Defaults(cfg.MaxPageCount)

		results, err := crawler.Crawl(c.Request.Context(), q)
		if err != nil {
			scrapeErr := asScrapeError(err)
			c.JSON(mapErrorToStatus(scrapeErr), models.ListingResponse{
				Success: false,
				Data:    []models.AdSummary{},
				Error:   scrapeErr.ToDetail(),
			})
			return
		}

		c.JSON(http.StatusOK, models.ListingResponse{
			Success: true,
			Data:    results,
		})
	}
}
