package handler

import (
	"net/http"

	"github.com/seimon-ohh/ebay-kleinanzeigen-api/models"
)

// asScrapeError normalizes any error into a *models.ScrapeError.
func asScrapeError(err error) *models.ScrapeError {
	if scrapeErr, ok := err.(*models.ScrapeError); ok {
		return scrapeErr
	}
	return models.NewScrapeError(models.ErrCodeInternal, err.Error(), err)
}

// mapErrorToStatus translates error codes to HTTP status codes.
func mapErrorToStatus(e *models.ScrapeError) int {
	switch e.Code {
	case models.ErrCodeTimeout:
		return http.StatusGatewayTimeout // 504
	case models.ErrCodeNavigation:
		return http.StatusBadGateway // 502
	case models.ErrCodeNotFound:
		return http.StatusNotFound // 404
	case models.ErrCodeInvalidInput:
		return http.StatusBadRequest // 400
	case models.ErrCodeRateLimited:
		return http.StatusTooManyRequests // 429
	case models.ErrCodeUnauthorized:
		return http.StatusUnauthorized // 401
	default:
		return http.StatusInternalServerError // 500
	}
}
