package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"skillbridge/pkg/models"
	"skillbridge/pkg/utils"
)

// RequestValidation middleware tags every request with an ID and rejects
// oversized POST bodies before any handler work.
func RequestValidation(maxBodySize int64) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Add request ID to context
			requestID := utils.GenerateRequestID()
			c.Set("request_id", requestID)
			c.Response().Header().Set("X-Request-ID", requestID)

			if c.Request().Method == http.MethodPost {
				contentLength := c.Request().ContentLength
				if maxBodySize > 0 && contentLength > maxBodySize {
					return c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
						Error:     "request_too_large",
						Message:   "Request body too large",
						RequestID: requestID,
						Timestamp: time.Now(),
					})
				}
			}

			return next(c)
		}
	}
}
