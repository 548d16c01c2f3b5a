package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// modelBackedPrefixes lists route prefixes whose handlers wait on the model
// server and therefore need the long deadline.
var modelBackedPrefixes = []string{
	"/api/skills",
	"/api/roadmap",
}

// SelectiveTimeoutConfig applies the default deadline to ordinary endpoints
// and the longer one to model-backed endpoints, by shrinking the request
// context rather than buffering the response.
func SelectiveTimeoutConfig(defaultTimeout, modelTimeout time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			timeout := defaultTimeout
			if isModelBackedPath(c.Request().URL.Path) {
				timeout = modelTimeout
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
			defer cancel()

			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func isModelBackedPath(path string) bool {
	for _, prefix := range modelBackedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
