package http

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const apiKeyHeader = "x-api-key"

// APIKeyAuth returns middleware enforcing the shared-secret contract.
// Callers authenticate with either the x-api-key header or the Authorization
// header, where a "Bearer " prefix is accepted but not required. The health
// endpoint is exempt so probes work without credentials.
func APIKeyAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if strings.HasSuffix(ctx.Path(), "/health") {
				return next(ctx)
			}

			if subtle.ConstantTimeCompare([]byte(presentedKey(ctx)), []byte(secret)) == 1 {
				return next(ctx)
			}

			return ctx.JSON(http.StatusUnauthorized, fail(CodeUnauthorized, "Invalid or missing API key"))
		}
	}
}

func presentedKey(ctx echo.Context) string {
	if key := ctx.Request().Header.Get(apiKeyHeader); key != "" {
		return key
	}

	auth := ctx.Request().Header.Get(echo.HeaderAuthorization)
	return strings.TrimPrefix(auth, "Bearer ")
}
