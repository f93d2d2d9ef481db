package middleware // middleware provides reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses
	"strings"  // prefix checking and trimming

	"github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

	"github.com/iliyamo/cinema-commerce-api/internal/utils" // token verification
)

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the decoded claims into the request context under "user".
// The provided secret must match the one used when issuing tokens.  On
// any failure the wrapped handler is never invoked: a missing or
// malformed header yields a fixed 401 message, a failed verification
// surfaces the validator's own message (expiry is reported distinctly
// from all other invalidity).
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Header lookup is case-insensitive per net/http canonicalization.
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "valid token required in Authorization header"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			claims, err := utils.VerifyToken(secret, raw)
			if err != nil {
				// err is one of the validator's two sentinels; its text is the
				// client-facing message.
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": err.Error()})
			}

			// Expose the full claims map plus the two fields handlers care
			// about.  Authentication failure is terminal per request; there
			// are no retries beyond this point either.
			c.Set("user", claims)
			if v, ok := claims["email"].(string); ok {
				c.Set("email", v)
			}
			if v, ok := claims["tenant_id"].(string); ok {
				c.Set("tenant_id", v)
			}
			return next(c)
		}
	}
}
