package middleware

// identity.go holds helpers shared across middleware files for reading
// the authenticated identity that JWTAuth stored in the Echo context.

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// currentUserID extracts an identity string for rate-limit bucketing.
// It prefers the email claim stored by JWTAuth and falls back to "anon"
// for unauthenticated routes.
func currentUserID(c echo.Context) string {
	if v, ok := c.Get("email").(string); ok && v != "" {
		return v
	}
	if cl, ok := c.Get("user").(jwt.MapClaims); ok {
		if v, ok := cl["email"].(string); ok && v != "" {
			return v
		}
	}
	return "anon"
}
