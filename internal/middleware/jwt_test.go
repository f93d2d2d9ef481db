package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/cinema-commerce-api/internal/utils"
)

const testSecret = "middleware-secret"

func runJWT(t *testing.T, authorization string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := JWTAuth(testSecret)(next)(c)
	require.NoError(t, err)
	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func TestJWTAuthMissingHeader(t *testing.T) {
	invoked := false
	rec := runJWT(t, "", func(c echo.Context) error {
		invoked = true
		return nil
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "valid token required in Authorization header", errorMessage(t, rec))
	assert.False(t, invoked, "handler must not run without a token")
}

func TestJWTAuthMalformedHeader(t *testing.T) {
	rec := runJWT(t, "Token abc", func(c echo.Context) error { return nil })
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "valid token required in Authorization header", errorMessage(t, rec))
}

func TestJWTAuthInvalidToken(t *testing.T) {
	rec := runJWT(t, "Bearer garbage", func(c echo.Context) error { return nil })
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid token", errorMessage(t, rec))
}

func TestJWTAuthExpiredToken(t *testing.T) {
	claims := jwt.MapClaims{
		"email":     "ana@example.com",
		"tenant_id": "cinestar",
		"exp":       time.Now().UTC().Add(-time.Minute).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	rec := runJWT(t, "Bearer "+signed, func(c echo.Context) error { return nil })
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	// Expiry gets its own message, distinct from generic invalidity.
	assert.Equal(t, "token has expired", errorMessage(t, rec))
}

func TestJWTAuthValidTokenInjectsClaims(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, "ana@example.com", "cinestar", 60)
	require.NoError(t, err)

	var gotEmail, gotTenant string
	var gotClaims jwt.MapClaims
	rec := runJWT(t, "Bearer "+tok.Token, func(c echo.Context) error {
		gotEmail, _ = c.Get("email").(string)
		gotTenant, _ = c.Get("tenant_id").(string)
		gotClaims, _ = c.Get("user").(jwt.MapClaims)
		return c.NoContent(http.StatusOK)
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ana@example.com", gotEmail)
	assert.Equal(t, "cinestar", gotTenant)
	require.NotNil(t, gotClaims)
	assert.Equal(t, "cinestar", gotClaims["tenant_id"])
}
