package utils // package utils provides helpers for token issuing and verification

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
)

// ErrTokenExpired is returned by VerifyToken when the token's validity
// window has elapsed.  Callers surface this separately from other
// verification failures so clients can tell a stale session from a
// forged token.
var ErrTokenExpired = errors.New("token has expired")

// ErrTokenInvalid is returned by VerifyToken for every non-expiry
// failure: bad signature, malformed structure or unexpected algorithm.
var ErrTokenInvalid = errors.New("invalid token")

// AccessToken represents a signed JWT access token along with its expiry.
// Access tokens are short-lived and carried in the Authorization header
// when calling protected endpoints.
type AccessToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewAccessToken builds and signs an HS256 JWT for a tenant user.  The
// claims carry the user's email and tenant_id so handlers can scope
// requests, plus the standard exp and iat timestamps.
func NewAccessToken(secret, email, tenantID string, ttlMin int) (AccessToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"email":     email,
		"tenant_id": tenantID,
		"exp":       exp.Unix(),
		"iat":       now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

// VerifyToken checks a raw JWT against the shared secret and returns its
// claims.  Only HMAC-signed tokens are accepted.  Verification is pure:
// no side effects, no retries.  The two sentinel errors above are the
// only failures callers ever see.
func VerifyToken(secret, raw string) (jwt.MapClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || !tok.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
