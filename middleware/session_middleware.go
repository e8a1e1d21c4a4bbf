// middleware/session_middleware.go
package middleware

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/navhub/navhub_backend/models"
)

// AuthCookieName is the session credential cookie.
const AuthCookieName = "auth_token"

// SessionLifetime bounds the credential; there is no server-side
// revocation within it.
const SessionLifetime = 7 * 24 * time.Hour

// SessionClaims are the claims minted into the admin session token.
type SessionClaims struct {
	Username string `json:"username"`
	jwt.StandardClaims
}

// GenerateSessionToken mints a signed admin session token with a
// 7-day expiry and a unique token id.
func GenerateSessionToken(username, secret string) (string, error) {
	if secret == "" {
		return "", errors.New("JWT_SECRET is required to mint session tokens")
	}

	now := time.Now()
	claims := &SessionClaims{
		Username: username,
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.NewString(),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(SessionLifetime).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSessionToken verifies the token signature and expiry and
// returns its claims. Any forged, malformed or expired credential is
// rejected; mere cookie presence does not grant admin state. An empty
// secret verifies nothing: a deployment without JWT_SECRET must not
// accept tokens self-signed with the empty HMAC key.
func ParseSessionToken(tokenString, secret string) (*SessionClaims, error) {
	if secret == "" {
		return nil, errors.New("JWT_SECRET is required to verify session tokens")
	}

	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid session token")
	}
	return claims, nil
}

// IsAdmin reports whether the request carries a valid session
// credential. Calling it twice with the same credential yields the
// same result.
func IsAdmin(c echo.Context, secret string) bool {
	cookie, err := c.Cookie(AuthCookieName)
	if err != nil || cookie.Value == "" {
		return false
	}
	_, err = ParseSessionToken(cookie.Value, secret)
	return err == nil
}

// RequireAdmin gates write endpoints behind a valid session
// credential.
func RequireAdmin(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !IsAdmin(c, secret) {
				status := models.StatusFor(models.ErrUnauthorized)
				return c.JSON(status, models.Response{
					Status:  status,
					Message: "Unauthorized, please log in first",
				})
			}
			return next(c)
		}
	}
}
