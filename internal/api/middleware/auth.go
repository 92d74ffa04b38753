package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/userhub/users-api/internal/api/metrics"
	"github.com/userhub/users-api/internal/core/ports"
)

// TokenCookie is the cookie carrying the signed token.
const TokenCookie = "token"

// Auth reads the token cookie, verifies the JWT, checks the revocation list,
// and injects actor claims into context. A missing cookie is 401; an
// invalid, expired, or revoked token is 403.
func Auth(jwtSecret string, revoked ports.TokenRevoker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(TokenCookie)
			if err != nil || cookie.Value == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_token").Inc()
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error":   "Unauthorized",
					"message": "Access token required",
				})
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return c.JSON(http.StatusForbidden, map[string]string{
					"error":   "Forbidden",
					"message": "Invalid or expired token",
				})
			}

			if jti, ok := claims["jti"].(string); ok && jti != "" {
				if isRevoked, err := revoked.IsRevoked(c.Request().Context(), jti); err == nil && isRevoked {
					metrics.AuthFailuresTotal.WithLabelValues("revoked_token").Inc()
					return c.JSON(http.StatusForbidden, map[string]string{
						"error":   "Forbidden",
						"message": "Invalid or expired token",
					})
				}
			}

			// Numeric JSON claims decode as float64.
			id, _ := claims["id"].(float64)
			email, _ := claims["email"].(string)
			role, _ := claims["role"].(string)

			c.Set("user_id", int64(id))
			c.Set("email", email)
			c.Set("role", role)

			return next(c)
		}
	}
}
