package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Ayushkukreti23/EventEase/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const identityKey = "identity"

// Auth validates the bearer token and puts the caller identity into the
// request context. Token issuance is the auth service's concern; we only
// verify the HMAC signature and read the claims.
func Auth(secret string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || token == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "access denied, no token provided"},
			)
			return
		}

		claims := jwt.MapClaims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !parsed.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "invalid token"},
			)
			return
		}

		sub, _ := claims["sub"].(string)
		if sub == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "invalid token"},
			)
			return
		}
		name, _ := claims["name"].(string)
		role, _ := claims["role"].(string)
		if role == "" {
			role = domain.RoleUser
		}

		c.Set(identityKey, domain.Identity{UserID: sub, Name: name, Role: role})
		c.Next()
	}
}

// RequireAdmin must run after Auth.
func RequireAdmin() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		ident, ok := Identity(c)
		if !ok || !ident.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden,
				ginext.H{"error": "access denied, admin role required"},
			)
			return
		}

		c.Next()
	}
}

// Identity returns the authenticated caller set by Auth.
func Identity(c *ginext.Context) (domain.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return domain.Identity{}, false
	}

	ident, ok := v.(domain.Identity)
	return ident, ok
}
