package jwtmw

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ContextUsername is the gin context key under which the middleware stores
// the token-verified username. Handlers authorize against this value only,
// never against path or body parameters.
const ContextUsername = "authUsername"

// UserResolver reports whether a username still maps to a live user record.
// The middleware consults it after signature/expiry checks so that a deleted
// user's stale token stops authorizing anything.
type UserResolver interface {
	ResolveUsername(ctx context.Context, username string) error
}

// AuthRequired returns a gin middleware that validates bearer tokens and
// restricts access to authenticated users only.
func AuthRequired(secret string, resolver UserResolver) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 2. Parse and verify signature and expiry. Tokens without an expiry
		// claim are rejected outright.
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			// Check signing algorithm (only HMAC allowed)
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return key, nil
		}, jwt.WithExpirationRequired())
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// 3. Extract the claimed username
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		username, ok := claims["sub"].(string)
		if !ok || username == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// 4. Resolve the claim against the user store. A token for a user
		// that no longer exists is treated the same as an invalid token.
		if err := resolver.ResolveUsername(c.Request.Context(), username); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// 5. Inject the verified identity and pass control on
		c.Set(ContextUsername, username)
		c.Next()
	}
}

// UsernameFromContext returns the token-verified username set by AuthRequired.
func UsernameFromContext(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextUsername)
	if !ok {
		return "", false
	}
	username, ok := v.(string)
	return username, ok && username != ""
}
