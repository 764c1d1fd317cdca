package middleware

import (
	"net/http"
	"strings"

	"github.com/caowens/lifted-api/internal/auth"
	"github.com/gin-gonic/gin"
)

const userIDContextKey = "user_id"

// UserIDFromContext returns the authenticated caller's ID, if any.
func UserIDFromContext(c *gin.Context) (int, bool) {
	value, ok := c.Get(userIDContextKey)
	if !ok {
		return 0, false
	}
	userID, ok := value.(int)
	return userID, ok
}

// RequireAuth rejects requests without a valid bearer token.
func RequireAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return authMiddleware(tokens, true)
}

// OptionalAuth resolves a bearer token when one is presented but lets
// anonymous requests through. A token that is present but invalid is
// still rejected.
func OptionalAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return authMiddleware(tokens, false)
}

// authMiddleware is the single bearer-token path. The two exported modes
// differ only in whether a missing token is an error or a no-op.
func authMiddleware(tokens *auth.TokenManager, mandatory bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			if mandatory {
				c.JSON(http.StatusUnauthorized, gin.H{
					"error": "Authorization header is required",
				})
				c.Abort()
				return
			}
			c.Next()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header must be in the format 'Bearer {token}'",
			})
			c.Abort()
			return
		}

		claims, err := tokens.Verify(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid token",
			})
			c.Abort()
			return
		}

		c.Set(userIDContextKey, claims.UserID)
		c.Next()
	}
}
