package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TokenVerifier resolves a bearer token to the user identifier it is bound to
type TokenVerifier interface {
	Verify(token string) (uuid.UUID, error)
}

// RequireAuth validates the Authorization header and injects the resolved
// user identifier into the request context. Missing, malformed and expired
// tokens all produce the same 401 response; the actual failure reason is only
// logged. Downstream handlers must take the acting user exclusively from
// GetUserID, never from the request body.
func RequireAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "unauthorized",
			})
			return
		}

		userID, err := verifier.Verify(token)
		if err != nil {
			slog.Warn("Token verification failed",
				"error", err.Error(),
				"path", c.Request.URL.Path,
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "unauthorized",
			})
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

// GetUserID extracts the authenticated user identifier from the context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}

func bearerToken(header string) (string, bool) {
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", false
	}
	return token, true
}
