package auth

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	RolesKey  contextKey = "roles"
)

// Interceptor handles JWT validation for incoming API calls and injects the
// identity into the gin context for the handlers downstream.
func Interceptor(verifier contract.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c.Request)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errors.ErrMissingToken.Error()})
			return
		}

		identity, err := verifier.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errors.ErrInvalidToken.Error()})
			return
		}

		c.Set(string(UserIDKey), identity.UserID)
		c.Set(string(RolesKey), identity.Roles)
		c.Next()
	}
}

// CurrentUser returns the identity injected by Interceptor.
func CurrentUser(c *gin.Context) (domain.UserID, bool) {
	value, ok := c.Get(string(UserIDKey))
	if !ok {
		return "", false
	}
	userID, ok := value.(domain.UserID)
	return userID, ok && userID != ""
}
