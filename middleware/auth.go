package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/akashasahu07/Linkedin-Clone/models"
	"github.com/akashasahu07/Linkedin-Clone/token"
)

// Context keys set by RequireAuth for downstream handlers.
const (
	ContextUserID = "userId"
	ContextUser   = "user"
)

// UserFinder resolves a verified token's user id to a full user record.
// Satisfied by *store.Users.
type UserFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// RequireAuth extracts the bearer token, verifies it, and re-resolves the
// bound user. Missing, tampered and expired tokens all map to 401; so does a
// token whose user no longer exists. Which check failed is not revealed to
// the caller beyond missing-vs-invalid.
func RequireAuth(tokens *token.Service, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		userIDStr, err := tokens.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		userID, err := primitive.ObjectIDFromHex(userIDStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			// Covers both a deleted user and a store failure; neither
			// yields a usable identity.
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUser, user)
		c.Next()
	}
}

// AuthedUser returns the user record resolved by RequireAuth.
func AuthedUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
