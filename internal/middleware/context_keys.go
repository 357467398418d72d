package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// userIDKey is the key used to store the authenticated user's ID.
const userIDKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying the authenticated user ID.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	if v, exists := c.Get(string(userIDKey)); exists {
		userID, ok := v.(uuid.UUID)
		return userID, ok
	}
	// check in the request context as well
	userID, ok := c.Request.Context().Value(userIDKey).(uuid.UUID)
	return userID, ok
}
