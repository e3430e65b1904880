package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey   = contextKey("userID")
	usernameKey = contextKey("username")
)

// WithCashier returns a copy of ctx carrying the authenticated cashier identity.
func WithCashier(ctx context.Context, cashierID, username string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, cashierID)
	return context.WithValue(ctx, usernameKey, username)
}

// GetUserIDFromContext retrieves the authenticated user ID from the request.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(userIDKey)); exists {
		userID, ok := v.(string)
		return userID, ok && userID != ""
	}
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// GetUsernameFromContext retrieves the authenticated username, if the token carried one.
func GetUsernameFromContext(c *gin.Context) string {
	username, _ := c.Request.Context().Value(usernameKey).(string)
	return username
}
