package middleware

import "github.com/gin-gonic/gin"

// contextKey is a private key type for request-context values. Using a custom
// type prevents collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	userIDKey    = contextKey("userID")
	accountIDKey = contextKey("accountID")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	val := c.Request.Context().Value(userIDKey)
	if val == nil {
		return "", false
	}
	userID, ok := val.(string)
	return userID, ok
}

// GetAccountIDFromContext retrieves the shop account ID the authenticated
// user works on. Every store read and write is scoped to it.
func GetAccountIDFromContext(c *gin.Context) (string, bool) {
	val := c.Request.Context().Value(accountIDKey)
	if val == nil {
		return "", false
	}
	accountID, ok := val.(string)
	return accountID, ok
}
