package middleware

import "github.com/gin-gonic/gin"

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// requestIDKey is the key used to store the request ID in the Gin and request contexts.
const requestIDKey = contextKey("requestID")

// GetRequestIDFromContext retrieves the request ID from the Gin context.
// It returns the request ID and a boolean indicating if it was found.
func GetRequestIDFromContext(c *gin.Context) (string, bool) {
	requestIDVal, exists := c.Get(string(requestIDKey))
	if !exists {
		// check in the request context as well
		if requestID, ok := c.Request.Context().Value(requestIDKey).(string); ok {
			return requestID, true
		}
		return "", false
	}

	requestID, ok := requestIDVal.(string)
	if !ok {
		return "", false
	}

	return requestID, true
}
