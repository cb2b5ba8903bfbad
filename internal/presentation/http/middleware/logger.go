package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LoggerMiddleware logs one line per request, tagged with the same request
// ID the response propagates through X-Request-ID.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()

		c.Next()

		fullPath := c.Request.URL.Path
		if query := c.Request.URL.RawQuery; query != "" {
			fullPath += "?" + query
		}

		log.Printf("%s %s %s -> %d in %v (client %s)",
			shortRequestID(requestID),
			c.Request.Method,
			fullPath,
			c.Writer.Status(),
			time.Since(start),
			c.ClientIP(),
		)

		for _, e := range c.Errors {
			log.Printf("%s error: %v", shortRequestID(requestID), e.Err)
		}
	}
}

// shortRequestID trims a request ID for the log line. Caller-supplied IDs
// can be arbitrarily short, so this never assumes UUID length.
func shortRequestID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
