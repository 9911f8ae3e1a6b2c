package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// CacheControl marks responses as cacheable for maxAge; error responses
// override it with no-store.
// Datasets are read-only snapshots, so a report for the same URL only changes
// when the dataset is reloaded. A zero maxAge disables caching.
func CacheControl(maxAge time.Duration) gin.HandlerFunc {
	value := "no-store"
	if maxAge > 0 {
		value = fmt.Sprintf("public, max-age=%d", int(maxAge.Seconds()))
	}
	return func(c *gin.Context) {
		c.Header("Cache-Control", value)
		c.Next()
	}
}
