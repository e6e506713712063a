package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// APIKeyHeader carries the shared secret on every protected request.
const APIKeyHeader = "X-API-Key"

// APIKey rejects the request with 401 unless the X-API-Key header equals
// secret. An empty secret rejects everything.
func APIKey(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(APIKeyHeader)
		if secret == "" || key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(secret)) != 1 {
			log.Warn().
				Str("path", c.Request.URL.Path).
				Str("request_id", GetRequestID(c)).
				Bool("header_present", key != "").
				Msg("rejected request with invalid api key")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API Key"})
			return
		}
		c.Next()
	}
}
