package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/shared/ratelimiter"
)

// RateLimit はクライアントIPごとにリクエスト数を制限し、超過時は429を返します。
func RateLimit(limiter ratelimiter.RateLimiterInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
