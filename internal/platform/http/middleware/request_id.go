// Package middleware はgin用の共通ミドルウェアを提供します。
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderRequestID はリクエストIDを運ぶヘッダーです。
	HeaderRequestID = "X-Request-ID"
	// ContextRequestID はgin.Contextに保存するキーです。
	ContextRequestID = "request_id"
)

// RequestID は受信したX-Request-IDを引き継ぎ、無ければUUIDを採番します。
// IDはレスポンスヘッダーにも設定されます。
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// GetRequestID はコンテキストに保存されたリクエストIDを返します。
func GetRequestID(c *gin.Context) string {
	return c.GetString(ContextRequestID)
}
