// Package response はフィーチャー間で共有するHTTPレスポンスの形を定義します。
package response

import "shop_backend/internal/shared/paging"

// ErrorResponse は失敗時のレスポンスボディです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse は本文を持たない成功レスポンスです。
type MessageResponse struct {
	Message string `json:"message"`
}

// PageResponse はpaging.PageのJSON表現です。
type PageResponse[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int   `json:"total_pages"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
}

// FromPage はページの各要素をfnで変換してPageResponseを作ります。
func FromPage[T, U any](p paging.Page[T], fn func(T) U) PageResponse[U] {
	m := paging.Map(p, fn)
	return PageResponse[U]{
		Content:       m.Content,
		TotalElements: m.TotalElements,
		TotalPages:    m.TotalPages,
		Page:          m.Number,
		Size:          m.Size,
	}
}
