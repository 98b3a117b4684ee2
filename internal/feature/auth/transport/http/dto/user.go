package dto

import (
	"time"

	"shop_backend/internal/feature/auth/domain/entity"
)

// ListUsersQuery は GET /api/users のクエリパラメータです。
// sortは "username,desc" 形式で複数指定できます。emailを指定した場合はメールアドレスの完全一致で検索し、keywordは使いません。
type ListUsersQuery struct {
	Keyword string   `form:"keyword"`
	Email   string   `form:"email" binding:"omitempty,email"`
	Page    int      `form:"page" binding:"min=0"`
	Size    int      `form:"size" binding:"min=0"`
	Sort    []string `form:"sort"`
}

// UserItem はレスポンスに含めるユーザー情報です。パスワードは含めません。
type UserItem struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// RolesResponse はユーザーのロール一覧です。
type RolesResponse struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

// NewUserItem はentity.AppUserからUserItemを作ります。
func NewUserItem(u entity.AppUser) UserItem {
	return UserItem{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
