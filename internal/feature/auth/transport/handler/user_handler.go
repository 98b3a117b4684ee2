package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shop_backend/internal/feature/auth/domain/entity"
	"shop_backend/internal/feature/auth/transport/http/dto"
	"shop_backend/internal/feature/auth/usecase"
	"shop_backend/internal/shared/paging"
	"shop_backend/internal/shared/response"
)

// UserUsecase はユーザー参照のユースケースを定義します。
type UserUsecase interface {
	GetByUsername(ctx context.Context, username string) (*entity.AppUser, error)
	GetByEmail(ctx context.Context, email string) (*entity.AppUser, error)
	SearchUsers(ctx context.Context, keyword string, req paging.PageRequest) (paging.Page[entity.AppUser], error)
	RolesOf(ctx context.Context, username string) ([]string, error)
}

// UserHandler はユーザー参照のHTTPリクエストを処理します。
type UserHandler struct {
	users UserUsecase
	log   *zap.Logger
}

// NewUserHandler はUserHandlerの新しいインスタンスを生成します。
func NewUserHandler(users UserUsecase, log *zap.Logger) *UserHandler {
	return &UserHandler{users: users, log: log}
}

// List はユーザー名のキーワード検索をページ単位で返します。
//
// エンドポイント例:
// GET /api/users?keyword=ali&page=0&size=20&sort=username,desc
// GET /api/users?email=alice@example.com
func (h *UserHandler) List(c *gin.Context) {
	var q dto.ListUsersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid query"})
		return
	}
	sort, err := paging.ParseSorts(q.Sort)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	req := paging.NewPageRequest(q.Page, q.Size, sort...)
	if q.Email != "" {
		h.byEmail(c, q.Email, req)
		return
	}

	page, err := h.users.SearchUsers(c.Request.Context(), q.Keyword, req)
	if err != nil {
		if errors.Is(err, paging.ErrInvalidSortProperty) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}
		h.log.Error("failed to search users", zap.String("keyword", q.Keyword), zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, response.FromPage(page, dto.NewUserItem))
}

// byEmail はメールアドレスに一致するユーザーを0件か1件のページで返します。
func (h *UserHandler) byEmail(c *gin.Context, email string, req paging.PageRequest) {
	var users []entity.AppUser
	user, err := h.users.GetByEmail(c.Request.Context(), email)
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
	case err != nil:
		h.log.Error("failed to get user by email", zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal server error"})
		return
	default:
		users = append(users, *user)
	}

	total := int64(len(users))
	if req.Offset() > 0 {
		users = nil
	}
	c.JSON(http.StatusOK, response.FromPage(paging.NewPage(users, req, total), dto.NewUserItem))
}

// Get はユーザー名で1件のユーザーを返します。存在しない場合は404です。
func (h *UserHandler) Get(c *gin.Context) {
	username := c.Param("username")
	user, err := h.users.GetByUsername(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "user not found"})
			return
		}
		h.log.Error("failed to get user", zap.String("username", username), zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.NewUserItem(*user))
}

// Roles はユーザーのロール名一覧を返します。ロールが無い場合は空配列です。
func (h *UserHandler) Roles(c *gin.Context) {
	username := c.Param("username")
	roles, err := h.users.RolesOf(c.Request.Context(), username)
	if err != nil {
		h.log.Error("failed to resolve roles", zap.String("username", username), zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.RolesResponse{Username: username, Roles: roles})
}
