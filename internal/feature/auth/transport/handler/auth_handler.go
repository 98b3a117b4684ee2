// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shop_backend/internal/feature/auth/transport/http/dto"
	"shop_backend/internal/feature/auth/usecase"
	"shop_backend/internal/shared/response"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Signup は指定されたユーザー名、メールアドレス、パスワードで新規ユーザーを登録します。
	Signup(ctx context.Context, username, email, password string) error
	// Login はユーザーを認証し、成功時にJWTトークンを返します。
	Login(ctx context.Context, username, password string) (string, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth AuthUsecase
	log  *zap.Logger
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
func NewAuthHandler(auth AuthUsecase, log *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

// Signup はユーザー登録APIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - ユーザー名またはメールアドレスの重複時は409を返却
// - 成功時は201を返却
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("signup validation failed", zap.Error(err), zap.String("remote_addr", c.ClientIP()))
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid request"})
		return
	}
	if err := h.auth.Signup(c.Request.Context(), req.Username, req.Email, req.Password); err != nil {
		if errors.Is(err, usecase.ErrUserAlreadyExists) {
			// ユーザー列挙攻撃を防止するため、どちらが重複したかは返さない
			h.log.Warn("signup conflict", zap.String("username", req.Username), zap.String("remote_addr", c.ClientIP()))
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: "signup failed"})
			return
		}
		h.log.Error("signup failed", zap.String("username", req.Username), zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal server error"})
		return
	}
	h.log.Info("user signup successful", zap.String("username", req.Username), zap.String("remote_addr", c.ClientIP()))
	c.JSON(http.StatusCreated, response.MessageResponse{Message: "ok"})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - 認証失敗時は401を返却
// - 認証成功時はJWTトークン付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("login validation failed", zap.Error(err), zap.String("remote_addr", c.ClientIP()))
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid request"})
		return
	}
	token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			h.log.Warn("login failed", zap.String("username", req.Username), zap.String("remote_addr", c.ClientIP()))
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "invalid username or password"})
			return
		}
		h.log.Error("login error", zap.String("username", req.Username), zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal server error"})
		return
	}
	h.log.Info("user login successful", zap.String("username", req.Username), zap.String("remote_addr", c.ClientIP()))
	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}
