package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shop_backend/internal/feature/auth/usecase"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	SignupFunc func(ctx context.Context, username, email, password string) error
	LoginFunc  func(ctx context.Context, username, password string) (string, error)
}

// Signup is the mock implementation of the Signup method.
func (m *mockAuthUsecase) Signup(ctx context.Context, username, email, password string) error {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, username, email, password)
	}
	return nil // Default: success
}

// Login is the mock implementation of the Login method.
func (m *mockAuthUsecase) Login(ctx context.Context, username, password string) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, username, password)
	}
	return "", usecase.ErrInvalidCredentials // Default: failure
}

func postJSON(t *testing.T, router *gin.Engine, path string, body gin.H) (*httptest.ResponseRecorder, gin.H) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var responseBody gin.H
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
	return w, responseBody
}

func TestAuthHandler_Signup(t *testing.T) {
	validBody := gin.H{"username": "alice", "email": "alice@example.com", "password": "password123"}

	tests := []struct {
		name           string
		requestBody    gin.H
		mockSignupFunc func(ctx context.Context, username, email, password string) error
		expectedStatus int
		expectedBody   gin.H
	}{
		{
			name:        "success: user registration",
			requestBody: validBody,
			mockSignupFunc: func(ctx context.Context, username, email, password string) error {
				if username != "alice" || email != "alice@example.com" || password != "password123" {
					return errors.New("unexpected arguments")
				}
				return nil
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   gin.H{"message": "ok"},
		},
		{
			name:           "failure: invalid email address",
			requestBody:    gin.H{"username": "alice", "email": "invalid-email", "password": "password123"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid request"},
		},
		{
			name:           "failure: short password",
			requestBody:    gin.H{"username": "alice", "email": "alice@example.com", "password": "short"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid request"},
		},
		{
			name:           "failure: missing username",
			requestBody:    gin.H{"email": "alice@example.com", "password": "password123"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid request"},
		},
		{
			name:           "failure: duplicate user",
			requestBody:    validBody,
			mockSignupFunc: func(ctx context.Context, username, email, password string) error { return usecase.ErrUserAlreadyExists },
			expectedStatus: http.StatusConflict,
			expectedBody:   gin.H{"error": "signup failed"},
		},
		{
			name:           "failure: unexpected usecase error",
			requestBody:    validBody,
			mockSignupFunc: func(ctx context.Context, username, email, password string) error { return errors.New("db down") },
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   gin.H{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{SignupFunc: tt.mockSignupFunc}
			if tt.mockSignupFunc == nil {
				mockUC.SignupFunc = func(ctx context.Context, username, email, password string) error {
					t.Error("usecase should not be called")
					return nil
				}
			}
			router := gin.New()
			router.POST("/signup", NewAuthHandler(mockUC, zap.NewNop()).Signup)

			w, body := postJSON(t, router, "/signup", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedBody, body)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    gin.H
		mockLoginFunc  func(ctx context.Context, username, password string) (string, error)
		expectedStatus int
		expectedBody   gin.H
	}{
		{
			name:           "success: user login",
			requestBody:    gin.H{"username": "alice", "password": "password123"},
			mockLoginFunc:  func(ctx context.Context, username, password string) (string, error) { return "dummy-jwt-token", nil },
			expectedStatus: http.StatusOK,
			expectedBody:   gin.H{"token": "dummy-jwt-token"},
		},
		{
			name:           "failure: missing password",
			requestBody:    gin.H{"username": "alice"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid request"},
		},
		{
			name:           "failure: invalid credentials",
			requestBody:    gin.H{"username": "alice", "password": "wrong-password"},
			mockLoginFunc:  func(ctx context.Context, username, password string) (string, error) { return "", usecase.ErrInvalidCredentials },
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   gin.H{"error": "invalid username or password"},
		},
		{
			name:        "failure: token signing error is hidden",
			requestBody: gin.H{"username": "alice", "password": "password123"},
			mockLoginFunc: func(ctx context.Context, username, password string) (string, error) {
				return "", errors.New("failed to generate token: bad key")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   gin.H{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.POST("/login", NewAuthHandler(&mockAuthUsecase{LoginFunc: tt.mockLoginFunc}, zap.NewNop()).Login)

			w, body := postJSON(t, router, "/login", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedBody, body)
		})
	}
}
