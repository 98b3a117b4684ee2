package jwtmw

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

// TestMain はテスト実行前にGinをテストモードに設定します。
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newContext(authHeader string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		c.Request.Header.Set("Authorization", authHeader)
	}
	return c, w
}

// TestAuthRequired_MissingBearerToken はBearerトークンがない場合やプレフィックスが不正な場合に401が返されることを検証します。
func TestAuthRequired_MissingBearerToken(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
	}{
		{"no header", ""},
		{"basic auth", "Basic dXNlcjpwYXNz"},
		{"bearer lowercase", "bearer token123"},
		{"no space after Bearer", "Bearertoken123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newContext(tt.authHeader)

			AuthRequired(testSecret)(c)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.True(t, c.IsAborted())
		})
	}
}

// TestAuthRequired_MissingJWTSecret はシークレットが未設定の場合に500が返されることを検証します。
func TestAuthRequired_MissingJWTSecret(t *testing.T) {
	c, w := newContext("Bearer sometoken")

	AuthRequired("")(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// TestAuthRequired_InvalidToken は不正なトークン（改ざん・期限切れ等）で401が返されることを検証します。
func TestAuthRequired_InvalidToken(t *testing.T) {
	expired, err := NewGenerator(testSecret, -time.Hour).GenerateToken(1, "alice", nil)
	require.NoError(t, err)
	wrongSecret, err := NewGenerator("wrong-secret", time.Hour).GenerateToken(1, "alice", nil)
	require.NoError(t, err)
	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "not-a-number",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"malformed token", "not.a.valid.token"},
		{"random string", "randomstring"},
		{"wrong secret", wrongSecret},
		{"expired token", expired},
		{"non numeric subject", badSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newContext("Bearer " + tt.token)

			AuthRequired(testSecret)(c)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

// TestAuthRequired_ValidToken は有効なトークンでリクエストが通過し、コンテキストにクレームが設定されることを検証します。
func TestAuthRequired_ValidToken(t *testing.T) {
	token, err := NewGenerator(testSecret, time.Hour).GenerateToken(42, "alice", []string{"ROLE_USER"})
	require.NoError(t, err)

	c, w := newContext("Bearer " + token)

	AuthRequired(testSecret)(c)

	require.False(t, c.IsAborted(), "response: %s", w.Body.String())
	assert.Equal(t, uint(42), c.MustGet(ContextUserID))
	assert.Equal(t, "alice", c.GetString(ContextUsername))
	assert.Equal(t, []string{"ROLE_USER"}, RolesFrom(c))
}

// TestAuthRequired_InvalidSigningMethod はnoneアルゴリズム（未署名）のトークンが拒否されることを検証します。
func TestAuthRequired_InvalidSigningMethod(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tokenStr, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	c, w := newContext("Bearer " + tokenStr)

	AuthRequired(testSecret)(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	gen := NewGenerator(testSecret, time.Hour)
	userToken, err := gen.GenerateToken(1, "alice", []string{"ROLE_USER"})
	require.NoError(t, err)
	adminToken, err := gen.GenerateToken(2, "root", []string{"ROLE_USER", "ROLE_ADMIN"})
	require.NoError(t, err)

	r := gin.New()
	r.GET("/admin", AuthRequired(testSecret), RequireRole("ROLE_ADMIN"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	tests := []struct {
		name     string
		token    string
		expected int
	}{
		{"admin passes", adminToken, http.StatusNoContent},
		{"user is forbidden", userToken, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expected, w.Code)
		})
	}
}
