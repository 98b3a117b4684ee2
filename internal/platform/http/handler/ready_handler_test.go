package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestReady(t *testing.T) {
	t.Parallel()

	ok := func(ctx context.Context) error { return nil }
	down := func(ctx context.Context) error { return errors.New("down") }

	tests := []struct {
		name         string
		checks       map[string]Check
		expectedCode int
		expectedBody string
	}{
		{"no checks", nil, http.StatusOK, `{"status":"ok"}`},
		{"all healthy", map[string]Check{"db": ok, "redis": ok}, http.StatusOK, `{"status":"ok"}`},
		{
			"failures are listed in name order",
			map[string]Check{"redis": down, "db": down, "cache": ok},
			http.StatusServiceUnavailable,
			`{"status":"unavailable","failed":["db","redis"]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := gin.New()
			r.GET("/readyz", Ready(tt.checks))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
		})
	}
}
