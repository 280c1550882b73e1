package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func postBody(t *testing.T, maxBytes int64, size int) int {
	t.Helper()
	e := echo.New()
	e.Use(UploadBodyLimit(maxBytes))
	e.POST("/upload", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodPost, "/upload", bytes.NewReader(make([]byte, size)))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec.Code
}

func TestUploadBodyLimit(t *testing.T) {
	tests := []struct {
		name     string
		maxBytes int64
		size     int
		want     int
	}{
		{"within cap", 1 << 20, 512 << 10, http.StatusOK},
		{"within multipart overhead", 1 << 20, 1<<20 + 32<<10, http.StatusOK},
		{"over cap and overhead", 1 << 20, 2 << 20, http.StatusRequestEntityTooLarge},
		{"zero cap disables limit", 0, 2 << 20, http.StatusOK},
		{"negative cap disables limit", -1, 2 << 20, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, postBody(t, tt.maxBytes, tt.size))
		})
	}
}
