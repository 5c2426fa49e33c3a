package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func performBooking(t *testing.T, limiter gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/api/appointments", limiter, func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit_DisabledWithoutRedis(t *testing.T) {
	w := performBooking(t, RateLimit(nil, 30, time.Minute))
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (limiter must pass through without redis)", w.Code)
	}
}

func TestRateLimit_DisabledWithNonPositiveLimit(t *testing.T) {
	w := performBooking(t, RateLimit(nil, 0, time.Minute))
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
}
