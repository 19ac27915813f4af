//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"qr-loyalty-service/internal/handler/middleware"
	"qr-loyalty-service/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func corsConfig(exposeHeaders []string) config.CORSConfig {
	return config.CORSConfig{
		AllowOrigins:  []string{"http://localhost:3000"},
		AllowMethods:  []string{"GET", "POST"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: exposeHeaders,
		MaxAge:        12 * time.Hour,
	}
}

func performCORSRequest(cfg config.CORSConfig) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.NewCORSMiddleware(cfg))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCORSExposesRetryAfter(t *testing.T) {
	t.Run("added when the configured list omits it", func(t *testing.T) {
		w := performCORSRequest(corsConfig([]string{"Content-Length"}))

		assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "Retry-After")
		assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "Content-Length")
	})

	t.Run("not duplicated when already configured", func(t *testing.T) {
		w := performCORSRequest(corsConfig([]string{"Content-Length", "Retry-After"}))

		assert.Equal(t, 1, strings.Count(w.Header().Get("Access-Control-Expose-Headers"), "Retry-After"))
	})
}
