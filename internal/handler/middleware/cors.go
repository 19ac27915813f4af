package middleware

import (
	"log/slog"
	"slices"

	"qr-loyalty-service/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const retryAfterHeader = "Retry-After"

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	// Browser scanners must be able to read the throttle header on a 429,
	// whatever the deployment's configured expose list says.
	exposed := cfg.ExposeHeaders
	if !slices.Contains(exposed, retryAfterHeader) {
		exposed = append(slices.Clone(exposed), retryAfterHeader)
	}

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    exposed,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "AllowOrigins", cfg.AllowOrigins)
	return cors.New(corsCfg)
}
