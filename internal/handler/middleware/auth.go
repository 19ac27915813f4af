package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"qr-loyalty-service/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the caller's bearer token and exposes the
// business/customer identity the rate limiter keys on. Token issuing
// belongs to the separate account service.
type AuthMiddleware struct {
	tokenService *jwt.Service
}

const (
	ctxBusinessIDKey = "business_id"
	ctxCustomerIDKey = "customer_id"
)

func NewAuthMiddleware(tokenService *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokenService.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxBusinessIDKey, claims.BusinessID)
		c.Set(ctxCustomerIDKey, claims.CustomerID)
		c.Set("jwt_claims", map[string]any{
			"business_id": claims.BusinessID,
			"customer_id": claims.CustomerID,
		})
		c.Next()
	}
}

func GetBusinessID(c *gin.Context) (string, bool) {
	if v, exists := c.Get(ctxBusinessIDKey); exists {
		if id, ok := v.(string); ok && id != "" {
			return id, true
		}
	}
	return "", false
}

func GetCustomerID(c *gin.Context) (string, bool) {
	if v, exists := c.Get(ctxCustomerIDKey); exists {
		if id, ok := v.(string); ok && id != "" {
			return id, true
		}
	}
	return "", false
}
