package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"acacia-booking/internal/usecase"
	"acacia-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxPrincipalKey = "principal"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
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

		userID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxPrincipalKey, shared.Principal{ID: userID, Role: role})
		c.Next()
	}
}

// RequireStaff must run after RequireAuth.
func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if !principal.IsStaff() {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetPrincipal(c *gin.Context) (shared.Principal, bool) {
	v, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return shared.Principal{}, false
	}

	principal, ok := v.(shared.Principal)
	return principal, ok
}
