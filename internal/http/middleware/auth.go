package middleware

import (
	"net/http"
	"strings"

	"busbooking/internal/domain"
	"busbooking/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey = "userID"
	roleKey   = "userRole"
)

// AuthRequired validates a bearer token and stores the principal on the context.
func AuthRequired(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "missing bearer token"})
			return
		}
		p, err := services.ParseToken(secret, strings.TrimSpace(strings.TrimPrefix(auth, "Bearer ")))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "message": err.Error()})
			return
		}
		c.Set(userIDKey, p.UserID)
		c.Set(roleKey, p.Role)
		c.Next()
	}
}

// RequireRoles only lets through principals whose role is in allowedRoles.
// AuthRequired must run first.
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[strings.ToLower(strings.TrimSpace(r))] = struct{}{}
	}

	return func(c *gin.Context) {
		role := c.GetString(roleKey)
		if role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "unauthorized"})
			return
		}
		if _, ok := allowed[strings.ToLower(strings.TrimSpace(role))]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"status": "error", "message": "forbidden: role not allowed"})
			return
		}
		c.Next()
	}
}

// GetPrincipal returns the caller set by AuthRequired.
func GetPrincipal(c *gin.Context) (domain.Principal, bool) {
	id := c.GetInt64(userIDKey)
	if id <= 0 {
		return domain.Principal{}, false
	}
	return domain.Principal{UserID: id, Role: c.GetString(roleKey)}, true
}
