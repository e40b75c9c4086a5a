package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRoles yalnızca belirtilen rollere izin verir; AuthMiddleware'den sonra kullanılmalıdır
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Kullanıcı rolü belirlenemedi"})
			c.Abort()
			return
		}

		role, ok := roleValue.(string)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Rol bilgisi işlenemedi"})
			c.Abort()
			return
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{
			"error": "Bu kaynağa erişim yetkiniz yok",
		})
		c.Abort()
	}
}
