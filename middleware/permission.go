package middleware

import (
	"net/http"

	"bfx/models"

	"github.com/gin-gonic/gin"
)

// RequireCapability exige que o perfil da sessão tenha a permissão.
// Deve ser usado depois de JWTAuth.
func RequireCapability(capability models.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := CurrentIdentity(c)
		if id.UserID == 0 {
			abortUnauthorized(c, "Faça login para continuar")
			return
		}
		if !id.Role.Can(capability) {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    http.StatusForbidden,
				"message": "Permissão insuficiente",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
