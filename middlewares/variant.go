// resolves the :variant path segment once and
// stores it in the Gin context for downstream handlers.

package middlewares

import (
	"net/http"

	"FormLab/global"
	"FormLab/models"

	"github.com/gin-gonic/gin"
)

// ValidVariant rejects unknown form variants with 400 before any handler runs.
func ValidVariant() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := models.ParseVariant(c.Param("variant"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "unknown form variant"})
			return
		}
		c.Set(global.CtxVariantKey, v)
		c.Next()
	}
}
