// catches panics and returns 500 without crashing the server.

package middlewares

import (
	"fmt"
	"log"
	"net/http"

	"FormLab/utils/redislog"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic in any downstream handler into a 500 JSON body.
// The panic value is logged, never sent to the client.
func Recovery(rlog *redislog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[panic] %v", r)
				rlog.Error("panic", map[string]string{"path": c.Request.URL.Path, "value": fmt.Sprint(r)})
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			}
		}()
		c.Next()
	}
}
