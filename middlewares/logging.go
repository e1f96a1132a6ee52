// access log: one line per request on stdout, plus an audit entry in Redis.

package middlewares

import (
	"log"
	"strconv"
	"time"

	"FormLab/utils/redislog"

	"github.com/gin-gonic/gin"
)

// RequestLogger prints method, path, status and duration for each request.
// rlog may be nil; server errors are additionally recorded at error level.
func RequestLogger(rlog *redislog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path // keep it, handlers may rewrite the URL
		c.Next()

		status := c.Writer.Status()
		elapsed := time.Since(start)
		log.Printf("%s %s %d %s", c.Request.Method, path, status, elapsed)

		meta := map[string]string{
			"method":   c.Request.Method,
			"path":     path,
			"status":   strconv.Itoa(status),
			"duration": elapsed.String(),
		}
		if status >= 500 {
			rlog.Error("http request", meta)
			return
		}
		rlog.Info("http request", meta)
	}
}
