package routes // Router setup layer.

import (
	"FormLab/handlers"
	"FormLab/middlewares"
	"FormLab/services"
	"FormLab/utils/redislog"

	"github.com/gin-gonic/gin"
)

// maxUploadMemory caps how much of a multipart body is held in memory; the rest spills to disk.
const maxUploadMemory = 8 << 20

// Setup attaches middlewares and registers all endpoints. rlog may be nil.
func Setup(r *gin.Engine, svc services.SubmissionService, rlog *redislog.Logger) {
	r.Use(middlewares.RequestLogger(rlog), middlewares.Recovery(rlog))
	r.MaxMultipartMemory = maxUploadMemory

	r.GET("/health", handlers.Health)

	api := r.Group("/api/v1")
	h := handlers.NewSubmissionHandler(svc)

	// Field helpers used while the user types.
	api.GET("/countries", h.Countries)
	api.POST("/password/strength", h.PasswordStrength)

	forms := api.Group("/forms/:variant", middlewares.ValidVariant())
	forms.POST("/validate", h.Validate)
	forms.POST("/submissions", h.Submit)

	api.GET("/submissions", h.Overview)
	stored := api.Group("/submissions/:variant", middlewares.ValidVariant())
	stored.GET("", h.Latest)
	stored.DELETE("/new-flag", h.ClearNewFlag)

	api.GET("/export/submissions.xlsx", h.Export)
}
