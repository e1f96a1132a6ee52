package handlers // Controller layer translates HTTP <-> service calls.

import (
	"bytes"
	"net/http"

	"FormLab/global"
	"FormLab/models"
	"FormLab/repositories"
	"FormLab/services"

	"github.com/gin-gonic/gin"
)

// XLSXContentType is the media type of the spreadsheet export.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SubmissionHandler bundles dependencies needed by the form endpoints.
type SubmissionHandler struct {
	svc services.SubmissionService
}

// NewSubmissionHandler constructs a handler for forms and their stored submissions.
func NewSubmissionHandler(svc services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{svc: svc}
}

// Health handles GET /health.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": global.AppVersion})
}

// Countries handles GET /countries?q=.
func (h *SubmissionHandler) Countries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"countries": h.svc.Countries(c.Query("q"))})
}

// PasswordStrength handles POST /password/strength; advisory only.
func (h *SubmissionHandler) PasswordStrength(c *gin.Context) {
	var req models.PasswordStrengthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.svc.PasswordStrength(req.Password))
}

// Validate handles POST /forms/:variant/validate: the full error map, nothing stored.
func (h *SubmissionHandler) Validate(c *gin.Context) {
	if _, ok := variantFrom(c); !ok {
		badVariant(c)
		return
	}
	raw, err := readRawInput(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.svc.Check(raw))
}

// Submit handles POST /forms/:variant/submissions.
// 201 with the stored copy, or 422 with every failing field.
func (h *SubmissionHandler) Submit(c *gin.Context) {
	v, ok := variantFrom(c)
	if !ok {
		badVariant(c)
		return
	}
	raw, err := readRawInput(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sub, res, err := h.svc.Submit(v, raw)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !res.IsValid {
		c.JSON(http.StatusUnprocessableEntity, models.ValidationFailure{Errors: res.Errors})
		return
	}
	c.JSON(http.StatusCreated, sub)
}

// Overview handles GET /submissions: the latest record of every variant.
func (h *SubmissionHandler) Overview(c *gin.Context) {
	out, err := h.svc.Overview()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// Latest handles GET /submissions/:variant.
func (h *SubmissionHandler) Latest(c *gin.Context) {
	v, ok := variantFrom(c)
	if !ok {
		badVariant(c)
		return
	}
	sub, err := h.svc.Latest(v)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// ClearNewFlag handles DELETE /submissions/:variant/new-flag.
func (h *SubmissionHandler) ClearNewFlag(c *gin.Context) {
	v, ok := variantFrom(c)
	if !ok {
		badVariant(c)
		return
	}
	if err := h.svc.ClearNewFlag(v); err != nil {
		storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Export handles GET /export/submissions.xlsx.
// The workbook is built in memory first so a failure can still answer with JSON.
func (h *SubmissionHandler) Export(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.svc.ExportXLSX(&buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="submissions.xlsx"`)
	c.Data(http.StatusOK, XLSXContentType, buf.Bytes())
}

// variantFrom prefers the value set by middlewares.ValidVariant and falls back to the path.
func variantFrom(c *gin.Context) (models.Variant, bool) {
	if v, ok := c.Get(global.CtxVariantKey); ok {
		vv, ok := v.(models.Variant)
		return vv, ok
	}
	return models.ParseVariant(c.Param("variant"))
}

func badVariant(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "unknown form variant"})
}

func storeError(c *gin.Context, err error) {
	if repositories.IsNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no submission yet"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
