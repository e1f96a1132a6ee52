package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"FormLab/global"
	"FormLab/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func variantRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/forms/:variant", ValidVariant(), func(c *gin.Context) {
		v := c.MustGet(global.CtxVariantKey).(models.Variant)
		c.String(http.StatusOK, string(v))
	})
	return r
}

func TestValidVariant_Unknown(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/forms/controlled", nil)
	variantRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"unknown form variant"}`, w.Body.String())
}

func TestValidVariant_Known_Passes(t *testing.T) {
	for _, v := range models.Variants {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/forms/"+string(v), nil)
		variantRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, string(v), w.Body.String())
	}
}
