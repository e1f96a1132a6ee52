package handlers

import (
	"bytes"
	"encoding/base64"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"FormLab/core"
	"FormLab/mocks"
	"FormLab/models"
	"FormLab/repositories"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setup(r *gin.Engine, svc *mocks.SubmissionServiceMock) {
	h := NewSubmissionHandler(svc)
	r.GET("/health", Health)
	r.GET("/countries", h.Countries)
	r.POST("/password/strength", h.PasswordStrength)
	r.POST("/forms/:variant/validate", h.Validate)
	r.POST("/forms/:variant/submissions", h.Submit)
	r.GET("/submissions", h.Overview)
	r.GET("/submissions/:variant", h.Latest)
	r.DELETE("/submissions/:variant/new-flag", h.ClearNewFlag)
	r.GET("/export/submissions.xlsx", h.Export)
}

func newRouter() (*gin.Engine, *mocks.SubmissionServiceMock) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := new(mocks.SubmissionServiceMock)
	setup(r, svc)
	return r, svc
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r, _ := newRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestSubmit_JSON_Created(t *testing.T) {
	r, svc := newRouter()

	raw := core.RawInput{
		core.FieldName:          core.Text("Alice"),
		core.FieldAge:           core.Number(30),
		core.FieldTermsAccepted: core.Boolean(true),
		core.FieldImage:         core.DataURIText("data:image/png;base64,AAAA"),
	}
	svc.On("Submit", models.VariantManaged, raw).
		Return(&models.Submission{ID: "abc", Name: "Alice", IsNew: true}, core.ValidationResult{Errors: map[string]string{}, IsValid: true}, nil)

	w := doJSON(r, http.MethodPost, "/forms/managed/submissions",
		`{"name":"Alice","age":30,"termsAccepted":true,"image":"data:image/png;base64,AAAA"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"abc"`)
	assert.Contains(t, w.Body.String(), `"isNew":true`)
	svc.AssertExpectations(t)
}

func TestSubmit_ValidationFailure_422(t *testing.T) {
	r, svc := newRouter()

	errs := map[string]string{core.FieldName: "Name is required", core.FieldCountry: "Country is required"}
	svc.On("Submit", models.VariantUncontrolled, mock.Anything).
		Return(nil, core.ValidationResult{Errors: errs, IsValid: false}, nil)

	w := doJSON(r, http.MethodPost, "/forms/uncontrolled/submissions", `{"name":""}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"errors":{"name":"Name is required","country":"Country is required"}}`, w.Body.String())
}

func TestSubmit_UnknownVariant_400(t *testing.T) {
	r, svc := newRouter()

	w := doJSON(r, http.MethodPost, "/forms/controlled/submissions", `{"name":"Alice"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestSubmit_BadJSON_400(t *testing.T) {
	r, svc := newRouter()

	w := doJSON(r, http.MethodPost, "/forms/managed/submissions", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestSubmit_StoreError_500(t *testing.T) {
	r, svc := newRouter()
	svc.On("Submit", models.VariantManaged, mock.Anything).
		Return(nil, core.ValidationResult{Errors: map[string]string{}, IsValid: true}, assert.AnError)

	w := doJSON(r, http.MethodPost, "/forms/managed/submissions", `{"name":"Alice"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSubmit_Multipart_ImageBecomesBlob(t *testing.T) {
	r, svc := newRouter()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("name", "Alice"))
	require.NoError(t, mw.WriteField("termsAccepted", "on"))
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="image"; filename="me.png"`)
	hdr.Set("Content-Type", "image/png")
	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write([]byte{0x89, 'P', 'N', 'G'})
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	svc.On("Submit", models.VariantUncontrolled, mock.MatchedBy(func(raw core.RawInput) bool {
		b, ok := raw.Get(core.FieldImage).AsBlob()
		name, _ := raw.Get(core.FieldName).AsText()
		return ok && name == "Alice" &&
			b.Name == "me.png" && b.MIMEType == "image/png" && b.Size == 4 && len(b.Data) == 4 &&
			raw.Get(core.FieldTermsAccepted).Kind() == core.KindText
	})).Return(&models.Submission{ID: "u1"}, core.ValidationResult{Errors: map[string]string{}, IsValid: true}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/forms/uncontrolled/submissions", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}

func TestValidate_ImageObject(t *testing.T) {
	r, svc := newRouter()

	data := base64.StdEncoding.EncodeToString([]byte("png-bytes"))
	svc.On("Check", mock.MatchedBy(func(raw core.RawInput) bool {
		b, ok := raw.Get(core.FieldImage).AsBlob()
		return ok && b.MIMEType == "image/png" && string(b.Data) == "png-bytes" &&
			raw.Get("hobbies").Kind() == core.KindUnsupported
	})).Return(models.CheckResponse{Errors: map[string]string{}, IsValid: true})

	w := doJSON(r, http.MethodPost, "/forms/managed/validate",
		`{"image":{"name":"a.png","type":"image/png","data":"`+data+`"},"hobbies":["x"]}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"isValid":true`)
	svc.AssertExpectations(t)
}

func TestValidate_ImageSizeComesFromData(t *testing.T) {
	r, svc := newRouter()

	data := base64.StdEncoding.EncodeToString(make([]byte, 2048))
	svc.On("Check", mock.MatchedBy(func(raw core.RawInput) bool {
		b, ok := raw.Get(core.FieldImage).AsBlob()
		return ok && b.Size == 2048
	})).Return(models.CheckResponse{Errors: map[string]string{}, IsValid: true})

	w := doJSON(r, http.MethodPost, "/forms/managed/validate",
		`{"image":{"type":"image/jpeg","size":100,"data":"`+data+`"}}`)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestValidate_BadBase64IsUnsupported(t *testing.T) {
	r, svc := newRouter()

	svc.On("Check", mock.MatchedBy(func(raw core.RawInput) bool {
		return raw.Get(core.FieldImage).Kind() == core.KindUnsupported
	})).Return(models.CheckResponse{Errors: map[string]string{core.FieldImage: "bad"}})

	w := doJSON(r, http.MethodPost, "/forms/managed/validate", `{"image":{"type":"image/png","data":"%%%"}}`)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestPasswordStrength(t *testing.T) {
	r, svc := newRouter()
	svc.On("PasswordStrength", "abc").Return(core.PasswordStrength{HasLowerCase: true})

	w := doJSON(r, http.MethodPost, "/password/strength", `{"password":"abc"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"hasNumber":false,"hasUpperCase":false,"hasLowerCase":true,"hasSpecialChar":false,"strong":false}`, w.Body.String())
}

func TestCountries(t *testing.T) {
	r, svc := newRouter()
	svc.On("Countries", "fin").Return([]string{"Finland"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/countries?q=fin", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"countries":["Finland"]}`, w.Body.String())
}

func TestOverview(t *testing.T) {
	r, svc := newRouter()
	svc.On("Overview").Return(&models.Overview{Managed: &models.Submission{ID: "m"}}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/submissions", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"uncontrolled":null`)
	assert.Contains(t, w.Body.String(), `"id":"m"`)
}

func TestLatest_NotFound(t *testing.T) {
	r, svc := newRouter()
	svc.On("Latest", models.VariantManaged).Return(nil, repositories.ErrNotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/submissions/managed", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClearNewFlag(t *testing.T) {
	r, svc := newRouter()
	svc.On("ClearNewFlag", models.VariantUncontrolled).Return(nil)
	svc.On("ClearNewFlag", models.VariantManaged).Return(assert.AnError)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/submissions/uncontrolled/new-flag", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/submissions/managed/new-flag", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestExport(t *testing.T) {
	r, svc := newRouter()
	svc.On("ExportXLSX", mock.Anything).Return([]byte("PK-fake"), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/export/submissions.xlsx", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, XLSXContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "submissions.xlsx")
	assert.Equal(t, "PK-fake", w.Body.String())
}

func TestExport_Error(t *testing.T) {
	r, svc := newRouter()
	svc.On("ExportXLSX", mock.Anything).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/export/submissions.xlsx", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
