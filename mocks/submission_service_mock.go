package mocks

import (
	"io"

	"FormLab/core"
	"FormLab/models"

	"github.com/stretchr/testify/mock"
)

// SubmissionServiceMock is a testify/mock for services.SubmissionService.
// We use this to test the HTTP handlers without real business logic.
type SubmissionServiceMock struct{ mock.Mock }

func (m *SubmissionServiceMock) Submit(v models.Variant, raw core.RawInput) (*models.Submission, core.ValidationResult, error) {
	args := m.Called(v, raw)
	var sub *models.Submission
	if s := args.Get(0); s != nil {
		sub = s.(*models.Submission)
	}
	return sub, args.Get(1).(core.ValidationResult), args.Error(2)
}

func (m *SubmissionServiceMock) Check(raw core.RawInput) models.CheckResponse {
	return m.Called(raw).Get(0).(models.CheckResponse)
}

func (m *SubmissionServiceMock) PasswordStrength(pw string) core.PasswordStrength {
	return m.Called(pw).Get(0).(core.PasswordStrength)
}

func (m *SubmissionServiceMock) Countries(query string) []string {
	args := m.Called(query)
	if v := args.Get(0); v != nil {
		return v.([]string)
	}
	return nil
}

func (m *SubmissionServiceMock) Latest(v models.Variant) (*models.Submission, error) {
	args := m.Called(v)
	if s := args.Get(0); s != nil {
		return s.(*models.Submission), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SubmissionServiceMock) Overview() (*models.Overview, error) {
	args := m.Called()
	if o := args.Get(0); o != nil {
		return o.(*models.Overview), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SubmissionServiceMock) ClearNewFlag(v models.Variant) error {
	return m.Called(v).Error(0)
}

// ExportXLSX writes the bytes given as the first return value, if any.
func (m *SubmissionServiceMock) ExportXLSX(w io.Writer) error {
	args := m.Called(w)
	if b, ok := args.Get(0).([]byte); ok {
		_, _ = w.Write(b)
	}
	return args.Error(1)
}

func (m *SubmissionServiceMock) Close() {}
