package mocks

import (
	"FormLab/models"

	"github.com/stretchr/testify/mock"
)

// SubmissionRepositoryMock is a testify/mock for repositories.SubmissionRepository.
// We use this to unit-test the service layer without a real store.
type SubmissionRepositoryMock struct{ mock.Mock }

func (m *SubmissionRepositoryMock) Save(s *models.Submission) error {
	return m.Called(s).Error(0)
}

func (m *SubmissionRepositoryMock) Find(v models.Variant) (*models.Submission, error) {
	args := m.Called(v)
	if s := args.Get(0); s != nil {
		return s.(*models.Submission), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SubmissionRepositoryMock) ClearNewFlag(v models.Variant, id string) error {
	return m.Called(v, id).Error(0)
}

func (m *SubmissionRepositoryMock) List() ([]models.Submission, error) {
	args := m.Called()
	var items []models.Submission
	if v := args.Get(0); v != nil {
		items = v.([]models.Submission)
	}
	return items, args.Error(1)
}
