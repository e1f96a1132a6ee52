// Data-access layer over GORM (only talks to the DB, no HTTP/JSON).
// Works with any dialect opened in config.InitDB: mysql | postgres | sqlite | sqlserver.

package repositories

import (
	"errors"
	"fmt"

	"FormLab/models"

	"gorm.io/gorm"
)

// gormRepo implements SubmissionRepository on a *gorm.DB.
type gormRepo struct{ db *gorm.DB }

// NewGormRepository injects *gorm.DB and returns the interface.
func NewGormRepository(db *gorm.DB) SubmissionRepository {
	return &gormRepo{db: db}
}

// Save replaces the variant's row inside one transaction (delete old, insert new).
func (r *gormRepo) Save(s *models.Submission) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("variant = ?", s.Variant).Delete(&models.Submission{}).Error; err != nil {
			return err
		}
		return tx.Create(s).Error
	})
	if err != nil {
		return fmt.Errorf("save %s submission: %w", s.Variant, err)
	}
	return nil
}

func (r *gormRepo) Find(v models.Variant) (*models.Submission, error) {
	var s models.Submission
	if err := r.db.Where("variant = ?", v).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find %s submission: %w", v, err)
	}
	return &s, nil
}

// ClearNewFlag is a single conditional UPDATE, so a row replaced in between is left alone.
// RowsAffected is not checked: MySQL reports 0 when the flag was already false.
func (r *gormRepo) ClearNewFlag(v models.Variant, id string) error {
	err := r.db.Model(&models.Submission{}).Where("variant = ? AND id = ?", v, id).Update("is_new", false).Error
	if err != nil {
		return fmt.Errorf("clear new flag of %s: %w", v, err)
	}
	return nil
}

func (r *gormRepo) List() ([]models.Submission, error) {
	var items []models.Submission
	if err := r.db.Order("variant ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	return items, nil
}
