package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cms-backend/models"
)

// ResultService owns the one-result-per-enrollment upsert and lookup.
type ResultService struct {
	db *gorm.DB
}

func NewResultService(db *gorm.DB) *ResultService {
	return &ResultService{db: db}
}

// Upsert creates the result for an enrollment if none exists yet, otherwise
// updates the existing one in place. Null marks are permitted.
//
// The write is a single ON CONFLICT upsert keyed on the enrollment_id unique
// index, so two racing upserts converge on one row without a failed insert
// poisoning the transaction.
func (s *ResultService) Upsert(enrollmentID uint, grade string, marks *float64) (*models.Result, error) {
	var result models.Result

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Enrollment{}).Where("id = ?", enrollmentID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrEnrollmentNotFound
		}

		row := models.Result{
			EnrollmentID: enrollmentID,
			Grade:        grade,
			Marks:        marks,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "enrollment_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"grade", "marks", "updated_at"}),
		}).Create(&row).Error; err != nil {
			return err
		}

		// Re-read the canonical row; on the update path the returned id
		// would otherwise come from the insert attempt.
		return tx.Where("enrollment_id = ?", enrollmentID).First(&result).Error
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// ByEnrollment returns the result recorded for an enrollment, if any
func (s *ResultService) ByEnrollment(enrollmentID uint) (*models.Result, error) {
	var result models.Result
	if err := s.db.Where("enrollment_id = ?", enrollmentID).First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResultNotFound
		}
		return nil, err
	}
	return &result, nil
}
