package services

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cms-backend/models"
	"cms-backend/utils"
)

// EnrollmentService owns enrollment creation, dropping and the denormalized
// list views.
type EnrollmentService struct {
	db *gorm.DB
}

func NewEnrollmentService(db *gorm.DB) *EnrollmentService {
	return &EnrollmentService{db: db}
}

// Enroll creates an enrollment for the given student and course, stamped with
// the current time, and returns the denormalized view.
//
// The whole check-then-insert runs in one transaction: the course row is
// locked before the capacity count so two requests cannot both grab the last
// seat, and the (student_id, course_id) unique index backstops the duplicate
// check.
func (s *EnrollmentService) Enroll(studentID, courseID uint) (*models.EnrollmentView, error) {
	var enrollment models.Enrollment

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.Enrollment{}).
			Where("student_id = ? AND course_id = ?", studentID, courseID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyEnrolled
		}

		var course models.Course
		if err := lockForUpdate(tx).First(&course, courseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCourseNotFound
			}
			return err
		}

		var enrolled int64
		err = tx.Model(&models.Enrollment{}).
			Where("course_id = ?", courseID).
			Count(&enrolled).Error
		if err != nil {
			return err
		}
		if enrolled >= int64(course.Capacity) {
			return ErrCourseFull
		}

		var student models.User
		if err := tx.First(&student, studentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStudentNotFound
			}
			return err
		}

		enrollment = models.Enrollment{
			StudentID:  studentID,
			CourseID:   courseID,
			EnrolledAt: time.Now(),
			Student:    &student,
			Course:     &course,
		}
		if err := tx.Omit(clause.Associations).Create(&enrollment).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyEnrolled
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Best-effort confirmation email, never blocks the response
	go func(email, username string, course models.Course) {
		if err := utils.SendEnrollmentConfirmation(email, username, course.Code, course.Title); err != nil {
			log.Printf("Error sending enrollment confirmation to %s: %v", email, err)
		}
	}(enrollment.Student.Email, enrollment.Student.Username, *enrollment.Course)

	view := enrollment.View()
	return &view, nil
}

// Drop deletes an enrollment by id, unconditionally. The associated result is
// not removed inline; the maintenance sweep reclaims orphaned results.
// Hard delete so the unique (student, course) index allows re-enrollment.
func (s *EnrollmentService) Drop(id uint) error {
	return s.db.Unscoped().Delete(&models.Enrollment{}, id).Error
}

// ByStudent returns all enrollments for a student as denormalized views
func (s *EnrollmentService) ByStudent(studentID uint) ([]models.EnrollmentView, error) {
	return s.listViews("student_id = ?", studentID)
}

// ByCourse returns all enrollments for a course as denormalized views
func (s *EnrollmentService) ByCourse(courseID uint) ([]models.EnrollmentView, error) {
	return s.listViews("course_id = ?", courseID)
}

func (s *EnrollmentService) listViews(cond string, arg uint) ([]models.EnrollmentView, error) {
	var enrollments []models.Enrollment
	err := s.db.Where(cond, arg).
		Preload("Student").
		Preload("Course").
		Preload("Result").
		Order("enrolled_at asc").
		Find(&enrollments).Error
	if err != nil {
		return nil, err
	}

	views := make([]models.EnrollmentView, 0, len(enrollments))
	for i := range enrollments {
		views = append(views, enrollments[i].View())
	}
	return views, nil
}

// lockForUpdate takes a row-level lock on Postgres. SQLite (tests) serializes
// writing transactions on its own and rejects FOR UPDATE syntax.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}
