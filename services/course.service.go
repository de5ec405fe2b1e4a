package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"cms-backend/models"
)

// CourseService owns course CRUD and search.
type CourseService struct {
	db *gorm.DB
}

func NewCourseService(db *gorm.DB) *CourseService {
	return &CourseService{db: db}
}

// Create persists a new course. The course code must be unused.
func (s *CourseService) Create(course *models.Course) (*models.Course, error) {
	if err := s.db.Create(course).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCourseCodeTaken
		}
		return nil, err
	}
	return course, nil
}

// Update copies all mutable fields from the incoming representation onto the
// stored course and persists it.
func (s *CourseService) Update(id uint, updated *models.Course) (*models.Course, error) {
	var course models.Course
	if err := s.db.First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	course.Code = updated.Code
	course.Title = updated.Title
	course.Description = updated.Description
	course.Credits = updated.Credits
	course.Capacity = updated.Capacity
	course.Active = updated.Active

	if err := s.db.Save(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCourseCodeTaken
		}
		return nil, err
	}
	return &course, nil
}

// Delete removes a course by id. Deleting an absent id is a no-op.
// Hard delete, so the code stays reusable for a future course.
func (s *CourseService) Delete(id uint) error {
	return s.db.Unscoped().Delete(&models.Course{}, id).Error
}

// List returns all courses
func (s *CourseService) List() ([]models.Course, error) {
	var courses []models.Course
	if err := s.db.Order("code asc").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// Search runs a case-insensitive substring match over title and code,
// paginated, and returns the total match count alongside the page.
func (s *CourseService) Search(q string, page, limit int) ([]models.Course, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	pattern := "%" + strings.ToLower(q) + "%"
	query := s.db.Model(&models.Course{}).
		Where("lower(title) LIKE ? OR lower(code) LIKE ?", pattern, pattern)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var courses []models.Course
	err := query.Order("code asc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&courses).Error
	if err != nil {
		return nil, 0, err
	}

	return courses, total, nil
}
