package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment binds one student to one course. The composite unique index is
// the authoritative guard against double enrollment; the service check on top
// of it only exists to produce a friendlier error.
type Enrollment struct {
	gorm.Model
	StudentID  uint      `json:"studentId" gorm:"not null;uniqueIndex:uk_enrollment_student_course"`
	CourseID   uint      `json:"courseId" gorm:"not null;uniqueIndex:uk_enrollment_student_course"`
	EnrolledAt time.Time `json:"enrolledAt" gorm:"not null"`

	// One-way associations for Preload; no back-references on User/Course.
	Student *User   `json:"-" gorm:"foreignKey:StudentID"`
	Course  *Course `json:"-" gorm:"foreignKey:CourseID"`
	Result  *Result `json:"-" gorm:"foreignKey:EnrollmentID"`
}

// EnrollmentView is the denormalized read model joining enrollment, student,
// course and (optional) result data for API responses.
type EnrollmentView struct {
	ID              uint      `json:"id"`
	StudentID       uint      `json:"studentId"`
	StudentUsername string    `json:"studentUsername"`
	CourseID        uint      `json:"courseId"`
	CourseCode      string    `json:"courseCode"`
	CourseTitle     string    `json:"courseTitle"`
	EnrolledAt      time.Time `json:"enrolledAt"`
	Grade           *string   `json:"grade"`
	Marks           *float64  `json:"marks"`
}

// View builds the denormalized read model. Student and Course must be loaded;
// Result may be nil, in which case grade and marks stay null.
func (e *Enrollment) View() EnrollmentView {
	view := EnrollmentView{
		ID:         e.ID,
		StudentID:  e.StudentID,
		CourseID:   e.CourseID,
		EnrolledAt: e.EnrolledAt,
	}
	if e.Student != nil {
		view.StudentUsername = e.Student.Username
	}
	if e.Course != nil {
		view.CourseCode = e.Course.Code
		view.CourseTitle = e.Course.Title
	}
	if e.Result != nil {
		view.Grade = &e.Result.Grade
		view.Marks = e.Result.Marks
	}
	return view
}
