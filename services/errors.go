package services

import "errors"

// Sentinel errors returned by the services. Controllers map these to HTTP
// status codes with errors.Is; anything else is a 500.
var (
	ErrEmailTaken         = errors.New("email already in use")
	ErrUsernameTaken      = errors.New("username already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")

	ErrCourseCodeTaken = errors.New("course code already in use")
	ErrCourseNotFound  = errors.New("course not found")

	ErrStudentNotFound    = errors.New("student not found")
	ErrAlreadyEnrolled    = errors.New("already enrolled in this course")
	ErrCourseFull         = errors.New("course is full")
	ErrEnrollmentNotFound = errors.New("enrollment not found")

	ErrResultNotFound = errors.New("result not found")
)
