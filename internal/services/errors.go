package services

import "errors"

// Validation and lookup failures are user-facing notices at the handler
// layer; they never become protocol-level errors.
var (
	ErrPasswordMismatch     = errors.New("passwords do not match")
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrRegistrationConflict = errors.New("registration conflict, please try again")

	ErrStudentNotFound  = errors.New("student with that index number not found")
	ErrInvalidReference = errors.New("invalid student index or course")
	ErrAlreadyEnrolled  = errors.New("student already enrolled in course")
	ErrInvalidVideoURL  = errors.New("invalid YouTube URL")

	ErrCourseNotFound = errors.New("course not found")
	ErrVideoNotFound  = errors.New("video not found")

	ErrValidationFailed = errors.New("validation failed")
)
