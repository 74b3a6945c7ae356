package apperrors

import "errors"

// Common errors
var (
	// Resource errors: a direct lookup or delete targeted an id absent from its store
	ErrResourceNotFound = errors.New("resource not found")

	// Reference errors: a write supplied an id for a related entity that does
	// not exist in its store. The write is rejected and nothing is persisted.
	ErrReferenceNotFound = errors.New("referenced entity not found")

	// ErrResourceInUse: the database rejected a delete because other rows still
	// reference the target
	ErrResourceInUse = errors.New("resource is referenced by other entities")

	// ErrDuplicateResource: a save collided with a uniqueness constraint
	// (course/section code, login, enrollment number)
	ErrDuplicateResource = errors.New("resource already exists")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
)

// Course errors
var (
	ErrCourseNotFound    = errors.New("course not found")
	ErrModalityImmutable = errors.New("course modality cannot be changed")
	ErrInvalidModality   = errors.New("unknown course modality")
)

// Instructor errors
var (
	ErrInstructorNotFound = errors.New("instructor not found")
)

// Student errors
var (
	ErrStudentNotFound = errors.New("student not found")
)

// Section errors
var (
	ErrSectionNotFound = errors.New("section not found")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewReferenceNotFoundError creates a new custom error for a dangling reference with a message
func NewReferenceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrReferenceNotFound,
		Message: message,
	}
}

// NewValidationError creates a new custom error for failed validation with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
