package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
)

// Entity errors. Each unwraps to its generic kind so callers can match either.
var (
	ErrUserNotFound         error = &CustomError{Err: ErrResourceNotFound, Message: "user not found"}
	ErrUsernameTaken        error = &CustomError{Err: ErrConflict, Message: "username already exists"}
	ErrStudentNotFound      error = &CustomError{Err: ErrResourceNotFound, Message: "student not found"}
	ErrInterventionNotFound error = &CustomError{Err: ErrResourceNotFound, Message: "intervention not found"}
)

// Classifier errors
var (
	ErrClassifierUnavailable = errors.New("classifier not loaded")
	ErrPredictionFailed      = errors.New("prediction failed")
)

// Is returns whether err matches target or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
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
