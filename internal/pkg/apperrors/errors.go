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
	ErrTokenNotFound      = errors.New("token not found")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)

// User errors
var (
	ErrUserNotFound          = errors.New("user not found")
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrAdminNotDeletable     = errors.New("admin user cannot be deleted")
)

// Course errors
var (
	ErrCourseNotFound  = errors.New("course not found")
	ErrInvalidCategory = errors.New("invalid course category")
)

// Email verification errors
var (
	ErrInvalidVerificationToken = errors.New("invalid verification token")
)
