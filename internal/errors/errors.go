// Package errors provides custom error types for the Crime Map API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
)

// Category and sub-category errors.
var (
	ErrCategoryNotFound    = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
	ErrSubCategoryNotFound = &AppError{Code: "SUB_CATEGORY_NOT_FOUND", Message: "Sub-category not found", StatusCode: http.StatusNotFound}
	ErrDuplicateSlug       = &AppError{Code: "DUPLICATE_SLUG", Message: "A category with this slug already exists", StatusCode: http.StatusConflict}
	ErrSubCategoryMismatch = &AppError{Code: "SUB_CATEGORY_MISMATCH", Message: "Sub-category does not belong to the given category", StatusCode: http.StatusBadRequest}
)

// Region errors.
var (
	ErrProvinsiNotFound      = &AppError{Code: "PROVINSI_NOT_FOUND", Message: "Provinsi not found", StatusCode: http.StatusNotFound}
	ErrKabupatenKotaNotFound = &AppError{Code: "KABUPATEN_KOTA_NOT_FOUND", Message: "Kabupaten/kota not found", StatusCode: http.StatusNotFound}
	ErrKecamatanNotFound     = &AppError{Code: "KECAMATAN_NOT_FOUND", Message: "Kecamatan not found", StatusCode: http.StatusNotFound}
	ErrRegionMismatch        = &AppError{Code: "REGION_MISMATCH", Message: "Region does not belong to its parent region", StatusCode: http.StatusBadRequest}
)

// Monitoring data errors.
var (
	ErrMonitoringDataNotFound = &AppError{Code: "MONITORING_DATA_NOT_FOUND", Message: "Monitoring data not found", StatusCode: http.StatusNotFound}
)
