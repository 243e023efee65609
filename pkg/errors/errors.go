package errors

import (
	"fmt"
	"net/http"
)

// AppError is a custom error type that includes an HTTP status code
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// NewAppError creates a new AppError
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Common errors
var (
	ErrInvalidRequest = NewAppError(http.StatusBadRequest, "Invalid request parameters")
	ErrUnauthorized   = NewAppError(http.StatusUnauthorized, "Unauthorized access")
	ErrForbidden      = NewAppError(http.StatusForbidden, "Access denied")
	ErrNotFound       = NewAppError(http.StatusNotFound, "Resource not found")
	ErrInternalServer = NewAppError(http.StatusInternalServerError, "Internal server error")
	ErrRateLimit      = NewAppError(http.StatusTooManyRequests, "Rate limit exceeded")
)

// Helper functions to create specific errors
func BadRequest(msg string) *AppError {
	return NewAppError(http.StatusBadRequest, msg)
}

func NotFound(msg string) *AppError {
	return NewAppError(http.StatusNotFound, msg)
}

func Unauthorized(msg string) *AppError {
	return NewAppError(http.StatusUnauthorized, msg)
}

func Forbidden(msg string) *AppError {
	return NewAppError(http.StatusForbidden, msg)
}

func Internal(msg string) *AppError {
	return NewAppError(http.StatusInternalServerError, msg)
}

// PurchaseError is returned when a shop purchase cannot be afforded.
// It carries the crystal amounts the client renders in the
// "not enough crystals" dialog.
type PurchaseError struct {
	Required int `json:"required"`
	Current  int `json:"current"`
	Missing  int `json:"missing"`
}

func (e *PurchaseError) Error() string {
	return fmt.Sprintf("insufficient crystals: need %d, have %d (missing %d)", e.Required, e.Current, e.Missing)
}

// InsufficientCrystals builds a PurchaseError from the item price and balance.
func InsufficientCrystals(required, current int) *PurchaseError {
	return &PurchaseError{
		Required: required,
		Current:  current,
		Missing:  required - current,
	}
}
