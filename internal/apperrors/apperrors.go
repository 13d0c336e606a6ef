package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	CodeValidationFailed   ErrorCode = "VALIDATION_FAILED"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeNotFound           ErrorCode = "NOT_FOUND"
	CodeConflict           ErrorCode = "CONFLICT"
	CodeInternal           ErrorCode = "INTERNAL_ERROR"
)

type AppError struct {
	Code     ErrorCode
	Message  string
	HTTPCode int
	Err      error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match any AppError against its predefined value by code,
// so wrapped copies still compare equal to the sentinel.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

var (
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid email or password.", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required.", http.StatusUnauthorized)
	ErrInvalidToken       = New(CodeUnauthorized, "Invalid or expired token.", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "You do not have permission to perform this action.", http.StatusForbidden)

	ErrUsernameTaken = New(CodeValidationFailed, "Username already exists.", http.StatusBadRequest)
	ErrEmailTaken    = New(CodeValidationFailed, "Email already exists.", http.StatusBadRequest)

	ErrUserNotFound         = New(CodeNotFound, "User not found.", http.StatusNotFound)
	ErrEventNotFound        = New(CodeNotFound, "Event not found.", http.StatusNotFound)
	ErrBookingNotFound      = New(CodeNotFound, "Booking not found.", http.StatusNotFound)
	ErrFavoriteNotFound     = New(CodeNotFound, "Favorite not found.", http.StatusNotFound)
	ErrNotificationNotFound = New(CodeNotFound, "Notification not found.", http.StatusNotFound)

	ErrDuplicateBooking = New(CodeConflict, "You have already booked this event.", http.StatusConflict)

	ErrInternal = New(CodeInternal, "Something went wrong. Please try again later.", http.StatusInternalServerError)
)
