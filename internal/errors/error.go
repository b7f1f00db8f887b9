package errors

import (
	"fmt"
	"strings"
)

// Category classifies where in the engine an error originated.
type Category string

const (
	CategoryRegistration Category = "registration"
	CategoryRouting      Category = "routing"
	CategoryHistory      Category = "history"
	CategoryRender       Category = "render"
	CategoryProtocol     Category = "protocol"
	CategoryConfig       Category = "config"
)

// Error is a structured engine error with a stable code, a category, and an
// optional wrapped cause.
type Error struct {
	// Code is a unique error identifier (e.g., "W001").
	Code string

	// Category is the error type (registration, routing, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation, shown in logs and error views.
	Detail string

	// Cause is the wrapped underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	if e.Code != "" {
		fmt.Fprintf(&b, "[%s] ", e.Code)
	}
	b.WriteString(e.Message)
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a structured error with the given code and message.
func New(code string, category Category, message string) *Error {
	return &Error{
		Code:     code,
		Category: category,
		Message:  message,
	}
}

// Wrap creates a structured error wrapping an underlying cause.
func Wrap(code string, category Category, message string, cause error) *Error {
	return &Error{
		Code:     code,
		Category: category,
		Message:  message,
		Cause:    cause,
	}
}

// WithDetail returns a copy of the error with the detail text set.
func (e *Error) WithDetail(detail string) *Error {
	clone := *e
	clone.Detail = detail
	return &clone
}

// WithDetailf is like WithDetail with fmt.Sprintf formatting.
func (e *Error) WithDetailf(format string, args ...any) *Error {
	return e.WithDetail(fmt.Sprintf(format, args...))
}
