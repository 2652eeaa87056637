package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryRuntime   Category = "runtime"
	CategoryRender    Category = "render"
	CategoryScheduler Category = "scheduler"
)

// Error is a structured error with a stable code and fix suggestion.
type Error struct {
	// Code is a unique error identifier (e.g. "W101").
	Code string

	// Category is the error type (runtime, render, scheduler).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// WithSuggestion adds a fix suggestion to the error.
func (e *Error) WithSuggestion(s string) *Error {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *Error) WithDetail(d string) *Error {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *Error) Wrap(err error) *Error {
	e.Wrapped = err
	return e
}

// New creates an Error from a registered error code.
func New(code string) *Error {
	template, ok := registry[code]
	if !ok {
		return &Error{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &Error{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a new Error with a formatted message (no code).
func Newf(category Category, format string, args ...any) *Error {
	return &Error{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a coded Error.
func FromError(err error, code string) *Error {
	if err == nil {
		return nil
	}
	e := New(code)
	e.Wrapped = err
	return e
}

// FromPanic wraps a recovered panic value in a coded Error.
func FromPanic(v any, code string) *Error {
	e := New(code)
	if err, ok := v.(error); ok {
		e.Wrapped = err
	} else {
		e.Wrapped = fmt.Errorf("%v", v)
	}
	return e
}
