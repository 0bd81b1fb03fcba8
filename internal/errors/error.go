package errors

import (
	stderrors "errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryRender    Category = "render"
	CategoryComponent Category = "component"
	CategoryHost      Category = "host"
	CategoryConfig    Category = "config"
	CategoryCLI       Category = "cli"
)

// RenderError is a structured error with the element it occurred at and a
// suggestion for fixing it.
type RenderError struct {
	// Code is a unique error identifier (e.g., "E101").
	Code string

	// Category is the error type (render, host, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Element describes the element being processed, e.g. "<div>" or
	// "Counter".
	Element string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Element != "" {
		msg += " at " + e.Element
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *RenderError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a *RenderError with the same code.
func (e *RenderError) Is(target error) bool {
	t, ok := target.(*RenderError)
	if !ok {
		return false
	}
	return t.Code != "" && t.Code == e.Code
}

// WithElement records the element the error occurred at.
func (e *RenderError) WithElement(desc string) *RenderError {
	e.Element = desc
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *RenderError) WithSuggestion(s string) *RenderError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *RenderError) WithDetail(d string) *RenderError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *RenderError) Wrap(err error) *RenderError {
	e.Wrapped = err
	return e
}

// New creates a RenderError from a registered error code.
func New(code string) *RenderError {
	template, ok := registry[code]
	if !ok {
		return &RenderError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &RenderError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a new RenderError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *RenderError {
	return &RenderError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a RenderError. An error that already
// is, or wraps, a RenderError is returned as that RenderError.
func FromError(err error, code string) *RenderError {
	if err == nil {
		return nil
	}
	var re *RenderError
	if stderrors.As(err, &re) {
		return re
	}
	return New(code).Wrap(err)
}

// HasCode reports whether err is or wraps a RenderError with code.
func HasCode(err error, code string) bool {
	var re *RenderError
	for err != nil {
		if !stderrors.As(err, &re) {
			return false
		}
		if re.Code == code {
			return true
		}
		err = re.Wrapped
	}
	return false
}

// CodeOf returns the code of the outermost RenderError in err's chain,
// or "" if there is none.
func CodeOf(err error) string {
	var re *RenderError
	if stderrors.As(err, &re) {
		return re.Code
	}
	return ""
}
