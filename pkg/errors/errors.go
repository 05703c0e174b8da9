package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMonth is matched by every InvalidMonthError.
	ErrInvalidMonth = errors.New("invalid month")
	// ErrRejected is matched by every RejectedError.
	ErrRejected = errors.New("selection rejected")
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// InvalidMonthError reports a month index outside 0-11. It is a contract
// violation by the caller and is never recovered by clamping.
type InvalidMonthError struct {
	Month int
}

// NewInvalidMonthError constructs an InvalidMonthError.
func NewInvalidMonthError(month int) error {
	return &InvalidMonthError{Month: month}
}

func (e *InvalidMonthError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid month %d: must be in 0-11", e.Month)
}

// Is makes errors.Is(err, ErrInvalidMonth) hold.
func (e *InvalidMonthError) Is(target error) bool {
	return target == ErrInvalidMonth
}

// RejectedError signals that a requested date may not be selected.
type RejectedError struct {
	Date   string
	Reason string
}

// NewRejectedError constructs a RejectedError for the ISO formatted date.
func NewRejectedError(date, reason string) error {
	return &RejectedError{Date: date, Reason: reason}
}

func (e *RejectedError) Error() string {
	if e == nil {
		return ""
	}
	if e.Reason != "" {
		return fmt.Sprintf("selection rejected: %s: %s", e.Date, e.Reason)
	}
	return fmt.Sprintf("selection rejected: %s", e.Date)
}

// Is makes errors.Is(err, ErrRejected) hold.
func (e *RejectedError) Is(target error) bool {
	return target == ErrRejected
}
