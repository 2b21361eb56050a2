package domain

import (
	"errors"
	"strings"
)

var (
	ErrNotFound         = errors.New("project not found")
	ErrStoreUnavailable = errors.New("database connection is not configured")
	ErrInvalidInterval  = errors.New("end_time must be after start_time")
	ErrInvalidRate      = errors.New("hourly_rate must be greater than 0")
	ErrInvalidRateValue = errors.New("hourly_rate must be a finite number")
	ErrValueOverflow    = errors.New("total_value is out of range")
)

// Kind classifies an error for the transport boundary.
type Kind int

const (
	KindStore Kind = iota
	KindValidation
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	default:
		return "store"
	}
}

// Violation is one broken constraint on a request field.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`

	err error
}

// Error is the error type returned by project operations.
type Error struct {
	Kind       Kind
	Message    string
	Violations []Violation
	Err        error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

// NewValidationError bundles violations into a single validation error.
// Violations backed by a sentinel (ErrInvalidInterval, ErrInvalidRate and
// friends) remain matchable with errors.Is.
func NewValidationError(violations []Violation) *Error {
	msgs := make([]string, 0, len(violations))
	var causes []error
	for _, v := range violations {
		msgs = append(msgs, v.Field+": "+v.Message)
		if v.err != nil {
			causes = append(causes, v.err)
		}
	}

	return &Error{
		Kind:       KindValidation,
		Message:    strings.Join(msgs, "; "),
		Violations: violations,
		Err:        errors.Join(causes...),
	}
}

// NotFound wraps ErrNotFound.
func NotFound() *Error {
	return &Error{Kind: KindNotFound, Message: ErrNotFound.Error(), Err: ErrNotFound}
}

// StoreError wraps a failure of the store call.
func StoreError(err error) *Error {
	return &Error{Kind: KindStore, Message: "store error: " + err.Error(), Err: err}
}

// KindOf reports the kind of err. Errors not produced by this package are
// store errors unless they wrap ErrNotFound.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	if errors.Is(err, ErrNotFound) {
		return KindNotFound
	}
	return KindStore
}
