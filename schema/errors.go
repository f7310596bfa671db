package schema

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrInvalidValue is the category of recoverable data errors: a value
	// that cannot be accepted for a property.
	ErrInvalidValue = errors.New("invalid property value")

	// ErrInvalidDelegate is the category of configuration errors raised
	// during delegate registration.
	ErrInvalidDelegate = errors.New("invalid property delegate")

	// ErrUnsupportedHandler is a configuration error: a value is
	// proxy-backed but its handler exposes no recognized capabilities.
	ErrUnsupportedHandler = errors.New("unsupported nested value handler")

	// ErrIndexOutOfRange is the category of fatal indexed-access errors.
	ErrIndexOutOfRange = errors.New("array index out of range")
)

// InvalidValueError reports a rejected property value. Code is a stable
// machine-readable identifier (e.g. "unknown_property", "type_mismatch").
type InvalidValueError struct {
	Code     string
	Property string
	Declared reflect.Type
	Value    any
	Reason   string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("property %q: [%s] %s", e.Property, e.Code, e.Reason)
}

func (e *InvalidValueError) Unwrap() error { return ErrInvalidValue }

// DelegateError reports a delegate descriptor that is incompatible with the
// property it was registered for.
type DelegateError struct {
	Property string
	Reason   string
}

func (e *DelegateError) Error() string {
	return fmt.Sprintf("delegate for property %q: %s", e.Property, e.Reason)
}

func (e *DelegateError) Unwrap() error { return ErrInvalidDelegate }

// RangeError reports an indexed access outside the bounds of an array. It is
// fatal and propagated, unlike the silent no-op for absent indices.
type RangeError struct {
	Index  int
	Length int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("index %d out of range for array of length %d", e.Index, e.Length)
}

func (e *RangeError) Unwrap() error { return ErrIndexOutOfRange }
