package fx

import (
	"errors"
	"fmt"
)

// Sentinel errors for the effects engine.
var (
	// ErrInvalidDimensions is returned when a buffer's byte length does not
	// match its dimensions, when a dimension is not positive, or when a
	// two-buffer operation receives buffers of different sizes.
	ErrInvalidDimensions = errors.New("fx: invalid dimensions")

	// ErrInvalidParameter is returned when a settings value is outside its
	// domain and clamping would silently change its meaning.
	ErrInvalidParameter = errors.New("fx: invalid parameter")
)

// ParameterError describes a rejected settings field.
type ParameterError struct {
	Op    string // operation that rejected the value, e.g. "sharpen.UnsharpMask"
	Field string // settings field name
	Value any
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("fx: %s: invalid %s: %v", e.Op, e.Field, e.Value)
}

// Unwrap lets errors.Is match ErrInvalidParameter.
func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}

// InvalidParameter returns a *ParameterError for op/field/value.
func InvalidParameter(op, field string, value any) error {
	return &ParameterError{Op: op, Field: field, Value: value}
}

// SizeMismatch returns an ErrInvalidDimensions error describing two
// buffers of different sizes.
func SizeMismatch(op string, a, b *PixelBuffer) error {
	return fmt.Errorf("%w: %s: %dx%d vs %dx%d", ErrInvalidDimensions, op,
		a.Width(), a.Height(), b.Width(), b.Height())
}
