package fixuint

import (
	"errors"
	"fmt"
)

// Error kinds returned by this package. Use errors.Is to test for them; the
// returned errors wrap these with details about the failing value.
var (
	// ErrFormat is returned for malformed hex input, or for a byte or word
	// slice whose length does not exactly match the width of the target.
	ErrFormat = errors.New("fixuint: invalid format")

	// ErrOverflow is returned when a value would be negative or would not fit
	// in the target width, including failed narrowing conversions.
	ErrOverflow = errors.New("fixuint: overflow")

	// ErrDivideByZero is returned by Quo, Rem and QuoRem for a zero divisor.
	ErrDivideByZero = errors.New("fixuint: division by zero")

	// ErrArgument is returned when a negative signed integer is given to a
	// widening constructor, or a lane index is out of range.
	ErrArgument = errors.New("fixuint: invalid argument")
)

// LengthError is returned when a byte or word slice does not have exactly the
// length required by the target width. It matches ErrFormat.
type LengthError struct {
	Type string
	Unit string
	Want int
	Got  int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("fixuint: %s requires exactly %d %s, got %d", e.Type, e.Want, e.Unit, e.Got)
}

func (e *LengthError) Is(target error) bool { return target == ErrFormat }
