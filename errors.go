package pga3d

import (
	"errors"
	"fmt"
)

// Sentinel errors for the pga3d package.
var (
	// ErrAxisNotNormalized is returned when a rotation axis is not unit length.
	ErrAxisNotNormalized = errors.New("pga3d: rotation axis is not normalized")

	// ErrInvalidLength is returned when binary data has the wrong size.
	ErrInvalidLength = errors.New("pga3d: invalid encoded length")
)

// AxisError reports a rotation axis rejected by TryAxisAngle.
type AxisError struct {
	X, Y, Z Float

	// NormSquared is X²+Y²+Z².
	NormSquared Float
}

func (e *AxisError) Error() string {
	return fmt.Sprintf("pga3d: rotation axis (%g, %g, %g) is not normalized (|axis|² = %g)",
		e.X, e.Y, e.Z, e.NormSquared)
}

// Unwrap returns ErrAxisNotNormalized.
func (e *AxisError) Unwrap() error {
	return ErrAxisNotNormalized
}

// LengthError is returned by UnmarshalBinary when the input size does not
// match the encoded size of the target type.
type LengthError struct {
	Type     string
	Got      int
	Expected int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("pga3d: %s: got %d bytes, want %d", e.Type, e.Got, e.Expected)
}

// Unwrap returns ErrInvalidLength.
func (e *LengthError) Unwrap() error {
	return ErrInvalidLength
}
