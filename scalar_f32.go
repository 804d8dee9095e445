//go:build !pga3d_f64

package pga3d

import (
	"encoding/binary"
	"math"

	"github.com/chewxy/math32"
)

// Float is the scalar type shared by every entity in the package.
// The default build uses float32; build with -tags pga3d_f64 for float64.
type Float = float32

// Epsilon is the tolerance used by IsClose.
const Epsilon Float = 1e-4

// floatSize is the encoded width of one Float in bytes.
const floatSize = 4

func sin(x Float) Float  { return math32.Sin(x) }
func cos(x Float) Float  { return math32.Cos(x) }
func sqrt(x Float) Float { return math32.Sqrt(x) }
func abs(x Float) Float  { return math32.Abs(x) }

// round rounds half away from zero. Every float32 is exactly representable
// as a float64, so the detour through math.Round is lossless.
func round(x Float) Float { return Float(math.Round(float64(x))) }

func putFloat(b []byte, v Float) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}

func getFloat(b []byte) Float {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
