//go:build pga3d_f64

package pga3d

import (
	"encoding/binary"
	"math"
)

// Float is the scalar type shared by every entity in the package.
// This file is selected by the pga3d_f64 build tag.
type Float = float64

// Epsilon is the tolerance used by IsClose.
const Epsilon Float = 1e-9

// floatSize is the encoded width of one Float in bytes.
const floatSize = 8

func sin(x Float) Float   { return math.Sin(x) }
func cos(x Float) Float   { return math.Cos(x) }
func sqrt(x Float) Float  { return math.Sqrt(x) }
func abs(x Float) Float   { return math.Abs(x) }
func round(x Float) Float { return math.Round(x) }

func putFloat(b []byte, v Float) {
	binary.LittleEndian.PutUint64(b, math.Float64bits(v))
}

func getFloat(b []byte) Float {
	return math.Float64frombits(binary.LittleEndian.Uint64(b))
}
