// Package pga3d implements 3D projective geometric algebra for rigid
// transforms.
//
// # Overview
//
// pga3d provides four small value types: Point, Line, Plane and Motor.
// Every operation takes values and returns a new value; nothing is mutated
// in place, nothing allocates, and all types are safe to share between
// goroutines.
//
// # Quick Start
//
//	import "github.com/gogpu/pga3d"
//
//	// Rotate a quarter turn around Y, then move two units right.
//	m := pga3d.AxisAngle(0, 1, 0, math.Pi/2).Combine(pga3d.Translation(2, 0, 0))
//
//	p := m.Transform(pga3d.Position(1, 0, 0)) // (2, 0, -1, 1)
//
//	// Undo it.
//	q := m.Inverse().Transform(p) // (1, 0, 0, 1)
//
// # Composition Order
//
// a.Combine(b) applies a first and b second. EulerAngles rotates around Z,
// then X, then Y, and Factorize returns (translation, rotation) such that
// rotation.Combine(translation) reproduces the original motor.
//
// # Coordinates
//
// Points are homogeneous: W = 1 for positions and W = 0 for directions.
// Angles are in radians and rotation axes must be unit length. Forward is
// the negative Z axis.
//
// # Precision
//
// Float is float32 by default. Build with -tags pga3d_f64 to switch every
// type to float64. Build with -tags pga3d_debug to make AxisAngle panic on a
// non-unit axis.
//
// # Memory Layout
//
// Field order is part of the API: Point and Plane are [X Y Z W], Line is
// [VX VY VZ MX MY MZ] and Motor is [VX VY VZ VW MX MY MZ MW]. The JSON, YAML
// and binary encodings use the same order.
package pga3d

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
