// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gonumdq

import (
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"

	"github.com/gogpu/pga3d"
)

// ToDualQuat returns m as a dual quaternion.
func ToDualQuat(m pga3d.Motor) dualquat.Number {
	return dualquat.Number{
		Real: quat.Number{
			Real: float64(m.VW),
			Imag: float64(m.VX),
			Jmag: float64(m.VY),
			Kmag: float64(m.VZ),
		},
		Dual: quat.Number{
			Real: float64(m.MW),
			Imag: float64(m.MX),
			Jmag: float64(m.MY),
			Kmag: float64(m.MZ),
		},
	}
}

// FromDualQuat returns d as a motor. d is not normalized.
func FromDualQuat(d dualquat.Number) pga3d.Motor {
	return pga3d.Motor{
		VX: pga3d.Float(d.Real.Imag),
		VY: pga3d.Float(d.Real.Jmag),
		VZ: pga3d.Float(d.Real.Kmag),
		VW: pga3d.Float(d.Real.Real),
		MX: pga3d.Float(d.Dual.Imag),
		MY: pga3d.Float(d.Dual.Jmag),
		MZ: pga3d.Float(d.Dual.Kmag),
		MW: pga3d.Float(d.Dual.Real),
	}
}

// Point returns the Euclidean coordinates of p as a pure quaternion.
// Positions are divided by their weight; directions are taken as is.
func Point(p pga3d.Point) quat.Number {
	if p.IsFinite() {
		p = p.Scaled()
	}
	return quat.Number{Imag: float64(p.X), Jmag: float64(p.Y), Kmag: float64(p.Z)}
}

// Transform applies d to p with the dual quaternion sandwich d·(1 + εp)·d*.
// Directions are only rotated. The result has W = 1 for positions and
// W = 0 for directions.
func Transform(d dualquat.Number, p pga3d.Point) pga3d.Point {
	v := Point(p)
	if !p.IsFinite() {
		r := quat.Mul(quat.Mul(d.Real, v), quat.Conj(d.Real))
		return pga3d.Direction(pga3d.Float(r.Imag), pga3d.Float(r.Jmag), pga3d.Float(r.Kmag))
	}

	raised := dualquat.Number{Real: quat.Number{Real: 1}, Dual: v}
	out := dualquat.Mul(dualquat.Mul(d, raised), dualquat.Conj(d))
	return pga3d.Position(pga3d.Float(out.Dual.Imag), pga3d.Float(out.Dual.Jmag), pga3d.Float(out.Dual.Kmag))
}
