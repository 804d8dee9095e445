// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glmat

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/gogpu/pga3d"
)

// Quat returns the rotation part of m. The translation is dropped.
func Quat(m pga3d.Motor) mgl64.Quat {
	return mgl64.Quat{
		W: float64(m.VW),
		V: mgl64.Vec3{float64(m.VX), float64(m.VY), float64(m.VZ)},
	}
}

// FromQuat returns a pure rotation motor for q.
func FromQuat(q mgl64.Quat) pga3d.Motor {
	return pga3d.Motor{
		VX: pga3d.Float(q.V[0]),
		VY: pga3d.Float(q.V[1]),
		VZ: pga3d.Float(q.V[2]),
		VW: pga3d.Float(q.W),
	}
}

// Mat4 returns m as a homogeneous matrix: the rotation of m followed by
// its translation.
func Mat4(m pga3d.Motor) mgl64.Mat4 {
	t := m.TranslationEuler()
	return mgl64.Translate3D(float64(t.X), float64(t.Y), float64(t.Z)).Mul4(Quat(m).Mat4())
}

// FromMat4 returns the motor for a rigid transform matrix. The upper 3×3
// block must be a rotation; scale and shear are not recovered.
func FromMat4(mat mgl64.Mat4) pga3d.Motor {
	t := mat.Col(3)
	rotation := FromQuat(mgl64.Mat4ToQuat(mat).Normalize())
	return rotation.Combine(pga3d.Translation(pga3d.Float(t[0]), pga3d.Float(t[1]), pga3d.Float(t[2])))
}

// Vec4 returns the homogeneous coordinates of p.
func Vec4(p pga3d.Point) mgl64.Vec4 {
	return mgl64.Vec4{float64(p.X), float64(p.Y), float64(p.Z), float64(p.W)}
}

// FromVec4 returns the point with homogeneous coordinates v.
func FromVec4(v mgl64.Vec4) pga3d.Point {
	return pga3d.NewPoint(pga3d.Float(v[0]), pga3d.Float(v[1]), pga3d.Float(v[2]), pga3d.Float(v[3]))
}
