// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package glmat converts pga3d values to and from go-gl/mathgl types.
//
// Motors map to an mgl64.Quat for the rotation and a column-major
// mgl64.Mat4 for the full rigid transform, so they can be handed to code
// that already speaks mathgl:
//
//	mat := glmat.Mat4(pga3d.EulerPosRot(1, 2, 3, 0, 0.5, 0))
//	v := mat.Mul4x1(glmat.Vec4(pga3d.Position(1, 0, 0)))
//
// For any unit motor m and point p:
//
//	glmat.Mat4(m).Mul4x1(glmat.Vec4(p)) ≈ glmat.Vec4(m.Transform(p))
package glmat
