// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gonumdq converts between pga3d motors and gonum dual quaternions.
//
// A unit motor is the dual quaternion r + εd, where r is the rotation
// quaternion and d = t·r/2 for a translation t. The conversion is exact:
//
//	r = VW + VX·i + VY·j + VZ·k
//	d = MW + MX·i + MY·j + MZ·k
//
// # Composition
//
// pga3d composes left to right (a.Combine(b) applies a first), while
// dual quaternions compose by left multiplication:
//
//	ToDualQuat(a.Combine(b)) == dualquat.Mul(ToDualQuat(b), ToDualQuat(a))
//
// # Usage
//
//	d := gonumdq.ToDualQuat(pga3d.Translation(1, 2, 3))
//	p := gonumdq.Transform(d, pga3d.Position(0, 0, 0)) // (1, 2, 3)
package gonumdq
