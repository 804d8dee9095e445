package pga3d

import "golang.org/x/image/math/f32"

// Buffer returns [X, Y, Z, W] in the configured width.
func (p Point) Buffer() [4]Float {
	return [4]Float{p.X, p.Y, p.Z, p.W}
}

// Buffer32 returns [X, Y, Z, W] as float32 regardless of the configured
// width, ready for upload to a graphics pipeline.
func (p Point) Buffer32() f32.Vec4 {
	return f32.Vec4{float32(p.X), float32(p.Y), float32(p.Z), float32(p.W)}
}

// CopyTo32 writes [X, Y, Z, W] as float32 into buf[0:4].
// It panics if len(buf) < 4.
func (p Point) CopyTo32(buf []float32) {
	_ = buf[3]
	buf[0] = float32(p.X)
	buf[1] = float32(p.Y)
	buf[2] = float32(p.Z)
	buf[3] = float32(p.W)
}

// Buffer returns the eight components of m in field order.
func (m Motor) Buffer() [8]Float {
	return [8]Float{m.VX, m.VY, m.VZ, m.VW, m.MX, m.MY, m.MZ, m.MW}
}

// Mat4 returns m as a row-major homogeneous 4×4 matrix M such that
// M·[x y z w]ᵀ equals m.Transform(Point{x, y, z, w}) for a unit motor.
func (m Motor) Mat4() f32.Mat4 {
	x, y, z, w := m.VX, m.VY, m.VZ, m.VW
	tx, ty, tz := m.translation()

	return f32.Mat4{
		float32(1 - 2*(y*y+z*z)), float32(2 * (x*y - z*w)), float32(2 * (x*z + y*w)), float32(tx),
		float32(2 * (x*y + z*w)), float32(1 - 2*(x*x+z*z)), float32(2 * (y*z - x*w)), float32(ty),
		float32(2 * (x*z - y*w)), float32(2 * (y*z + x*w)), float32(1 - 2*(x*x+y*y)), float32(tz),
		0, 0, 0, 1,
	}
}
