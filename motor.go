package pga3d

// Motor is a rigid transformation: a rotation followed by a translation.
//
// (VX, VY, VZ, VW) is a unit quaternion holding the rotation and
// (MX, MY, MZ, MW) couples the translation to it. Viewed as a dual
// quaternion r + εd with r = VW + VX·i + VY·j + VZ·k and
// d = MW + MX·i + MY·j + MZ·k, a motor that rotates by r and then
// translates by t has d = t·r/2.
//
// Transform, Inverse and Factorize assume the rotation part is unit length.
// Every constructor in this package guarantees that, provided AxisAngle
// receives a unit axis.
type Motor struct {
	VX Float `json:"vx" yaml:"vx"`
	VY Float `json:"vy" yaml:"vy"`
	VZ Float `json:"vz" yaml:"vz"`
	VW Float `json:"vw" yaml:"vw"`
	MX Float `json:"mx" yaml:"mx"`
	MY Float `json:"my" yaml:"my"`
	MZ Float `json:"mz" yaml:"mz"`
	MW Float `json:"mw" yaml:"mw"`
}

// axisTolerance bounds |‖axis‖² - 1| for AxisAngle preconditions.
const axisTolerance = 0.01

// Identity returns the motor that leaves every point in place.
func Identity() Motor {
	return Motor{VW: 1}
}

// NewMotor creates a Motor from raw components.
func NewMotor(vx, vy, vz, vw, mx, my, mz, mw Float) Motor {
	return Motor{VX: vx, VY: vy, VZ: vz, VW: vw, MX: mx, MY: my, MZ: mz, MW: mw}
}

// Translation returns a motor that moves points by (x, y, z).
func Translation(x, y, z Float) Motor {
	return Motor{VW: 1, MX: x * 0.5, MY: y * 0.5, MZ: z * 0.5}
}

// AxisAngle returns a motor rotating by angle radians around the unit axis
// (ax, ay, az) through the origin.
//
// The axis is not checked: a non-unit axis silently produces a non-unit
// motor, and every later Transform, Inverse or Factorize on it is
// geometrically wrong. Builds tagged pga3d_debug panic with *AxisError
// instead. Use TryAxisAngle for untrusted input.
func AxisAngle(ax, ay, az, angle Float) Motor {
	if debugChecks {
		if err := checkAxis(ax, ay, az); err != nil {
			Logger().Error("pga3d: AxisAngle precondition failed", "err", err)
			panic(err)
		}
	}
	return axisAngle(ax, ay, az, angle)
}

// TryAxisAngle is AxisAngle with the axis check always enabled.
// It returns an *AxisError wrapping ErrAxisNotNormalized when
// |ax²+ay²+az² - 1| >= 0.01.
func TryAxisAngle(ax, ay, az, angle Float) (Motor, error) {
	if err := checkAxis(ax, ay, az); err != nil {
		Logger().Debug("pga3d: rejected rotation axis", "x", ax, "y", ay, "z", az)
		return Motor{}, err
	}
	return axisAngle(ax, ay, az, angle), nil
}

func checkAxis(ax, ay, az Float) error {
	n := ax*ax + ay*ay + az*az
	if !(abs(n-1) < axisTolerance) {
		return &AxisError{X: ax, Y: ay, Z: az, NormSquared: n}
	}
	return nil
}

func axisAngle(ax, ay, az, angle Float) Motor {
	half := angle * 0.5
	s, c := sin(half), cos(half)
	return Motor{VX: ax * s, VY: ay * s, VZ: az * s, VW: c}
}

// eulerRotation returns the rotation quaternion for rotating around Z, then
// X, then Y, expanded from AxisAngle(Z).Combine(AxisAngle(X)).Combine(AxisAngle(Y)).
func eulerRotation(x, y, z Float) (vx, vy, vz, vw Float) {
	sz, cz := sin(z*0.5), cos(z*0.5)
	sx, cx := sin(x*0.5), cos(x*0.5)
	sy, cy := sin(y*0.5), cos(y*0.5)

	// Z then X.
	vx2 := sx * cz
	vy2 := -sx * sz
	vz2 := cx * sz
	vw2 := cx * cz

	// Then Y.
	vx = cy*vx2 + sy*vz2
	vy = sy*vw2 + cy*vy2
	vz = cy*vz2 - sy*vx2
	vw = cy*vw2 - sy*vy2
	return vx, vy, vz, vw
}

// EulerAngles returns a rotation built from Euler angles in radians,
// applied around Z first, then X, then Y. The order is fixed; it matches
//
//	AxisAngle(0, 0, 1, z).Combine(AxisAngle(1, 0, 0, x)).Combine(AxisAngle(0, 1, 0, y))
func EulerAngles(x, y, z Float) Motor {
	vx, vy, vz, vw := eulerRotation(x, y, z)
	return Motor{VX: vx, VY: vy, VZ: vz, VW: vw}
}

// EulerPosRot returns EulerAngles(rx, ry, rz) followed by a translation to
// (px, py, pz). It equals EulerAngles(rx, ry, rz).Combine(Translation(px, py, pz)).
func EulerPosRot(px, py, pz, rx, ry, rz Float) Motor {
	vx, vy, vz, vw := eulerRotation(rx, ry, rz)
	tx, ty, tz := px*0.5, py*0.5, pz*0.5

	// d = t·r/2
	return Motor{
		VX: vx, VY: vy, VZ: vz, VW: vw,
		MX: tx*vw - tz*vy + ty*vz,
		MY: ty*vw - tx*vz + tz*vx,
		MZ: tz*vw - ty*vx + tx*vy,
		MW: -(tx*vx + ty*vy + tz*vz),
	}
}

// Combine returns the motor that applies m first and then o:
//
//	m.Combine(o).Transform(p) == o.Transform(m.Transform(p))
//
// Combine is associative but not commutative, and Identity is neutral.
// In dual quaternion terms the result is the product o ⊗ m.
func (m Motor) Combine(o Motor) Motor {
	return Motor{
		VX: o.VW*m.VX + o.VX*m.VW + o.VY*m.VZ - o.VZ*m.VY,
		VY: o.VW*m.VY - o.VX*m.VZ + o.VY*m.VW + o.VZ*m.VX,
		VZ: o.VW*m.VZ + o.VX*m.VY - o.VY*m.VX + o.VZ*m.VW,
		VW: o.VW*m.VW - o.VX*m.VX - o.VY*m.VY - o.VZ*m.VZ,

		MX: o.VW*m.MX + o.VX*m.MW + o.VY*m.MZ - o.VZ*m.MY +
			o.MW*m.VX + o.MX*m.VW + o.MY*m.VZ - o.MZ*m.VY,
		MY: o.VW*m.MY - o.VX*m.MZ + o.VY*m.MW + o.VZ*m.MX +
			o.MW*m.VY - o.MX*m.VZ + o.MY*m.VW + o.MZ*m.VX,
		MZ: o.VW*m.MZ + o.VX*m.MY - o.VY*m.MX + o.VZ*m.MW +
			o.MW*m.VZ + o.MX*m.VY - o.MY*m.VX + o.MZ*m.VW,
		MW: o.VW*m.MW - o.VX*m.MX - o.VY*m.MY - o.VZ*m.MZ +
			o.MW*m.VW - o.MX*m.VX - o.MY*m.VY - o.MZ*m.VZ,
	}
}

// Transform applies m to p. W is preserved, so directions stay
// directions and are only rotated.
func (m Motor) Transform(p Point) Point {
	ax := m.VY*p.Z - m.VZ*p.Y + p.W*m.MX
	ay := m.VZ*p.X - m.VX*p.Z + p.W*m.MY
	az := m.VX*p.Y - m.VY*p.X + p.W*m.MZ

	return Point{
		X: p.X + 2*(m.VW*ax+(m.VY*az-m.VZ*ay)-m.MW*p.W*m.VX),
		Y: p.Y + 2*(m.VW*ay+(m.VZ*ax-m.VX*az)-m.MW*p.W*m.VY),
		Z: p.Z + 2*(m.VW*az+(m.VX*ay-m.VY*ax)-m.MW*p.W*m.VZ),
		W: p.W,
	}
}

// Inverse returns the motor undoing m. It negates both vector parts and
// keeps VW and MW, which is only a true inverse for a unit rotation part.
func (m Motor) Inverse() Motor {
	return Motor{
		VX: -m.VX, VY: -m.VY, VZ: -m.VZ, VW: m.VW,
		MX: -m.MX, MY: -m.MY, MZ: -m.MZ, MW: m.MW,
	}
}

// translation returns t = 2·d·r*, the offset m applies after rotating.
func (m Motor) translation() (x, y, z Float) {
	x = 2 * (m.VW*m.MX + m.VY*m.MZ - m.VZ*m.MY - m.MW*m.VX)
	y = 2 * (m.VW*m.MY + m.VZ*m.MX - m.VX*m.MZ - m.MW*m.VY)
	z = 2 * (m.VW*m.MZ + m.VX*m.MY - m.VY*m.MX - m.MW*m.VZ)
	return x, y, z
}

// TranslationEuler returns the translation part of m as a position, which
// is where m moves the origin.
func (m Motor) TranslationEuler() Point {
	x, y, z := m.translation()
	return Position(x, y, z)
}

// Factorize splits m into a pure translation and a pure rotation such that
// rotation.Combine(translation) acts on points exactly like m.
func (m Motor) Factorize() (translation, rotation Motor) {
	translation = m.FactorTranslation()
	rotation = m.Combine(translation.Inverse())
	return translation, rotation
}

// FactorTranslation returns the translation part of m as a motor.
func (m Motor) FactorTranslation() Motor {
	x, y, z := m.translation()
	return Translation(x, y, z)
}

// FactorRotation returns the rotation part of m as a motor.
func (m Motor) FactorRotation() Motor {
	return m.Combine(m.FactorTranslation().Inverse())
}

// RotationNormSquared returns VX²+VY²+VZ²+VW².
func (m Motor) RotationNormSquared() Float {
	return m.VX*m.VX + m.VY*m.VY + m.VZ*m.VZ + m.VW*m.VW
}

// IsNormalized reports whether the rotation part is unit length within
// Epsilon.
func (m Motor) IsNormalized() bool {
	return abs(m.RotationNormSquared()-1) < Epsilon
}

// IsClose reports whether every component of m is within Epsilon of o.
// Note that m and its negation describe the same motion but are not close.
func (m Motor) IsClose(o Motor) bool {
	return m.Approx(o, Epsilon)
}

// Approx reports whether every component of m is within epsilon of o.
func (m Motor) Approx(o Motor, epsilon Float) bool {
	return abs(m.VX-o.VX) < epsilon && abs(m.VY-o.VY) < epsilon &&
		abs(m.VZ-o.VZ) < epsilon && abs(m.VW-o.VW) < epsilon &&
		abs(m.MX-o.MX) < epsilon && abs(m.MY-o.MY) < epsilon &&
		abs(m.MZ-o.MZ) < epsilon && abs(m.MW-o.MW) < epsilon
}
