package pga3d

// Line is a Plücker line: direction bivector (VX, VY, VZ) and moment
// bivector (MX, MY, MZ).
//
// Lines normally come from Point.Join or Point.ExpandPlane. NewLine does not
// enforce the Plücker relation V·M = 0.
type Line struct {
	VX Float `json:"vx" yaml:"vx"`
	VY Float `json:"vy" yaml:"vy"`
	VZ Float `json:"vz" yaml:"vz"`
	MX Float `json:"mx" yaml:"mx"`
	MY Float `json:"my" yaml:"my"`
	MZ Float `json:"mz" yaml:"mz"`
}

// NewLine creates a Line from its direction and moment.
func NewLine(vx, vy, vz, mx, my, mz Float) Line {
	return Line{VX: vx, VY: vy, VZ: vz, MX: mx, MY: my, MZ: mz}
}

// Join returns the plane containing l and p.
// The result is the zero plane when p lies on l.
func (l Line) Join(p Point) Plane {
	return Plane{
		X: l.VY*p.Z - l.VZ*p.Y + l.MX*p.W,
		Y: l.VZ*p.X - l.VX*p.Z + l.MY*p.W,
		Z: l.VX*p.Y - l.VY*p.X + l.MZ*p.W,
		W: -(l.MX*p.X + l.MY*p.Y + l.MZ*p.Z),
	}
}

// Expand returns the plane containing l and perpendicular to plane.
// The result is the zero plane when l is itself perpendicular to plane.
func (l Line) Expand(plane Plane) Plane {
	return Plane{
		X: l.VY*plane.Z - l.VZ*plane.Y,
		Y: l.VZ*plane.X - l.VX*plane.Z,
		Z: l.VX*plane.Y - l.VY*plane.X,
		W: -(l.MX*plane.X + l.MY*plane.Y + l.MZ*plane.Z),
	}
}

// Neg returns the line with reversed orientation.
func (l Line) Neg() Line {
	return Line{VX: -l.VX, VY: -l.VY, VZ: -l.VZ, MX: -l.MX, MY: -l.MY, MZ: -l.MZ}
}

// IsZero reports whether all six components are zero.
func (l Line) IsZero() bool {
	return l == Line{}
}

// Approx reports whether every component of l is within epsilon of m.
func (l Line) Approx(m Line, epsilon Float) bool {
	return abs(l.VX-m.VX) < epsilon && abs(l.VY-m.VY) < epsilon && abs(l.VZ-m.VZ) < epsilon &&
		abs(l.MX-m.MX) < epsilon && abs(l.MY-m.MY) < epsilon && abs(l.MZ-m.MZ) < epsilon
}
