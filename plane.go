package pga3d

// Plane is the homogeneous plane X·x + Y·y + Z·z + W = 0.
// No normalization is enforced.
type Plane struct {
	X Float `json:"x" yaml:"x"`
	Y Float `json:"y" yaml:"y"`
	Z Float `json:"z" yaml:"z"`
	W Float `json:"w" yaml:"w"`
}

// NewPlane creates a Plane from its coefficients.
func NewPlane(x, y, z, w Float) Plane {
	return Plane{X: x, Y: y, Z: z, W: w}
}

// IsZero reports whether all four coefficients are zero.
func (p Plane) IsZero() bool {
	return p == Plane{}
}

// Approx reports whether every coefficient of p is within epsilon of q.
func (p Plane) Approx(q Plane, epsilon Float) bool {
	return abs(p.X-q.X) < epsilon && abs(p.Y-q.Y) < epsilon &&
		abs(p.Z-q.Z) < epsilon && abs(p.W-q.W) < epsilon
}
