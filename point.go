package pga3d

// Point is a homogeneous 3D point.
//
// W = 1 encodes a finite position and W = 0 a direction (a point at
// infinity). Operations that divide by W (Scaled, Magnitude, Dist) yield
// non-finite results for directions; check IsFinite first.
type Point struct {
	X Float `json:"x" yaml:"x"`
	Y Float `json:"y" yaml:"y"`
	Z Float `json:"z" yaml:"z"`
	W Float `json:"w" yaml:"w"`
}

// Named positions. Forward looks down the negative Z axis.
var (
	Zero    = Point{X: 0, Y: 0, Z: 0, W: 1}
	Up      = Point{X: 0, Y: 1, Z: 0, W: 1}
	Down    = Point{X: 0, Y: -1, Z: 0, W: 1}
	Left    = Point{X: -1, Y: 0, Z: 0, W: 1}
	Right   = Point{X: 1, Y: 0, Z: 0, W: 1}
	Forward = Point{X: 0, Y: 0, Z: -1, W: 1}
	Back    = Point{X: 0, Y: 0, Z: 1, W: 1}
)

// NewPoint creates a Point from raw homogeneous coordinates.
func NewPoint(x, y, z, w Float) Point {
	return Point{X: x, Y: y, Z: z, W: w}
}

// Position creates a finite point (W = 1).
func Position(x, y, z Float) Point {
	return Point{X: x, Y: y, Z: z, W: 1}
}

// Direction creates a point at infinity (W = 0).
func Direction(x, y, z Float) Point {
	return Point{X: x, Y: y, Z: z, W: 0}
}

// Splat creates a point with all three coordinates set to v.
func Splat(v, w Float) Point {
	return Point{X: v, Y: v, Z: v, W: w}
}

// IsFinite reports whether p is a position rather than a direction.
func (p Point) IsFinite() bool {
	return p.W != 0
}

// Join returns the line through p and q.
// It is antisymmetric: p.Join(q) == q.Join(p).Neg(). Joining a point with
// itself (or with any multiple of itself) yields the zero line.
func (p Point) Join(q Point) Line {
	return Line{
		VX: p.W*q.X - p.X*q.W,
		VY: p.W*q.Y - p.Y*q.W,
		VZ: p.W*q.Z - p.Z*q.W,
		MX: p.Y*q.Z - p.Z*q.Y,
		MY: p.Z*q.X - p.X*q.Z,
		MZ: p.X*q.Y - p.Y*q.X,
	}
}

// ExpandPlane returns the line through p perpendicular to plane.
func (p Point) ExpandPlane(plane Plane) Line {
	return Line{
		VX: -p.W * plane.X,
		VY: -p.W * plane.Y,
		VZ: -p.W * plane.Z,
		MX: p.Z*plane.Y - p.Y*plane.Z,
		MY: p.X*plane.Z - p.Z*plane.X,
		MZ: p.Y*plane.X - p.X*plane.Y,
	}
}

// ExpandLine returns the plane through p perpendicular to line.
// The normal is the line direction scaled by -p.W, so a direction (W = 0)
// yields a plane at infinity.
func (p Point) ExpandLine(line Line) Plane {
	return Plane{
		X: -p.W * line.VX,
		Y: -p.W * line.VY,
		Z: -p.W * line.VZ,
		W: p.X*line.VX + p.Y*line.VY + p.Z*line.VZ,
	}
}

// Dot returns x·x' + y·y' + z·z' + w·w'.
//
// This is a plain sum over all four homogeneous components, not the
// degenerate PGA inner product.
func (p Point) Dot(q Point) Float {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z + p.W*q.W
}

// Antidot returns the product of the W components.
func (p Point) Antidot(q Point) Float {
	return p.W * q.W
}

// MagnitudeSquared returns the squared Euclidean distance of p from the
// origin, (Dot(p) - Antidot(p)) / Antidot(p). NaN or Inf when W = 0.
func (p Point) MagnitudeSquared() Float {
	ad := p.Antidot(p)
	return (p.Dot(p) - ad) / ad
}

// Magnitude returns the Euclidean distance of p from the origin.
// NaN or Inf when W = 0.
func (p Point) Magnitude() Float {
	return sqrt(p.MagnitudeSquared())
}

// Scaled returns p normalized so that W = 1. NaN or Inf when W = 0.
func (p Point) Scaled() Point {
	return Point{X: p.X / p.W, Y: p.Y / p.W, Z: p.Z / p.W, W: p.W / p.W}
}

// Dist returns the Euclidean distance between two finite points.
func (p Point) Dist(q Point) Float {
	return q.Sub(p).Magnitude()
}

// Add returns the homogeneous sum of p and q.
//
// The result carries W = p.W·q.W, so two positions add as Euclidean
// vectors after scaling, whatever their weights. This is not
// component-wise addition.
func (p Point) Add(q Point) Point {
	return Point{
		X: p.X*q.W + q.X*p.W,
		Y: p.Y*q.W + q.Y*p.W,
		Z: p.Z*q.W + q.Z*p.W,
		W: p.W * q.W,
	}
}

// Sub returns the homogeneous difference p - q with W = p.W·q.W.
func (p Point) Sub(q Point) Point {
	return Point{
		X: p.X*q.W - q.X*p.W,
		Y: p.Y*q.W - q.Y*p.W,
		Z: p.Z*q.W - q.Z*p.W,
		W: p.W * q.W,
	}
}

// Round rounds X, Y and Z to the nearest integer and leaves W untouched.
func (p Point) Round() Point {
	return Point{X: round(p.X), Y: round(p.Y), Z: round(p.Z), W: p.W}
}

// IsClose reports whether every component of p is within Epsilon of q.
func (p Point) IsClose(q Point) bool {
	return p.Approx(q, Epsilon)
}

// Approx reports whether every component of p is within epsilon of q.
func (p Point) Approx(q Point, epsilon Float) bool {
	return abs(p.X-q.X) < epsilon && abs(p.Y-q.Y) < epsilon &&
		abs(p.Z-q.Z) < epsilon && abs(p.W-q.W) < epsilon
}
