package pga3d

import "encoding"

var (
	_ encoding.BinaryMarshaler   = Point{}
	_ encoding.BinaryUnmarshaler = (*Point)(nil)
	_ encoding.BinaryMarshaler   = Line{}
	_ encoding.BinaryUnmarshaler = (*Line)(nil)
	_ encoding.BinaryMarshaler   = Plane{}
	_ encoding.BinaryUnmarshaler = (*Plane)(nil)
	_ encoding.BinaryMarshaler   = Motor{}
	_ encoding.BinaryUnmarshaler = (*Motor)(nil)
)

// appendFloats encodes vs little-endian in order.
func appendFloats(vs ...Float) []byte {
	b := make([]byte, len(vs)*floatSize)
	for i, v := range vs {
		putFloat(b[i*floatSize:], v)
	}
	return b
}

// readFloats decodes len(dst) little-endian floats from data.
func readFloats(typ string, data []byte, dst ...*Float) error {
	if len(data) != len(dst)*floatSize {
		return &LengthError{Type: typ, Got: len(data), Expected: len(dst) * floatSize}
	}
	for i, d := range dst {
		*d = getFloat(data[i*floatSize:])
	}
	return nil
}

// MarshalBinary encodes p as X, Y, Z, W in little-endian Float width.
func (p Point) MarshalBinary() ([]byte, error) {
	return appendFloats(p.X, p.Y, p.Z, p.W), nil
}

// UnmarshalBinary decodes data produced by MarshalBinary.
func (p *Point) UnmarshalBinary(data []byte) error {
	return readFloats("Point", data, &p.X, &p.Y, &p.Z, &p.W)
}

// MarshalBinary encodes l as VX, VY, VZ, MX, MY, MZ in little-endian Float width.
func (l Line) MarshalBinary() ([]byte, error) {
	return appendFloats(l.VX, l.VY, l.VZ, l.MX, l.MY, l.MZ), nil
}

// UnmarshalBinary decodes data produced by MarshalBinary.
func (l *Line) UnmarshalBinary(data []byte) error {
	return readFloats("Line", data, &l.VX, &l.VY, &l.VZ, &l.MX, &l.MY, &l.MZ)
}

// MarshalBinary encodes p as X, Y, Z, W in little-endian Float width.
func (p Plane) MarshalBinary() ([]byte, error) {
	return appendFloats(p.X, p.Y, p.Z, p.W), nil
}

// UnmarshalBinary decodes data produced by MarshalBinary.
func (p *Plane) UnmarshalBinary(data []byte) error {
	return readFloats("Plane", data, &p.X, &p.Y, &p.Z, &p.W)
}

// MarshalBinary encodes m in field order in little-endian Float width.
func (m Motor) MarshalBinary() ([]byte, error) {
	return appendFloats(m.VX, m.VY, m.VZ, m.VW, m.MX, m.MY, m.MZ, m.MW), nil
}

// UnmarshalBinary decodes data produced by MarshalBinary.
func (m *Motor) UnmarshalBinary(data []byte) error {
	return readFloats("Motor", data, &m.VX, &m.VY, &m.VZ, &m.VW, &m.MX, &m.MY, &m.MZ, &m.MW)
}
