package pga3d

import "testing"

var (
	sinkPoint Point
	sinkLine  Line
	sinkMotor Motor
	sinkFloat Float
)

func BenchmarkPointJoin(b *testing.B) {
	p1 := NewPoint(5, 6, 7, 1)
	p2 := NewPoint(6, 7, 8, 1)
	b.ReportAllocs()
	for b.Loop() {
		sinkLine = p1.Join(p2)
	}
}

func BenchmarkPointDot(b *testing.B) {
	p1 := NewPoint(5, 6, 7, 1)
	p2 := NewPoint(6, 7, 8, 1)
	b.ReportAllocs()
	for b.Loop() {
		sinkFloat = p1.Dot(p2)
	}
}

func BenchmarkMotorCombine(b *testing.B) {
	m1 := EulerPosRot(1, 2, 3, 0.3, 0.4, 0.5)
	m2 := EulerPosRot(-2, 0.5, 1, 1.1, -0.7, 0.2)
	b.ReportAllocs()
	for b.Loop() {
		sinkMotor = m1.Combine(m2)
	}
}

func BenchmarkMotorTransform(b *testing.B) {
	m := EulerPosRot(1, 2, 3, 0.3, 0.4, 0.5)
	p := Position(0.5, 0.3, 0.7)
	b.ReportAllocs()
	for b.Loop() {
		sinkPoint = m.Transform(p)
	}
}

func BenchmarkEulerPosRot(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		sinkMotor = EulerPosRot(1, 2, 3, 0.3, 0.4, 0.5)
	}
}

func BenchmarkMotorFactorize(b *testing.B) {
	m := EulerPosRot(3, 2, 1, 2.5, 3, 4)
	b.ReportAllocs()
	for b.Loop() {
		sinkMotor, _ = m.Factorize()
	}
}
