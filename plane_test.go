package pga3d

import "testing"

func TestNewPlane(t *testing.T) {
	p := NewPlane(1, 2, 3, 4)
	if p.X != 1 || p.Y != 2 || p.Z != 3 || p.W != 4 {
		t.Errorf("NewPlane(1, 2, 3, 4) = %+v", p)
	}
}

func TestPlaneIsZero(t *testing.T) {
	tests := []struct {
		name  string
		plane Plane
		want  bool
	}{
		{"zero value", Plane{}, true},
		{"negative zeros", Zero.ExpandLine(Line{}), true},
		{"ground", NewPlane(0, 1, 0, 0), false},
		{"offset only", NewPlane(0, 0, 0, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.plane.IsZero(); got != tt.want {
				t.Errorf("%+v.IsZero() = %v, want %v", tt.plane, got, tt.want)
			}
		})
	}
}

func TestPlaneApprox(t *testing.T) {
	p := NewPlane(0, 1, 0, -2)
	if !p.Approx(NewPlane(0, 1, 0, -2+Epsilon/2), Epsilon) {
		t.Error("planes within epsilon should be approximately equal")
	}
	if p.Approx(NewPlane(0, -1, 0, 2), Epsilon) {
		t.Error("opposite planes should not be approximately equal")
	}
}
