//go:build pga3d_debug

package pga3d

import (
	"errors"
	"testing"
)

func TestAxisAnglePanicsOnUnnormalizedAxis(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("AxisAngle did not panic on a non-unit axis")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrAxisNotNormalized) {
			t.Errorf("panic value = %v, want ErrAxisNotNormalized", r)
		}
	}()
	_ = AxisAngle(1, 1, 1, 0.5)
}
