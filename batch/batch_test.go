package batch

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/pga3d"
)

func grid(n int) []pga3d.Point {
	pts := make([]pga3d.Point, n)
	for i := range pts {
		f := pga3d.Float(i)
		pts[i] = pga3d.Position(f*0.01, -f*0.02, f*0.005)
	}
	return pts
}

func TestTransformSequential(t *testing.T) {
	m := pga3d.EulerPosRot(1, 2, 3, 0.3, 0.4, 0.5)
	src := grid(50)
	dst := make([]pga3d.Point, len(src))

	require.NoError(t, Transform(m, dst, src))
	for i := range src {
		assert.Equal(t, m.Transform(src[i]), dst[i], "index %d", i)
	}
}

func TestTransformShortDst(t *testing.T) {
	err := Transform(pga3d.Identity(), make([]pga3d.Point, 1), grid(2))
	assert.ErrorIs(t, err, ErrShortDst)

	tr := New(WithWorkers(2))
	defer tr.Close()
	err = tr.Transform(pga3d.Identity(), make([]pga3d.Point, 1), grid(2))
	assert.ErrorIs(t, err, ErrShortDst)
}

func TestTransformerMatchesSequential(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		workers   int
		chunkSize int
	}{
		{"inline", 100, 2, 1024},
		{"exact chunks", 4096, 4, 1024},
		{"ragged", 5000, 3, 333},
		{"one worker", 2500, 1, 100},
		{"empty", 0, 2, 16},
	}
	m := pga3d.AxisAngle(0, 0, 1, 0.7).Combine(pga3d.Translation(-1, 4, 2))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New(WithWorkers(tt.workers), WithChunkSize(tt.chunkSize))
			defer tr.Close()
			assert.Equal(t, tt.workers, tr.Workers())

			src := grid(tt.n)
			got := make([]pga3d.Point, tt.n)
			want := make([]pga3d.Point, tt.n)
			require.NoError(t, tr.Transform(m, got, src))
			require.NoError(t, Transform(m, want, src))
			assert.Equal(t, want, got)
		})
	}
}

func TestTransformerInPlace(t *testing.T) {
	tr := New(WithWorkers(2), WithChunkSize(64))
	defer tr.Close()

	m := pga3d.Translation(1, 2, 3)
	pts := grid(1000)
	orig := append([]pga3d.Point(nil), pts...)

	require.NoError(t, tr.Transform(m, pts, pts))
	require.NoError(t, tr.Transform(m.Inverse(), pts, pts))
	for i := range pts {
		assert.True(t, pts[i].IsClose(orig[i]), "index %d: %+v != %+v", i, pts[i], orig[i])
	}
}

func TestTransformerClosed(t *testing.T) {
	tr := New(WithWorkers(2))
	tr.Close()
	tr.Close()

	err := tr.Transform(pga3d.Identity(), make([]pga3d.Point, 4), grid(4))
	assert.ErrorIs(t, err, ErrClosed)
}

func TestWithChunkSizeIgnoresNonPositive(t *testing.T) {
	o := defaultOptions()
	WithChunkSize(0)(&o)
	WithChunkSize(-3)(&o)
	assert.Equal(t, DefaultChunkSize, o.chunkSize)
}

func TestTransformerLogsLifecycle(t *testing.T) {
	orig := pga3d.Logger()
	t.Cleanup(func() { pga3d.SetLogger(orig) })

	var buf bytes.Buffer
	pga3d.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	tr := New(WithWorkers(2))
	tr.Close()

	out := buf.String()
	assert.True(t, strings.Contains(out, "transformer started"), out)
	assert.True(t, strings.Contains(out, "workers=2"), out)
	assert.True(t, strings.Contains(out, "transformer closed"), out)
}

func BenchmarkTransformer(b *testing.B) {
	tr := New()
	defer tr.Close()

	m := pga3d.EulerPosRot(1, 2, 3, 0.3, 0.4, 0.5)
	src := grid(1 << 16)
	dst := make([]pga3d.Point, len(src))

	b.ReportAllocs()
	for b.Loop() {
		_ = tr.Transform(m, dst, src)
	}
}

func BenchmarkTransformSequential(b *testing.B) {
	m := pga3d.EulerPosRot(1, 2, 3, 0.3, 0.4, 0.5)
	src := grid(1 << 16)
	dst := make([]pga3d.Point, len(src))

	b.ReportAllocs()
	for b.Loop() {
		_ = Transform(m, dst, src)
	}
}
