// Package batch transforms large point buffers with a single motor.
//
// The algebra in pga3d is allocation-free and goroutine-safe, so a buffer
// can be split into disjoint chunks and transformed in parallel. Small
// inputs are transformed inline.
package batch

import (
	"errors"

	"github.com/gogpu/pga3d"
	"github.com/gogpu/pga3d/internal/parallel"
)

// Sentinel errors for the batch package.
var (
	// ErrShortDst is returned when dst has fewer elements than src.
	ErrShortDst = errors.New("batch: destination shorter than source")

	// ErrClosed is returned by Transform after Close.
	ErrClosed = errors.New("batch: transformer is closed")
)

// Transform writes m.Transform(src[i]) into dst[i] sequentially.
// dst and src may be the same slice.
func Transform(m pga3d.Motor, dst, src []pga3d.Point) error {
	if len(dst) < len(src) {
		return ErrShortDst
	}
	transformRange(m, dst, src, 0, len(src))
	return nil
}

func transformRange(m pga3d.Motor, dst, src []pga3d.Point, start, end int) {
	for i := start; i < end; i++ {
		dst[i] = m.Transform(src[i])
	}
}

// Transformer transforms point buffers on a worker pool.
//
// Thread safety: Transformer is safe for concurrent use.
type Transformer struct {
	pool      *parallel.WorkerPool
	chunkSize int
}

// New creates a Transformer and starts its workers.
// Call Close to release them.
func New(opts ...Option) *Transformer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	pool := parallel.NewWorkerPool(o.workers)
	pga3d.Logger().Debug("batch: transformer started",
		"workers", pool.Workers(), "chunk_size", o.chunkSize)

	return &Transformer{pool: pool, chunkSize: o.chunkSize}
}

// Transform writes m.Transform(src[i]) into dst[i]. dst and src may be the
// same slice. Inputs no longer than one chunk are transformed on the
// calling goroutine.
func (t *Transformer) Transform(m pga3d.Motor, dst, src []pga3d.Point) error {
	if len(dst) < len(src) {
		return ErrShortDst
	}
	if !t.pool.IsRunning() {
		return ErrClosed
	}
	if len(src) <= t.chunkSize {
		transformRange(m, dst, src, 0, len(src))
		return nil
	}

	ok := t.pool.ForEachChunk(len(src), t.chunkSize, func(start, end int) {
		transformRange(m, dst, src, start, end)
	})
	if !ok {
		return ErrClosed
	}
	return nil
}

// Workers returns the number of worker goroutines.
func (t *Transformer) Workers() int {
	return t.pool.Workers()
}

// Close stops the workers. It is safe to call multiple times.
func (t *Transformer) Close() {
	if t.pool.IsRunning() {
		pga3d.Logger().Debug("batch: transformer closed")
	}
	t.pool.Close()
}
