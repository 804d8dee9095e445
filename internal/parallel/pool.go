// Package parallel runs index-range work on a fixed set of goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a pool of goroutines for chunked bulk work.
//
// Each worker owns a queue; a worker whose queue is empty steals from the
// others, which keeps chunks of uneven cost balanced.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers    int
	workQueues []chan func()
	done       chan struct{}
	wg         sync.WaitGroup
	running    atomic.Bool

	// mu is held for reading while work is queued so Close cannot strand
	// items in a queue nobody drains.
	mu sync.RWMutex
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers:    workers,
		workQueues: make([]chan func(), workers),
		done:       make(chan struct{}),
	}
	for i := range workers {
		p.workQueues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	own := p.workQueues[id]
	for {
		select {
		case <-p.done:
			p.drain(own)
			return
		case work := <-own:
			work()
		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
				continue
			}
			select {
			case <-p.done:
				p.drain(own)
				return
			case work := <-own:
				work()
			}
		}
	}
}

func (p *WorkerPool) drain(queue chan func()) {
	for {
		select {
		case work := <-queue:
			work()
		default:
			return
		}
	}
}

// steal takes one item from another worker's queue, or returns nil.
func (p *WorkerPool) steal(id int) func() {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case work := <-p.workQueues[i]:
			return work
		default:
		}
	}
	return nil
}

// ForEachChunk splits [0, n) into consecutive ranges of at most chunk
// indices, calls fn(start, end) for each range on the pool and waits for
// all of them. Ranges never overlap, so fn may write to disjoint parts of
// a shared slice without locking.
//
// It returns false without calling fn if the pool is closed.
func (p *WorkerPool) ForEachChunk(n, chunk int, fn func(start, end int)) bool {
	if n <= 0 {
		return p.running.Load()
	}
	if chunk <= 0 {
		chunk = n
	}

	var completed sync.WaitGroup

	p.mu.RLock()
	if !p.running.Load() {
		p.mu.RUnlock()
		return false
	}
	for i, start := 0, 0; start < n; i, start = i+1, start+chunk {
		end := min(start+chunk, n)
		completed.Add(1)
		p.workQueues[i%p.workers] <- func() {
			defer completed.Done()
			fn(start, end)
		}
	}
	p.mu.RUnlock()

	completed.Wait()
	return true
}

// Close stops accepting work, finishes queued work and stops all workers.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.mu.Unlock()
		return
	}
	close(p.done)
	p.mu.Unlock()

	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still accepts work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
