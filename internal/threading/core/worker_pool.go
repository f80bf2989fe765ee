package core

import (
	"runtime"
	"sync"
)

// WorkerPool runs index ranges across a fixed set of goroutines. The world
// uses it to step independent movers within a single tick.
type WorkerPool struct {
	numWorkers int
	chunks     chan chunk
	quit       chan struct{}
	stopOnce   sync.Once
}

// chunk is a half-open index range handed to one worker.
type chunk struct {
	start, end int
	fn         func(int)
	done       *sync.WaitGroup
}

// NewWorkerPool creates a pool; numWorkers <= 0 means one per CPU
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		numWorkers: numWorkers,
		chunks:     make(chan chunk, numWorkers*2),
		quit:       make(chan struct{}),
	}
}

// Start launches the worker goroutines
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		go wp.worker()
	}
}

func (wp *WorkerPool) worker() {
	for {
		select {
		case c := <-wp.chunks:
			for i := c.start; i < c.end; i++ {
				c.fn(i)
			}
			c.done.Done()
		case <-wp.quit:
			return
		}
	}
}

// Stop shuts the workers down. Calling it twice is safe.
func (wp *WorkerPool) Stop() {
	wp.stopOnce.Do(func() { close(wp.quit) })
}

// ParallelFor runs fn for every index in [start, end) and returns once all
// calls have finished. Each index is handled by exactly one worker, and
// concurrent ParallelFor calls do not wait on each other's work.
func (wp *WorkerPool) ParallelFor(start, end int, fn func(int)) {
	if start >= end {
		return
	}

	size := max(1, (end-start)/wp.numWorkers)
	var done sync.WaitGroup
	for i := start; i < end; i += size {
		done.Add(1)
		wp.chunks <- chunk{start: i, end: min(i+size, end), fn: fn, done: &done}
	}
	done.Wait()
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}
