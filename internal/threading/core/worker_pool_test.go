package core

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestParallelFor_VisitsEachIndexOnce(t *testing.T) {
	wp := NewWorkerPool(4)
	wp.Start()
	defer wp.Stop()

	const n = 103
	var hits [n]atomic.Int32
	wp.ParallelFor(0, n, func(i int) {
		hits[i].Add(1)
	})

	for i := range hits {
		if got := hits[i].Load(); got != 1 {
			t.Fatalf("index %d visited %d times", i, got)
		}
	}
}

func TestParallelFor_EmptyRange(t *testing.T) {
	wp := NewWorkerPool(2)
	wp.Start()
	defer wp.Stop()

	called := false
	wp.ParallelFor(5, 5, func(int) { called = true })
	if called {
		t.Errorf("empty range must not call fn")
	}
}

func TestParallelFor_ConcurrentCallers(t *testing.T) {
	wp := NewWorkerPool(3)
	wp.Start()
	defer wp.Stop()

	var wg sync.WaitGroup
	var total atomic.Int64
	for c := 0; c < 4; c++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			wp.ParallelFor(0, 25, func(int) { total.Add(1) })
		}()
	}
	wg.Wait()
	if got := total.Load(); got != 100 {
		t.Errorf("expected 100 calls, got %d", got)
	}
}

func TestNewWorkerPool_DefaultsToCPUCount(t *testing.T) {
	wp := NewWorkerPool(0)
	if wp.GetNumWorkers() <= 0 {
		t.Errorf("expected positive worker count")
	}
	wp.Stop()
	wp.Stop()
}
