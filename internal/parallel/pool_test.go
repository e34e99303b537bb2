package parallel

import (
	"sync/atomic"
	"testing"
)

func TestExecuteAllCompletes(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	var counter atomic.Int64
	work := make([]func(), 100)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}

	pool.ExecuteAll(work)

	if got := counter.Load(); got != 100 {
		t.Errorf("completed %d items, want 100", got)
	}
}

func TestExecuteAllEmpty(t *testing.T) {
	pool := NewPool(2)
	defer pool.Close()

	// Must return immediately without blocking.
	pool.ExecuteAll(nil)
	pool.ExecuteAll([]func(){})
}

func TestExecuteAllReusable(t *testing.T) {
	pool := NewPool(2)
	defer pool.Close()

	var counter atomic.Int64
	work := []func(){
		func() { counter.Add(1) },
		func() { counter.Add(1) },
	}

	for i := 0; i < 10; i++ {
		pool.ExecuteAll(work)
	}

	if got := counter.Load(); got != 20 {
		t.Errorf("completed %d items, want 20", got)
	}
}

func TestDefaultWorkerCount(t *testing.T) {
	pool := NewPool(0)
	defer pool.Close()

	if pool.Workers() <= 0 {
		t.Errorf("Workers() = %d, want > 0", pool.Workers())
	}
}

func TestCloseIdempotent(t *testing.T) {
	pool := NewPool(2)

	if !pool.IsRunning() {
		t.Error("new pool should be running")
	}

	pool.Close()
	pool.Close()

	if pool.IsRunning() {
		t.Error("closed pool should not be running")
	}
}

func TestExecuteAllAfterClose(t *testing.T) {
	pool := NewPool(2)
	pool.Close()

	var counter atomic.Int64
	pool.ExecuteAll([]func(){func() { counter.Add(1) }})

	if got := counter.Load(); got != 0 {
		t.Errorf("closed pool executed %d items, want 0", got)
	}
}

func TestWorkStealing(t *testing.T) {
	// One item per submission always lands on worker 0's queue; the
	// other workers can only make progress by stealing.
	pool := NewPool(4)
	defer pool.Close()

	var counter atomic.Int64
	for i := 0; i < 50; i++ {
		pool.ExecuteAll([]func(){func() { counter.Add(1) }})
	}

	if got := counter.Load(); got != 50 {
		t.Errorf("completed %d items, want 50", got)
	}
}
