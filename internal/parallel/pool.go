// Package parallel splits per-pixel work into spans and runs them on a
// small work-stealing goroutine pool.
//
// Spans are contiguous pixel ranges, so workers touch disjoint memory and
// need no synchronization beyond the final wait.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool runs work items on a fixed set of goroutines.
//
// Each worker owns a queue and steals from the others when its own queue is
// empty. WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool

	// closing is held for reading while enqueueing and for writing while
	// Close stops the pool, so no item is queued after workers drain.
	closing sync.RWMutex
}

// NewWorkerPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
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

	own := p.queues[id]
	for {
		select {
		case <-p.done:
			drain(own)
			return
		case fn := <-own:
			fn()
		default:
			if fn := p.steal(id); fn != nil {
				fn()
				continue
			}
			select {
			case <-p.done:
				drain(own)
				return
			case fn := <-own:
				fn()
			}
		}
	}
}

func drain(queue chan func()) {
	for {
		select {
		case fn := <-queue:
			fn()
		default:
			return
		}
	}
}

func (p *WorkerPool) steal(id int) func() {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case fn := <-p.queues[i]:
			return fn
		default:
		}
	}
	return nil
}

// ExecuteAll runs every item and waits for all of them. Items that cannot be
// queued because the pool is closed run on the calling goroutine.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(work))
	for i, fn := range work {
		task := func() {
			defer wg.Done()
			fn()
		}
		if !p.enqueue(i%p.workers, task) {
			task()
		}
	}
	wg.Wait()
}

// enqueue queues fn for worker w. It reports false once the pool is closed.
func (p *WorkerPool) enqueue(w int, fn func()) bool {
	p.closing.RLock()
	defer p.closing.RUnlock()

	if !p.running.Load() {
		return false
	}
	p.queues[w] <- fn
	return true
}

// Close stops the pool after queued work has run. It is safe to call more
// than once.
func (p *WorkerPool) Close() {
	p.closing.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.closing.Unlock()
		return
	}
	close(p.done)
	p.closing.Unlock()

	p.wg.Wait()
}

// Workers returns the number of worker goroutines.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool accepts work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}

// Span is a half-open range [Lo, Hi) of pixel indices.
type Span struct {
	Lo, Hi int
}

// Split divides n items into at most parts spans of at least grain items
// each. It returns nil for n <= 0.
func Split(n, parts, grain int) []Span {
	if n <= 0 {
		return nil
	}
	grain = max(grain, 1)
	parts = max(min(parts, n/grain), 1)

	spans := make([]Span, 0, parts)
	step := n / parts
	rem := n % parts
	lo := 0
	for i := range parts {
		hi := lo + step
		if i < rem {
			hi++
		}
		spans = append(spans, Span{Lo: lo, Hi: hi})
		lo = hi
	}
	return spans
}

// For calls fn once per span of [0, n) on the pool and waits. Inputs smaller
// than two grains run inline on the caller's goroutine.
func (p *WorkerPool) For(n, grain int, fn func(lo, hi int)) {
	spans := Split(n, p.workers, grain)
	if len(spans) <= 1 {
		if n > 0 {
			fn(0, n)
		}
		return
	}

	work := make([]func(), len(spans))
	for i, s := range spans {
		work[i] = func() { fn(s.Lo, s.Hi) }
	}
	p.ExecuteAll(work)
}
