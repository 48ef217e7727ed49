// Package kernel: the parallel dispatch pool.
//
// Purpose:
//   - Provide "parallel map over an index range" plus "per-group partial
//     reduction" — the only two scheduling shapes the solver needs. Any
//     backend offering these satisfies the engine design; this one maps
//     groups onto goroutines via errgroup.
//
// Determinism & Performance:
//   - Chunk boundaries depend only on (n, workers), never on timing, so
//     reduction partials (and therefore float rounding) are reproducible
//     run to run for a fixed pool size.
package kernel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the zero-value worker count: one per logical CPU.
// Element kernels are memory-bound; oversubscribing buys nothing.
var DefaultWorkers = runtime.NumCPU()

const panicWorkersInvalid = "kernel: WithWorkers: workers must be >= 1"

// Option mutates pool configuration. Constructors panic only on
// nonsensical values (programmer error), never at dispatch time.
type Option func(*options)

type options struct {
	workers int
}

// WithWorkers fixes the number of parallel workers (and therefore the
// number of reduction groups). Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = n }
}

// Pool dispatches kernels across a fixed set of workers. A Pool is
// stateless between calls and safe for sequential reuse; the solver's
// iteration model is strictly synchronous, so every dispatch blocks until
// all chunks have finished.
type Pool struct {
	workers int
}

// NewPool builds a Pool with the documented defaults, then applies opts
// in order (last-writer-wins).
func NewPool(opts ...Option) *Pool {
	o := options{workers: DefaultWorkers}
	for _, set := range opts {
		set(&o)
	}

	return &Pool{workers: o.workers}
}

// Workers returns the pool's worker count.
func (p *Pool) Workers() int { return p.workers }

// Groups returns the number of chunks a dispatch over n indices produces,
// which is also the partial-buffer length reductions require. Never more
// than Workers(), never more than n.
func (p *Pool) Groups(n int) int {
	if n < p.workers {
		return max(n, 0)
	}

	return p.workers
}

// ParallelFor runs fn over [0,n) split into one contiguous chunk per
// worker and blocks until every chunk is done. fn must not touch indices
// outside its [lo,hi) slice; each output index has exactly one writer.
func (p *Pool) ParallelFor(n int, fn func(lo, hi int)) {
	p.forChunks(n, func(_, lo, hi int) { fn(lo, hi) })
}

// forChunks is ParallelFor with the chunk (group) index exposed, used by
// reductions to address their partial-sum slot.
func (p *Pool) forChunks(n int, fn func(group, lo, hi int)) {
	if n <= 0 {
		return
	}
	groups := p.Groups(n)
	if groups == 1 {
		fn(0, 0, n)

		return
	}

	chunk := (n + groups - 1) / groups
	var g errgroup.Group
	for w := 0; w < groups; w++ {
		w := w
		lo := w * chunk
		hi := min(lo+chunk, n)
		if lo >= hi {
			break
		}
		g.Go(func() error {
			fn(w, lo, hi)

			return nil
		})
	}
	// Chunk bodies never fail; Wait is purely the join point.
	_ = g.Wait()
}
