// Package cayley: functional configuration for the evolution engine.
//
// Design goals (shared across the module):
//   - Deterministic behavior: no global state, defaults as documented
//     constants, last-writer-wins option application.
//   - Safe by construction: panic only on nonsensical parameters
//     (programmer error) inside WithX constructors.
package cayley

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/qevolve/bicgstab"
	"github.com/katalvlaran/qevolve/kernel"
)

// Precision selects the working precision of kernels and solver storage.
type Precision int

const (
	// PrecisionSingle stores vectors and operator data as float32 with a
	// 1e-8 default tolerance. Halves memory traffic; fine for short and
	// medium trajectories.
	PrecisionSingle Precision = iota

	// PrecisionDouble stores float64 with a 1e-12 default tolerance, for
	// long-horizon phase coherence.
	PrecisionDouble
)

// String implements fmt.Stringer.
func (p Precision) String() string {
	switch p {
	case PrecisionSingle:
		return "single"
	case PrecisionDouble:
		return "double"
	default:
		return "unknown"
	}
}

// Option mutates engine configuration.
type Option func(*Options)

// Options stores the effective engine configuration; fields are resolved
// once in New and never mutated afterwards.
type Options struct {
	workers       int
	tolerance     float64 // 0 ⇒ per-precision solver default
	maxIterations int
	logger        *zap.Logger
}

// WithWorkers fixes the dispatch pool size. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("cayley: WithWorkers: workers must be >= 1")
	}

	return func(o *Options) { o.workers = n }
}

// WithTolerance overrides the per-precision residual tolerance of the
// underlying solver. Panics if tol <= 0.
func WithTolerance(tol float64) Option {
	if tol <= 0 {
		panic("cayley: WithTolerance: tol must be > 0")
	}

	return func(o *Options) { o.tolerance = tol }
}

// WithMaxIterations overrides the solver iteration budget. Panics if
// n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic("cayley: WithMaxIterations: n must be >= 1")
	}

	return func(o *Options) { o.maxIterations = n }
}

// WithLogger attaches a structured logger for per-step diagnostics
// (iteration count, status, residual, at Debug level). The engine is
// silent by default; a nil logger restores that.
func WithLogger(log *zap.Logger) Option {
	return func(o *Options) {
		if log == nil {
			log = zap.NewNop()
		}
		o.logger = log
	}
}

// gatherOptions resolves setters against the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		workers:       kernel.DefaultWorkers,
		tolerance:     0,
		maxIterations: bicgstab.DefaultMaxIterations,
		logger:        zap.NewNop(),
	}
	for _, set := range opts {
		set(&o)
	}

	return o
}
