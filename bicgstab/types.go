// Package bicgstab: statuses, options and defaults.
package bicgstab

// Status is the terminal state of one solve.
type Status int

const (
	// StatusConverged — the residual norm dropped below tolerance.
	StatusConverged Status = iota

	// StatusBreakdown — a Krylov inner product degenerated to near zero;
	// the best iterate so far is left in x.
	StatusBreakdown

	// StatusMaxIterations — the iteration budget ran out before the
	// residual met tolerance; the best iterate so far is left in x.
	StatusMaxIterations
)

// String implements fmt.Stringer for diagnostics and logs.
func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "converged"
	case StatusBreakdown:
		return "breakdown"
	case StatusMaxIterations:
		return "max-iterations"
	default:
		return "unknown"
	}
}

// Result reports the outcome of one solve. Iterations is the sole
// per-step health signal surfaced to simulation callers; Residual is the
// norm at exit (diagnostic only).
type Result struct {
	Iterations int
	Status     Status
	Residual   float64
}

// DEFAULTS — single source of truth for zero-value behavior.
const (
	// DefaultMaxIterations bounds worst-case per-step latency. With the
	// near-identity Cayley operator, healthy solves finish in far fewer.
	DefaultMaxIterations = 100

	// DefaultTolerance32 is the single-precision residual tolerance,
	// chosen so unitarity holds to near machine precision per step.
	DefaultTolerance32 = 1e-8

	// DefaultTolerance64 is the double-precision residual tolerance for
	// long-horizon phase coherence.
	DefaultTolerance64 = 1e-12

	// BreakdownEpsilon guards the scalar recurrence: when the squared
	// magnitude of ρ, ⟨r̂,v⟩, ⟨t,t⟩ or ω falls below it, the Krylov
	// subspace has degenerated and the solve stops early.
	BreakdownEpsilon = 1e-30
)

const (
	panicToleranceInvalid = "bicgstab: WithTolerance: tol must be > 0"
	panicMaxIterInvalid   = "bicgstab: WithMaxIterations: n must be >= 1"
)

// Option mutates solve configuration. Constructors panic only on
// nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective solve configuration. The zero Tolerance
// means "pick the per-precision default"; resolution happens inside
// Workspace.Solve where the precision is known.
type Options struct {
	tolerance     float64
	maxIterations int
}

// WithTolerance overrides the per-precision default residual tolerance.
// Panics if tol <= 0.
func WithTolerance(tol float64) Option {
	if tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = tol }
}

// WithMaxIterations overrides the iteration budget. Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIterations = n }
}

// gatherOptions resolves option setters against the documented defaults
// (last-writer-wins).
func gatherOptions(opts ...Option) Options {
	o := Options{
		tolerance:     0, // per-precision default, resolved at solve time
		maxIterations: DefaultMaxIterations,
	}
	for _, set := range opts {
		set(&o)
	}

	return o
}
