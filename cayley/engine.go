// Package cayley: the evolution engine facade.
package cayley

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/qevolve/bicgstab"
	"github.com/katalvlaran/qevolve/kernel"
)

// Report is the outcome of one EvolveUnitary call. Iterations is the sole
// observable health signal the surrounding simulation consumes; a count
// trending toward the budget is a warning about timestep or Hamiltonian
// conditioning, but the engine makes no autonomous decision about it.
// Status distinguishes the three solver terminal states for callers that
// monitor more than the count.
type Report struct {
	Iterations int
	Status     bicgstab.Status
	Residual   float64
}

// backend is the precision-erased face of the generic engine state. Both
// variants share one generic implementation; only storage width, packing
// and default tolerance differ.
type backend interface {
	initialize(nodeCount, gaugeDim, nnz int)
	upload(rowOffsets, columnIndices []int, edgeWeights, diagonalPotential []float64) error
	evolve(stateReal, stateImag []float64, dt float64) Report
}

// Engine orchestrates Cayley-transform evolution: buffer lifecycle,
// Hamiltonian upload, RHS construction and the per-step solve. Methods
// are not safe for concurrent use; one engine serves one simulation loop.
type Engine struct {
	precision Precision
	opt       Options
	log       *zap.Logger
	be        backend

	nodeCount int
	gaugeDim  int
	nnz       int

	initialized bool
	uploaded    bool
}

// New constructs an engine at the requested precision. An unknown or
// backend-unsupported precision is rejected here with
// ErrPrecisionUnavailable — never mid-solve. The goroutine dispatch
// backend supports both precisions.
func New(precision Precision, opts ...Option) (*Engine, error) {
	opt := gatherOptions(opts...)
	pool := kernel.NewPool(kernel.WithWorkers(opt.workers))

	e := &Engine{precision: precision, opt: opt, log: opt.logger}
	switch precision {
	case PrecisionSingle:
		e.be = newState[float32](pool, opt)
	case PrecisionDouble:
		e.be = newState[float64](pool, opt)
	default:
		return nil, fmt.Errorf("cayley.New: precision %d: %w", precision, ErrPrecisionUnavailable)
	}

	return e, nil
}

// Precision returns the working precision fixed at construction.
func (e *Engine) Precision() Precision { return e.precision }

// Initialize (re)allocates every working buffer for the given dimensions
// and invalidates any previously uploaded Hamiltonian. It must precede
// UploadHamiltonian and EvolveUnitary, and fixes the dimensions those
// calls must match. Calling it again with new dimensions is the only way
// buffers are ever reallocated.
func (e *Engine) Initialize(nodeCount, gaugeDim, nnz int) error {
	if nodeCount < 1 || gaugeDim < 1 || nnz < 0 {
		return fmt.Errorf("cayley.Initialize: %w", ErrBadDimensions)
	}
	e.nodeCount, e.gaugeDim, e.nnz = nodeCount, gaugeDim, nnz
	e.be.initialize(nodeCount, gaugeDim, nnz)
	e.initialized = true
	e.uploaded = false

	e.log.Debug("engine initialized",
		zap.Int("nodeCount", nodeCount),
		zap.Int("gaugeDim", gaugeDim),
		zap.Int("nnz", nnz),
		zap.String("precision", e.precision.String()),
	)

	return nil
}

// UploadHamiltonian validates and copies the CSR Hamiltonian into engine
// storage. Arrays must match the dimensions fixed by Initialize; the CSR
// structure must satisfy the hamiltonian package invariants including
// symmetry (H Hermitian is what the unitarity guarantee rests on).
// Expected between timesteps, never concurrently with a solve.
func (e *Engine) UploadHamiltonian(rowOffsets, columnIndices []int, edgeWeights, diagonalPotential []float64) error {
	if !e.initialized {
		return fmt.Errorf("cayley.UploadHamiltonian: %w", ErrNotInitialized)
	}
	if len(rowOffsets) != e.nodeCount+1 ||
		len(columnIndices) != e.nnz ||
		len(edgeWeights) != e.nnz ||
		len(diagonalPotential) != e.nodeCount {
		return fmt.Errorf("cayley.UploadHamiltonian: %w", ErrDimensionMismatch)
	}
	if err := e.be.upload(rowOffsets, columnIndices, edgeWeights, diagonalPotential); err != nil {
		return fmt.Errorf("cayley.UploadHamiltonian: %w", err)
	}
	e.uploaded = true

	return nil
}

// EvolveUnitary advances the state in place by one Cayley step of size
// dt: packs the host arrays, builds b = (I−iαH)·ψ with α = dt/2, solves
// (I+iαH)·ψ' = b, and unpacks ψ' back into the host arrays. On
// convergence ‖ψ'‖ ≈ ‖ψ‖ with no renormalization.
//
// dt == 0 is the identity: the state is untouched, zero iterations.
//
// Solver breakdown or an exhausted iteration budget still update the
// state with the best iterate and return a nil error; only configuration
// mistakes (wrong lengths, missing Initialize/Upload) are errors.
func (e *Engine) EvolveUnitary(stateReal, stateImag []float64, dt float64) (Report, error) {
	if !e.initialized {
		return Report{}, fmt.Errorf("cayley.EvolveUnitary: %w", ErrNotInitialized)
	}
	if !e.uploaded {
		return Report{}, fmt.Errorf("cayley.EvolveUnitary: %w", ErrNoHamiltonian)
	}
	dim := e.nodeCount * e.gaugeDim
	if len(stateReal) != dim || len(stateImag) != dim {
		return Report{}, fmt.Errorf("cayley.EvolveUnitary: %w", ErrDimensionMismatch)
	}
	if dt == 0 {
		// α = 0 ⇒ A = I; skip packing so the state stays bit-identical.
		return Report{Iterations: 0, Status: bicgstab.StatusConverged}, nil
	}

	report := e.be.evolve(stateReal, stateImag, dt)

	e.log.Debug("evolve step",
		zap.Float64("dt", dt),
		zap.Int("iterations", report.Iterations),
		zap.String("status", report.Status.String()),
		zap.Float64("residual", report.Residual),
	)

	return report, nil
}
