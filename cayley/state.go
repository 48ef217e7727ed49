// Package cayley: the precision-generic engine state.
package cayley

import (
	"github.com/katalvlaran/qevolve/bicgstab"
	"github.com/katalvlaran/qevolve/hamiltonian"
	"github.com/katalvlaran/qevolve/kernel"
)

// state is the working storage behind one Engine at precision T: the
// device-resident Hamiltonian copy, the packed state and RHS vectors and
// the solver workspace. All buffers are sized by initialize and reused
// across every subsequent timestep.
type state[T kernel.Real] struct {
	pool *kernel.Pool

	nodeCount int
	gaugeDim  int
	nnz       int

	h   *hamiltonian.CSR[T]
	psi kernel.Vector[T]
	rhs kernel.Vector[T]
	ws  *bicgstab.Workspace[T]

	solverOpts []bicgstab.Option
}

// newState wires a generic backend onto the shared dispatch pool,
// freezing the solver options once.
func newState[T kernel.Real](pool *kernel.Pool, opt Options) *state[T] {
	var solverOpts []bicgstab.Option
	if opt.tolerance != 0 {
		solverOpts = append(solverOpts, bicgstab.WithTolerance(opt.tolerance))
	}
	if opt.maxIterations != bicgstab.DefaultMaxIterations {
		solverOpts = append(solverOpts, bicgstab.WithMaxIterations(opt.maxIterations))
	}

	return &state[T]{pool: pool, solverOpts: solverOpts}
}

func (s *state[T]) initialize(nodeCount, gaugeDim, nnz int) {
	s.nodeCount, s.gaugeDim, s.nnz = nodeCount, gaugeDim, nnz
	dim := nodeCount * gaugeDim
	s.psi = kernel.NewVector[T](dim)
	s.rhs = kernel.NewVector[T](dim)
	s.ws = bicgstab.NewWorkspace[T](s.pool, dim)
	s.h = nil // prior operator no longer matches the buffers
}

// upload converts the host CSR arrays into working precision, validates
// the structural and symmetry invariants, and installs the copy.
func (s *state[T]) upload(rowOffsets, columnIndices []int, edgeWeights, diagonalPotential []float64) error {
	h := &hamiltonian.CSR[T]{
		RowOffsets:        make([]int, len(rowOffsets)),
		ColumnIndices:     make([]int, len(columnIndices)),
		EdgeWeights:       make([]T, len(edgeWeights)),
		DiagonalPotential: make([]T, len(diagonalPotential)),
		GaugeDim:          s.gaugeDim,
	}
	copy(h.RowOffsets, rowOffsets)
	copy(h.ColumnIndices, columnIndices)
	for i, w := range edgeWeights {
		h.EdgeWeights[i] = T(w)
	}
	for i, v := range diagonalPotential {
		h.DiagonalPotential[i] = T(v)
	}

	if err := h.Validate(); err != nil {
		return err
	}
	if err := h.ValidateSymmetric(); err != nil {
		return err
	}
	s.h = h

	return nil
}

// evolve runs one Cayley step on packed state. The engine facade has
// already validated lengths and the dt == 0 fast path.
func (s *state[T]) evolve(stateReal, stateImag []float64, dt float64) Report {
	dim := s.nodeCount * s.gaugeDim
	alpha := dt / 2

	// Pack host arrays into the working-precision complex vector.
	for i := 0; i < dim; i++ {
		s.psi.Re[i] = T(stateReal[i])
		s.psi.Im[i] = T(stateImag[i])
	}

	// b = (I − iαH)·ψ, then solve (I + iαH)·ψ' = b in place over psi.
	kernel.Apply(s.pool, kernel.CombineRHS, s.rhs, s.psi, kernel.Vector[T]{}, s.h, T(alpha))
	res := s.ws.Solve(s.h, alpha, s.rhs, s.psi, s.solverOpts...)

	// Unpack the evolved state back into the caller's arrays.
	for i := 0; i < dim; i++ {
		stateReal[i] = float64(s.psi.Re[i])
		stateImag[i] = float64(s.psi.Im[i])
	}

	return Report{Iterations: res.Iterations, Status: res.Status, Residual: res.Residual}
}
