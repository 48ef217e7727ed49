// Package hamiltonian: canonical validation checks.
//
// Purpose:
//   - Provide a single source of truth for structural CSR checks so the
//     engine and builders never duplicate guard logic.
//   - Return plain sentinels wrapped with a stable "tag: %w" shape so call
//     sites can branch with errors.Is and still see where a check failed.
//
// Determinism & Performance:
//   - All checks are pure and deterministic.
//   - Validate runs O(nodeCount + nnz); ValidateSymmetric O(nnz) with one
//     map allocation.
package hamiltonian

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying sentinel with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Validate checks the structural CSR invariants: array lengths, offset
// monotonicity and bounds, column-index range and finite values. It does
// NOT check symmetry; that costs a map pass and lives in ValidateSymmetric
// so hot callers can skip it when the source is already trusted.
//
// Returns nil or one of ErrBadGaugeDim, ErrLengthMismatch, ErrRowOffsets,
// ErrVertexRange, ErrNonFinite.
// Complexity: O(nodeCount + nnz).
func (h *CSR[T]) Validate() error {
	n := h.NodeCount()
	nnz := h.NNZ()
	if h.GaugeDim < 1 {
		return validatorErrorf("Validate", ErrBadGaugeDim)
	}
	if len(h.RowOffsets) != n+1 {
		return validatorErrorf("Validate: RowOffsets", ErrLengthMismatch)
	}
	if len(h.ColumnIndices) != nnz {
		return validatorErrorf("Validate: ColumnIndices", ErrLengthMismatch)
	}

	// Offsets must start at 0, end at nnz and never decrease.
	if h.RowOffsets[0] != 0 || h.RowOffsets[n] != nnz {
		return validatorErrorf("Validate", ErrRowOffsets)
	}
	for i := 0; i < n; i++ {
		if h.RowOffsets[i] > h.RowOffsets[i+1] {
			return validatorErrorf("Validate", ErrRowOffsets)
		}
	}

	// Column indices in range, weights finite.
	for k := 0; k < nnz; k++ {
		if c := h.ColumnIndices[k]; c < 0 || c >= n {
			return validatorErrorf("Validate", ErrVertexRange)
		}
		if isNonFinite(float64(h.EdgeWeights[k])) {
			return validatorErrorf("Validate: EdgeWeights", ErrNonFinite)
		}
	}
	for i := 0; i < n; i++ {
		if isNonFinite(float64(h.DiagonalPotential[i])) {
			return validatorErrorf("Validate: DiagonalPotential", ErrNonFinite)
		}
	}

	return nil
}

// ValidateSymmetric checks that every stored entry (u,v,w) has a matching
// (v,u,w). H must be real symmetric (Hermitian) or the Cayley transform is
// no longer unitary; run this on every untrusted upload.
//
// Assumes Validate has passed (offsets and indices are in range).
// Returns nil or ErrAsymmetric (also ErrAsymmetric when (v,u) is absent).
// Complexity: O(nnz) time and space.
func (h *CSR[T]) ValidateSymmetric() error {
	type entry struct{ u, v int }
	n := h.NodeCount()
	seen := make(map[entry]T, h.NNZ())
	for u := 0; u < n; u++ {
		for k := h.RowOffsets[u]; k < h.RowOffsets[u+1]; k++ {
			seen[entry{u, h.ColumnIndices[k]}] = h.EdgeWeights[k]
		}
	}
	for u := 0; u < n; u++ {
		for k := h.RowOffsets[u]; k < h.RowOffsets[u+1]; k++ {
			w, ok := seen[entry{h.ColumnIndices[k], u}]
			if !ok || w != h.EdgeWeights[k] {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetric)
			}
		}
	}

	return nil
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
