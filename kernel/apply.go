// Package kernel: fused operator-apply kernels for the family I ± iαH.
//
// The three public variants share one Laplacian-plus-potential
// accumulation and differ only in the elementwise combine step, so the
// row scan is written exactly once and parameterized by CombineMode
// instead of being triplicated.
package kernel

import "github.com/katalvlaran/qevolve/hamiltonian"

// CombineMode selects how the accumulated H·x is folded with the input
// (and, for the residual variant, an extra right-hand-side buffer).
type CombineMode int

const (
	// CombineSpMV computes dst = (I + iαH)·x — the solver-side matvec.
	CombineSpMV CombineMode = iota

	// CombineRHS computes dst = (I − iαH)·x — the Cayley right-hand side
	// built from the pre-step state.
	CombineRHS

	// CombineResidual computes dst = b − (I + iαH)·x in one fused pass,
	// avoiding a separate subtraction dispatch.
	CombineResidual
)

// Apply evaluates one fused operator kernel over every flattened index
// idx = node·gaugeDim + comp in parallel. b is read only under
// CombineResidual and may be the zero Vector otherwise.
//
// Per index: the diagonal contributes potential[node]·x[idx]; the node's
// CSR row contributes the Laplacian degree·x[idx] − Σ weight·x[nb,comp],
// identical across all comp of a fixed node; the result H·x is then
// combined with x (and b) according to mode, using
// iα·(hRe + i·hIm) = (−α·hIm, α·hRe).
//
// Complexity: O(dim + nnz·gaugeDim) work, one dispatch.
func Apply[T Real](p *Pool, mode CombineMode, dst, x, b Vector[T], h *hamiltonian.CSR[T], alpha T) {
	gd := h.GaugeDim
	p.ParallelFor(h.Dim(), func(lo, hi int) {
		for idx := lo; idx < hi; idx++ {
			node := idx / gd
			comp := idx - node*gd

			// Diagonal potential term.
			xr, xi := x.Re[idx], x.Im[idx]
			accRe := h.DiagonalPotential[node] * xr
			accIm := h.DiagonalPotential[node] * xi

			// Off-diagonal Laplacian: degree·x[idx] − Σ w·x[nb,comp].
			var degree T
			for k := h.RowOffsets[node]; k < h.RowOffsets[node+1]; k++ {
				w := h.EdgeWeights[k]
				nb := h.ColumnIndices[k]*gd + comp
				degree += w
				accRe -= w * x.Re[nb]
				accIm -= w * x.Im[nb]
			}
			accRe += degree * xr
			accIm += degree * xi

			// Combine with iα·Hx per the requested variant.
			switch mode {
			case CombineSpMV:
				dst.Re[idx] = xr - alpha*accIm
				dst.Im[idx] = xi + alpha*accRe
			case CombineRHS:
				dst.Re[idx] = xr + alpha*accIm
				dst.Im[idx] = xi - alpha*accRe
			case CombineResidual:
				dst.Re[idx] = b.Re[idx] - (xr - alpha*accIm)
				dst.Im[idx] = b.Im[idx] - (xi + alpha*accRe)
			}
		}
	})
}
