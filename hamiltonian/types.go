// Package hamiltonian: core domain types.
// This file intentionally contains ONLY the data-facing types; errors live
// in errors.go, validation in validators.go and constructors in builder.go
// per the package-layout conventions used across the module.
package hamiltonian

// Real enumerates the scalar precisions the engine supports. The whole
// kernel/solver stack is generic over Real; single precision exists for
// throughput, double precision for long-horizon phase coherence.
type Real interface {
	~float32 | ~float64
}

// Edge is one undirected weighted edge used by FromEdges. U and V are node
// indices in [0, nodeCount); self-loops are rejected because the diagonal
// is owned by the potential and the Laplacian degree term.
type Edge[T Real] struct {
	U, V   int
	Weight T
}

// pairKey is an ordered pair {min,max} used to detect duplicate undirected
// edges during ingestion. Using ints keeps the key compact and
// hash-friendly; built in O(1), used in O(E) scans.
type pairKey struct {
	u int // min endpoint
	v int // max endpoint
}

// CSR is a symmetric graph Laplacian plus diagonal potential in Compressed
// Sparse Row form, together with the gauge dimension that fixes how node
// rows map onto flattened state indices.
//
// Layout invariants (checked by Validate):
//   - len(RowOffsets) == NodeCount()+1, non-decreasing, within [0, NNZ()]
//   - len(ColumnIndices) == len(EdgeWeights) == NNZ()
//   - every column index in [0, NodeCount())
//   - off-diagonal weights symmetric: weight(u,v) == weight(v,u)
//
// A CSR is read-only during a solve; the engine copies caller arrays on
// upload and never aliases them.
type CSR[T Real] struct {
	RowOffsets        []int // len nodeCount+1
	ColumnIndices     []int // len nnz
	EdgeWeights       []T   // len nnz, off-diagonal Laplacian weights
	DiagonalPotential []T   // len nodeCount
	GaugeDim          int   // internal components per node, ≥ 1
}

// NodeCount returns the number of graph nodes.
// Complexity: O(1).
func (h *CSR[T]) NodeCount() int { return len(h.DiagonalPotential) }

// NNZ returns the number of stored off-diagonal entries.
// Complexity: O(1).
func (h *CSR[T]) NNZ() int { return len(h.EdgeWeights) }

// Dim returns the flattened state dimension nodeCount × gaugeDim.
// Complexity: O(1).
func (h *CSR[T]) Dim() int { return h.NodeCount() * h.GaugeDim }

// Clone returns a deep copy of h, independent of the original.
// Complexity: O(nodeCount + nnz).
func (h *CSR[T]) Clone() *CSR[T] {
	c := &CSR[T]{
		RowOffsets:        make([]int, len(h.RowOffsets)),
		ColumnIndices:     make([]int, len(h.ColumnIndices)),
		EdgeWeights:       make([]T, len(h.EdgeWeights)),
		DiagonalPotential: make([]T, len(h.DiagonalPotential)),
		GaugeDim:          h.GaugeDim,
	}
	copy(c.RowOffsets, h.RowOffsets)
	copy(c.ColumnIndices, h.ColumnIndices)
	copy(c.EdgeWeights, h.EdgeWeights)
	copy(c.DiagonalPotential, h.DiagonalPotential)

	return c
}
