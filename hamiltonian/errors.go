// Package hamiltonian: sentinel errors.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - Builders and validators attach context using %w wrapping.
//   - No panics at runtime; programmer-error panics are confined to option
//     constructors elsewhere in the module.
package hamiltonian

import "errors"

// ErrTooFewNodes indicates that a node-count parameter is smaller than the
// minimum the requested topology constructor can build.
var ErrTooFewNodes = errors.New("hamiltonian: node count too small")

// ErrBadGaugeDim indicates a gauge dimension below 1.
var ErrBadGaugeDim = errors.New("hamiltonian: gauge dimension must be >= 1")

// ErrVertexRange indicates an edge endpoint or column index outside
// [0, nodeCount).
var ErrVertexRange = errors.New("hamiltonian: vertex index out of range")

// ErrSelfLoop indicates an edge with U == V. The diagonal belongs to the
// potential and the Laplacian degree term, never to the edge list.
var ErrSelfLoop = errors.New("hamiltonian: self-loop not allowed")

// ErrDuplicateEdge indicates the same undirected pair appears twice in an
// edge list handed to FromEdges.
var ErrDuplicateEdge = errors.New("hamiltonian: duplicate edge")

// ErrLengthMismatch indicates CSR arrays whose lengths disagree with the
// declared nodeCount/nnz, or a potential slice of the wrong length.
var ErrLengthMismatch = errors.New("hamiltonian: array length mismatch")

// ErrRowOffsets indicates row offsets that are decreasing, negative, or
// outside [0, nnz].
var ErrRowOffsets = errors.New("hamiltonian: invalid row offsets")

// ErrAsymmetric indicates weight(u,v) != weight(v,u) somewhere; a
// non-Hermitian H breaks the unitarity guarantee of the Cayley step.
var ErrAsymmetric = errors.New("hamiltonian: weights not symmetric")

// ErrNonFinite indicates a NaN or ±Inf weight or potential entry.
var ErrNonFinite = errors.New("hamiltonian: non-finite value")

// ErrBadProbability indicates a probability outside the closed interval
// [0,1] passed to RandomSymmetric.
var ErrBadProbability = errors.New("hamiltonian: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor was called with a
// nil *rand.Rand. Reproducibility demands an explicit source.
var ErrNeedRandSource = errors.New("hamiltonian: rand source required")
