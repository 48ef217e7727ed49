// Package hamiltonian: deterministic topology constructors.
//
// All constructors funnel through FromEdges, the single canonical CSR
// ingestion path: it mirrors each undirected edge into both rows, sorts
// columns within a row for stable iteration order, and rejects self-loops
// and duplicates. Constructors validate their parameters first and wrap
// sentinels with the constructor name for context.
package hamiltonian

import (
	"fmt"
	"math/rand"
	"sort"
)

// Constructor name constants used to prefix errors with context.
const (
	methodFromEdges         = "FromEdges"
	methodCycle             = "Cycle"
	methodPath              = "Path"
	methodComplete          = "Complete"
	methodDisconnectedPairs = "DisconnectedPairs"
	methodRandomSymmetric   = "RandomSymmetric"
)

// Minimum node counts per topology.
const (
	minCycleNodes = 3 // a 2-cycle would be a duplicate edge
	minPathNodes  = 2
)

// builderErrorf wraps err with the constructor name, preserving the
// sentinel for errors.Is.
func builderErrorf(method string, err error) error {
	return fmt.Errorf("hamiltonian.%s: %w", method, err)
}

// FromEdges builds a symmetric CSR Hamiltonian from an undirected edge
// list and a per-node diagonal potential. A nil potential means zero
// potential everywhere.
//
// Implementation:
//   - Stage 1: validate parameters, endpoints, loop/duplicate policy.
//   - Stage 2: count per-row entries (each edge lands in two rows),
//     prefix-sum into RowOffsets.
//   - Stage 3: scatter entries, then sort each row by column index so the
//     layout is deterministic regardless of input order.
//
// Errors: ErrTooFewNodes, ErrBadGaugeDim, ErrVertexRange, ErrSelfLoop,
// ErrDuplicateEdge, ErrLengthMismatch.
// Complexity: O(V + E·log deg) time, O(V + E) space.
func FromEdges[T Real](nodeCount, gaugeDim int, edges []Edge[T], potential []T) (*CSR[T], error) {
	if nodeCount < 1 {
		return nil, builderErrorf(methodFromEdges, ErrTooFewNodes)
	}
	if gaugeDim < 1 {
		return nil, builderErrorf(methodFromEdges, ErrBadGaugeDim)
	}
	if potential != nil && len(potential) != nodeCount {
		return nil, builderErrorf(methodFromEdges, ErrLengthMismatch)
	}

	// Duplicate detection under the normalized {min,max} key.
	seen := make(map[pairKey]struct{}, len(edges))
	counts := make([]int, nodeCount+1)
	for _, e := range edges {
		if e.U < 0 || e.U >= nodeCount || e.V < 0 || e.V >= nodeCount {
			return nil, builderErrorf(methodFromEdges, ErrVertexRange)
		}
		if e.U == e.V {
			return nil, builderErrorf(methodFromEdges, ErrSelfLoop)
		}
		k := pairKey{u: min(e.U, e.V), v: max(e.U, e.V)}
		if _, dup := seen[k]; dup {
			return nil, builderErrorf(methodFromEdges, ErrDuplicateEdge)
		}
		seen[k] = struct{}{}
		counts[e.U+1]++
		counts[e.V+1]++
	}

	// Prefix-sum row counts into offsets.
	for i := 1; i <= nodeCount; i++ {
		counts[i] += counts[i-1]
	}
	h := &CSR[T]{
		RowOffsets:        counts,
		ColumnIndices:     make([]int, counts[nodeCount]),
		EdgeWeights:       make([]T, counts[nodeCount]),
		DiagonalPotential: make([]T, nodeCount),
		GaugeDim:          gaugeDim,
	}
	if potential != nil {
		copy(h.DiagonalPotential, potential)
	}

	// Scatter mirrored entries using a per-row cursor.
	cursor := make([]int, nodeCount)
	put := func(u, v int, w T) {
		at := h.RowOffsets[u] + cursor[u]
		h.ColumnIndices[at] = v
		h.EdgeWeights[at] = w
		cursor[u]++
	}
	for _, e := range edges {
		put(e.U, e.V, e.Weight)
		put(e.V, e.U, e.Weight)
	}

	// Deterministic column order within each row.
	for u := 0; u < nodeCount; u++ {
		lo, hi := h.RowOffsets[u], h.RowOffsets[u+1]
		row := rowView[T]{cols: h.ColumnIndices[lo:hi], weights: h.EdgeWeights[lo:hi]}
		sort.Sort(row)
	}

	return h, nil
}

// rowView sorts one CSR row's (column, weight) pairs in lockstep.
type rowView[T Real] struct {
	cols    []int
	weights []T
}

func (r rowView[T]) Len() int           { return len(r.cols) }
func (r rowView[T]) Less(i, j int) bool { return r.cols[i] < r.cols[j] }
func (r rowView[T]) Swap(i, j int) {
	r.cols[i], r.cols[j] = r.cols[j], r.cols[i]
	r.weights[i], r.weights[j] = r.weights[j], r.weights[i]
}

// Cycle builds an n-node ring 0—1—…—(n-1)—0 with uniform edge weight and
// zero potential. Requires n ≥ 3.
// Complexity: O(n).
func Cycle[T Real](n, gaugeDim int, weight T) (*CSR[T], error) {
	if n < minCycleNodes {
		return nil, builderErrorf(methodCycle, ErrTooFewNodes)
	}
	edges := make([]Edge[T], n)
	for i := 0; i < n; i++ {
		edges[i] = Edge[T]{U: i, V: (i + 1) % n, Weight: weight}
	}
	h, err := FromEdges(n, gaugeDim, edges, nil)
	if err != nil {
		return nil, builderErrorf(methodCycle, err)
	}

	return h, nil
}

// Path builds an n-node chain 0—1—…—(n-1) with uniform edge weight and
// zero potential. Requires n ≥ 2.
// Complexity: O(n).
func Path[T Real](n, gaugeDim int, weight T) (*CSR[T], error) {
	if n < minPathNodes {
		return nil, builderErrorf(methodPath, ErrTooFewNodes)
	}
	edges := make([]Edge[T], n-1)
	for i := 0; i < n-1; i++ {
		edges[i] = Edge[T]{U: i, V: i + 1, Weight: weight}
	}
	h, err := FromEdges(n, gaugeDim, edges, nil)
	if err != nil {
		return nil, builderErrorf(methodPath, err)
	}

	return h, nil
}

// Complete builds the complete graph K_n with uniform edge weight and zero
// potential. Requires n ≥ 2.
// Complexity: O(n²).
func Complete[T Real](n, gaugeDim int, weight T) (*CSR[T], error) {
	if n < minPathNodes {
		return nil, builderErrorf(methodComplete, ErrTooFewNodes)
	}
	edges := make([]Edge[T], 0, n*(n-1)/2)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			edges = append(edges, Edge[T]{U: u, V: v, Weight: weight})
		}
	}
	h, err := FromEdges(n, gaugeDim, edges, nil)
	if err != nil {
		return nil, builderErrorf(methodComplete, err)
	}

	return h, nil
}

// DisconnectedPairs builds `pairs` independent two-node components
// (2k,2k+1) sharing one edge weight, each pair carrying its own potential
// value on both nodes. Useful for isolation tests: a converged step must
// never leak amplitude between components.
//
// potentials must have length pairs (nil ⇒ all zero). Requires pairs ≥ 1.
// Complexity: O(pairs).
func DisconnectedPairs[T Real](pairs, gaugeDim int, weight T, potentials []T) (*CSR[T], error) {
	if pairs < 1 {
		return nil, builderErrorf(methodDisconnectedPairs, ErrTooFewNodes)
	}
	if potentials != nil && len(potentials) != pairs {
		return nil, builderErrorf(methodDisconnectedPairs, ErrLengthMismatch)
	}
	n := 2 * pairs
	edges := make([]Edge[T], pairs)
	pot := make([]T, n)
	for k := 0; k < pairs; k++ {
		edges[k] = Edge[T]{U: 2 * k, V: 2*k + 1, Weight: weight}
		if potentials != nil {
			pot[2*k] = potentials[k]
			pot[2*k+1] = potentials[k]
		}
	}
	h, err := FromEdges(n, gaugeDim, edges, pot)
	if err != nil {
		return nil, builderErrorf(methodDisconnectedPairs, err)
	}

	return h, nil
}

// RandomSymmetric builds an Erdős–Rényi style graph on n nodes: each pair
// {u,v} gets an edge with probability p and a weight drawn uniformly from
// [0,1). Zero potential. The rand source is mandatory — reproducibility
// is non-negotiable for numerical regression tests.
//
// Errors: ErrTooFewNodes, ErrBadProbability, ErrNeedRandSource.
// Complexity: O(n²).
func RandomSymmetric[T Real](n, gaugeDim int, p float64, rng *rand.Rand) (*CSR[T], error) {
	if n < minPathNodes {
		return nil, builderErrorf(methodRandomSymmetric, ErrTooFewNodes)
	}
	if p < 0 || p > 1 {
		return nil, builderErrorf(methodRandomSymmetric, ErrBadProbability)
	}
	if rng == nil {
		return nil, builderErrorf(methodRandomSymmetric, ErrNeedRandSource)
	}
	var edges []Edge[T]
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if rng.Float64() < p {
				edges = append(edges, Edge[T]{U: u, V: v, Weight: T(rng.Float64())})
			}
		}
	}
	h, err := FromEdges(n, gaugeDim, edges, nil)
	if err != nil {
		return nil, builderErrorf(methodRandomSymmetric, err)
	}

	return h, nil
}
