// Package hamiltonian defines the sparse operator data model used by the
// qevolve evolution engine: a symmetric graph Laplacian stored in CSR form
// plus a real diagonal potential, with several internal ("gauge")
// components per graph node.
//
// 🚀 What lives here?
//
//	 A modern, allocation-conscious data layer that brings together:
//		• CSR[T] — row offsets, column indices, edge weights, potential
//		• Strict validators: offset monotonicity, index bounds, symmetry
//		• Deterministic topology builders: Cycle, Path, Complete,
//		  DisconnectedPairs, RandomSymmetric, and the canonical FromEdges
//
// The operator applied downstream is
//
//	(H·x)[node,comp] = potential[node]·x[node,comp]
//	                 + degree(node)·x[node,comp]
//	                 − Σ weight(node,nb)·x[nb,comp]
//
// identical across all gauge components of a fixed node. Exact unitarity
// of the Cayley step rests on H being real symmetric; the validators here
// exist so that violation is caught at upload time, not as silent norm
// drift a million steps later.
//
// Builders follow a strict error policy: sentinel errors only, branched on
// with errors.Is; stochastic constructors require an explicit non-nil
// *rand.Rand so results stay reproducible.
//
// See kernel/ for the parallel operator-apply kernels and cayley/ for the
// evolution engine that consumes this package.
package hamiltonian
