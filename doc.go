// Package qevolve is an exactly-unitary time-evolution engine for
// complex wavefunctions living on large weighted graphs — a gauge field
// with several internal components per node.
//
// 🚀 What is qevolve?
//
//	A pure-Go numerical core that advances a state ψ by the Cayley
//	transform U = (I − iαH)(I + iαH)⁻¹ of a graph Hamiltonian H, so
//	that norm and phase are conserved over very long trajectories
//	without ever renormalizing:
//		• hamiltonian/ — CSR graph Laplacian + diagonal potential,
//		  validators and deterministic topology builders
//		• kernel/     — generic complex vectors, a goroutine dispatch
//		  pool, fused I ± iαH apply kernels, parallel reductions
//		• bicgstab/   — a from-scratch complex BiCGStab with breakdown
//		  detection and reusable working sets
//		• cayley/     — the orchestration engine: Initialize, upload,
//		  one sparse complex solve per timestep
//
// ✨ Why choose qevolve?
//
//   - Exact unitarity — a converged step preserves ‖ψ‖ by construction
//   - Robust by policy — breakdown and non-convergence degrade one step,
//     they never halt a million-step simulation
//   - Dual precision — one generic implementation over float32/float64,
//     tolerances matched to the precision
//   - Embarrassingly parallel — every kernel is one wide parallel map,
//     every reduction two cheap levels
//
// Quick ASCII example — a 4-cycle gauge graph:
//
//	    0───1
//	    │   │
//	    3───2
//
//	ψ lives on the nodes; H couples neighbors along the edges.
//
// Dive into cayley/doc.go for the full usage walkthrough.
//
//	go get github.com/katalvlaran/qevolve
package qevolve
