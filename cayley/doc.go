// Package cayley evolves a complex wavefunction on a weighted graph by
// one exactly-unitary timestep per call, using the Cayley transform
//
//	U = (I − iαH)·(I + iαH)⁻¹,  α = dt/2,
//
// which is exactly unitary for Hermitian H: on convergence the new state
// satisfies (I+iαH)·ψ' = (I−iαH)·ψ within tolerance, so ‖ψ'‖ ≈ ‖ψ‖ with
// no explicit renormalization — the property the surrounding physics
// model depends on over very long trajectories.
//
// Each EvolveUnitary call is therefore one sparse complex linear solve,
// delegated to bicgstab/ over the kernel/ dispatch pool.
//
// ⚙️ Usage:
//
//	eng, err := cayley.New(cayley.PrecisionDouble)
//	if err != nil { … }
//	if err := eng.Initialize(nodeCount, gaugeDim, nnz); err != nil { … }
//	if err := eng.UploadHamiltonian(rowOffsets, cols, weights, potential); err != nil { … }
//
//	for step := 0; step < steps; step++ {
//		report, err := eng.EvolveUnitary(stateRe, stateIm, dt)
//		if err != nil { … } // caller bug: wrong lengths / not initialized
//		_ = report.Iterations // sole per-step health signal
//	}
//
// Error taxonomy:
//   - Configuration errors (calls before Initialize, dimension mismatch,
//     invalid CSR data) are fatal and returned as sentinel errors.
//   - Solver breakdown and non-convergence are NOT errors: the state is
//     still updated with the best iterate and the outcome is visible on
//     Report.Status. Losing exact unitarity for one step is preferable
//     to halting a long-running simulation.
//   - An unsupported precision is rejected at construction, never
//     mid-solve.
//
// The engine owns every working buffer; callers own the host state and
// Hamiltonian arrays, which are copied in and never aliased. One engine
// serves one simulation loop — methods are not safe for concurrent use.
package cayley
