// Package bicgstab solves the complex sparse linear system
//
//	(I + iαH)·x = b
//
// with the BiConjugate Gradient Stabilized method, composed entirely from
// the parallel kernels in kernel/. It is deliberately NOT a general
// Krylov library: the only operator it ever applies is the near-identity
// Cayley family produced by the evolution engine, which is why a warm
// start at x₀ = b is valid and typical solves converge in a handful of
// iterations.
//
// Failure semantics — central to the design:
//
//	Breakdown (a near-zero inner product degenerating the Krylov
//	recurrence) and exhaustion of the iteration budget are SILENT early
//	stops, not errors. The solver always leaves its best iterate in x
//	and reports what happened through Result.Status; a long-running
//	simulation losing exact unitarity for one step beats halting it.
//
// The three terminal states (Converged, Breakdown, MaxIterations) are
// reported distinctly so callers that do care — trend monitoring on the
// iteration count, step-size tuning — can tell them apart.
//
// Host/device split: vectors and matvecs run as parallel dispatches in
// the working precision; the scalar recurrence (ρ, α, ω, β) runs on the
// host in complex128 between dispatches. Iteration i+1 cannot start
// before iteration i's scalars are known, so the loop strictly
// alternates parallel work and host work.
package bicgstab
