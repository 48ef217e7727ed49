// Package kernel implements the parallel compute primitives the BiCGStab
// solver is composed of: structure-of-arrays complex vectors over a
// generic precision, a goroutine dispatch pool, elementwise kernels
// (copy, axpy), fused operator-apply kernels for the fixed family
// I ± iαH, and two-level parallel reductions (squared norm, complex
// inner product).
//
// Scheduling model:
//
//	Every kernel call is one wide parallel map over the index range —
//	the pool splits [0,n) into one contiguous chunk per worker, and a
//	chunk's indices each have exactly one writer, so no synchronization
//	beyond the final join is needed. Reductions write one partial sum
//	per chunk; the caller finalizes by summing the small partial slice
//	serially on the host, trading a second dispatch pass for bounded
//	host work.
//
// Precision model:
//
//	Vector storage is generic over float32/float64. Partial sums and
//	all host-side scalars are float64 at either precision, so solver
//	breakdown thresholds behave identically in both variants.
//
// Kernels follow the gonum/floats convention for misuse: mismatched
// vector lengths are a programmer error surfaced by a bounds panic, not a
// returned error — the cayley engine validates dimensions exactly once at
// its boundary.
package kernel
