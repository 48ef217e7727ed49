// Package bicgstab: the iterative state machine.
package bicgstab

import (
	"math"

	"github.com/katalvlaran/qevolve/hamiltonian"
	"github.com/katalvlaran/qevolve/kernel"
)

// defaultTolerance selects the per-precision residual tolerance.
func defaultTolerance[T kernel.Real]() float64 {
	var zero T
	if _, single := any(zero).(float32); single {
		return DefaultTolerance32
	}

	return DefaultTolerance64
}

// absSq returns |c|², the breakdown-guard magnitude.
func absSq(c complex128) float64 {
	return real(c)*real(c) + imag(c)*imag(c)
}

// Solve runs BiCGStab on (I + iαH)·x = b until the residual norm drops
// below tolerance, a breakdown stops the recurrence, or the iteration
// budget runs out. x is both the warm start (seeded from b — valid since
// the operator is near identity for small α) and the output; whatever the
// terminal status, the best available iterate is left in x and no error
// is ever returned.
//
// The caller guarantees b and x have length w.Dim() == h.Dim() and that
// no other solve uses w concurrently. H is read-only for the duration.
//
// Complexity per iteration: two fused matvecs (O(dim + nnz·gaugeDim)),
// a handful of O(dim) vector kernels and four reductions.
func (w *Workspace[T]) Solve(h *hamiltonian.CSR[T], alpha float64, b, x kernel.Vector[T], opts ...Option) Result {
	opt := gatherOptions(opts...)
	tol := opt.tolerance
	if tol == 0 {
		tol = defaultTolerance[T]()
	}
	alphaT := T(alpha)

	// Warm start x₀ = b, fused initial residual r₀ = b − A·x₀.
	kernel.Copy(w.pool, x, b)
	kernel.Apply(w.pool, kernel.CombineResidual, w.r, x, b, h, alphaT)
	rNorm := math.Sqrt(kernel.NormSq(w.pool, w.r, w.partialRe))
	if rNorm < tol {
		return Result{Iterations: 0, Status: StatusConverged, Residual: rNorm}
	}

	// Fixed shadow residual for the whole solve; p₀ = r₀.
	kernel.Copy(w.pool, w.rhat, w.r)
	if w.shadowHook != nil {
		w.shadowHook(w.rhat)
	}
	kernel.Copy(w.pool, w.p, w.r)

	// Host-side scalar recurrence state (complex128 at either precision).
	var rhoPrev, alphaCG, omega complex128

	for i := 0; i < opt.maxIterations; i++ {
		rho := kernel.Dot(w.pool, w.rhat, w.r, w.partialRe, w.partialIm)
		if absSq(rho) < BreakdownEpsilon {
			return Result{Iterations: i, Status: StatusBreakdown, Residual: rNorm}
		}
		if i > 0 {
			beta := (rho / rhoPrev) * (alphaCG / omega)
			// p = r + β·(p − ω·v), as two elementwise passes.
			kernel.AxpyInPlace(w.pool, w.p, w.v, kernel.ToScalar[T](-omega))
			kernel.Axpy(w.pool, w.p, w.r, w.p, kernel.ToScalar[T](beta))
		}
		rhoPrev = rho

		// v = A·p.
		kernel.Apply(w.pool, kernel.CombineSpMV, w.v, w.p, kernel.Vector[T]{}, h, alphaT)
		rv := kernel.Dot(w.pool, w.rhat, w.v, w.partialRe, w.partialIm)
		if absSq(rv) < BreakdownEpsilon {
			return Result{Iterations: i, Status: StatusBreakdown, Residual: rNorm}
		}
		alphaCG = rho / rv

		// s = r − α_cg·v.
		kernel.Axpy(w.pool, w.s, w.r, w.v, kernel.ToScalar[T](-alphaCG))
		sNorm := math.Sqrt(kernel.NormSq(w.pool, w.s, w.partialRe))
		if sNorm < tol {
			// Early exit skips the second matvec entirely.
			kernel.AxpyInPlace(w.pool, x, w.p, kernel.ToScalar[T](alphaCG))

			return Result{Iterations: i + 1, Status: StatusConverged, Residual: sNorm}
		}

		// t = A·s.
		kernel.Apply(w.pool, kernel.CombineSpMV, w.t, w.s, kernel.Vector[T]{}, h, alphaT)
		ts := kernel.Dot(w.pool, w.t, w.s, w.partialRe, w.partialIm)
		tt := kernel.Dot(w.pool, w.t, w.t, w.partialRe, w.partialIm)
		if absSq(tt) < BreakdownEpsilon {
			return Result{Iterations: i, Status: StatusBreakdown, Residual: sNorm}
		}
		omega = ts / tt

		// x += α_cg·p + ω·s; r = s − ω·t.
		kernel.AxpyInPlace(w.pool, x, w.p, kernel.ToScalar[T](alphaCG))
		kernel.AxpyInPlace(w.pool, x, w.s, kernel.ToScalar[T](omega))
		kernel.Axpy(w.pool, w.r, w.s, w.t, kernel.ToScalar[T](-omega))

		rNorm = math.Sqrt(kernel.NormSq(w.pool, w.r, w.partialRe))
		if rNorm < tol {
			return Result{Iterations: i + 1, Status: StatusConverged, Residual: rNorm}
		}
		if absSq(omega) < BreakdownEpsilon {
			return Result{Iterations: i, Status: StatusBreakdown, Residual: rNorm}
		}
	}

	return Result{Iterations: opt.maxIterations, Status: StatusMaxIterations, Residual: rNorm}
}
