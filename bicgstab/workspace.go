// Package bicgstab: the reusable working set.
package bicgstab

import (
	"github.com/katalvlaran/qevolve/kernel"
)

// Workspace is the fixed group of dim-length complex vectors one solve
// mutates — residual r, shadow residual r̂ (fixed for the whole solve),
// search direction p, v = A·p, s = r − α·v, t = A·s — plus the two small
// per-group reduction scratch slices.
//
// A Workspace is allocated once per dimension and reused across all
// subsequent timesteps; the engine reallocates only when dimensions
// change. It must not be used by more than one concurrent solve.
type Workspace[T kernel.Real] struct {
	pool *kernel.Pool
	dim  int

	r, rhat, p, v, s, t kernel.Vector[T]

	partialRe, partialIm []float64

	// shadowHook, when non-nil, may perturb r̂ after it is seeded from r₀.
	// Test-only: lets breakdown paths be exercised deterministically.
	shadowHook func(rhat kernel.Vector[T])
}

// NewWorkspace allocates a working set for dim-length systems dispatched
// over pool.
// Complexity: O(dim) allocation, done once per dimension change.
func NewWorkspace[T kernel.Real](pool *kernel.Pool, dim int) *Workspace[T] {
	groups := pool.Groups(dim)

	return &Workspace[T]{
		pool:      pool,
		dim:       dim,
		r:         kernel.NewVector[T](dim),
		rhat:      kernel.NewVector[T](dim),
		p:         kernel.NewVector[T](dim),
		v:         kernel.NewVector[T](dim),
		s:         kernel.NewVector[T](dim),
		t:         kernel.NewVector[T](dim),
		partialRe: make([]float64, groups),
		partialIm: make([]float64, groups),
	}
}

// Dim returns the system dimension this workspace was sized for.
func (w *Workspace[T]) Dim() int { return w.dim }
