package bicgstab

import "github.com/katalvlaran/qevolve/kernel"

// SetShadowHook exposes the internal shadow-residual hook so tests can
// force degenerate Krylov starts (e.g. r̂ ⊥ r₀) deterministically.
func SetShadowHook[T kernel.Real](w *Workspace[T], hook func(rhat kernel.Vector[T])) {
	w.shadowHook = hook
}
