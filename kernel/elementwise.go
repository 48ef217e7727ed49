// Package kernel: elementwise vector kernels.
//
// All three kernels are pure parallel maps: dst[i] depends only on index i
// of the inputs, so aliasing dst with one of the inputs is legal (and the
// solver relies on it for the p-update).
package kernel

// Copy copies src into dst elementwise.
// Complexity: O(n) work, one dispatch.
func Copy[T Real](p *Pool, dst, src Vector[T]) {
	p.ParallelFor(src.Len(), func(lo, hi int) {
		copy(dst.Re[lo:hi], src.Re[lo:hi])
		copy(dst.Im[lo:hi], src.Im[lo:hi])
	})
}

// Axpy computes dst = x + a·y with a complex scalar a.
// dst may alias x or y.
// Complexity: O(n) work, one dispatch.
func Axpy[T Real](p *Pool, dst, x, y Vector[T], a Scalar[T]) {
	p.ParallelFor(x.Len(), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			yr, yi := y.Re[i], y.Im[i]
			dst.Re[i] = x.Re[i] + a.Re*yr - a.Im*yi
			dst.Im[i] = x.Im[i] + a.Re*yi + a.Im*yr
		}
	})
}

// AxpyInPlace computes x += a·y with a complex scalar a.
// Complexity: O(n) work, one dispatch.
func AxpyInPlace[T Real](p *Pool, x, y Vector[T], a Scalar[T]) {
	p.ParallelFor(x.Len(), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			yr, yi := y.Re[i], y.Im[i]
			x.Re[i] += a.Re*yr - a.Im*yi
			x.Im[i] += a.Re*yi + a.Im*yr
		}
	})
}
