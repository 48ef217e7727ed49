// Package kernel: complex scalar and vector types.
package kernel

import "github.com/katalvlaran/qevolve/hamiltonian"

// Real is the precision constraint shared with the hamiltonian package.
type Real = hamiltonian.Real

// Scalar is a complex value in the working precision, passed into
// elementwise kernels. Host-side recurrences stay in complex128; a Scalar
// is only materialized at dispatch time via ToScalar.
type Scalar[T Real] struct {
	Re, Im T
}

// ToScalar narrows a host complex128 into the working precision.
func ToScalar[T Real](c complex128) Scalar[T] {
	return Scalar[T]{Re: T(real(c)), Im: T(imag(c))}
}

// Mul returns the complex product a·b: (ac−bd, ad+bc).
func (a Scalar[T]) Mul(b Scalar[T]) Scalar[T] {
	return Scalar[T]{
		Re: a.Re*b.Re - a.Im*b.Im,
		Im: a.Re*b.Im + a.Im*b.Re,
	}
}

// Vector is a dim-length complex vector in structure-of-arrays layout.
// Keeping real and imaginary parts in separate slices matches both the
// host interface (callers hand the engine split re/im arrays) and the
// access pattern of the apply kernels, which combine the two components
// with real coefficients.
type Vector[T Real] struct {
	Re, Im []T
}

// NewVector allocates a zeroed complex vector of length n.
func NewVector[T Real](n int) Vector[T] {
	return Vector[T]{Re: make([]T, n), Im: make([]T, n)}
}

// Len returns the vector length.
func (v Vector[T]) Len() int { return len(v.Re) }
