package kernel_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/qevolve/kernel"
)

// randVector fills a complex vector with reproducible values in [-1,1).
func randVector(rng *rand.Rand, n int) kernel.Vector[float64] {
	v := kernel.NewVector[float64](n)
	for i := 0; i < n; i++ {
		v.Re[i] = 2*rng.Float64() - 1
		v.Im[i] = 2*rng.Float64() - 1
	}

	return v
}

// asComplex lifts one element into a complex128 for serial references.
func asComplex(v kernel.Vector[float64], i int) complex128 {
	return complex(v.Re[i], v.Im[i])
}

// TestCopy_Exact verifies elementwise copy across both components.
func TestCopy_Exact(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := kernel.NewPool(kernel.WithWorkers(3))
	src := randVector(rng, 101)
	dst := kernel.NewVector[float64](101)

	kernel.Copy(p, dst, src)

	assert.Equal(t, src.Re, dst.Re)
	assert.Equal(t, src.Im, dst.Im)
}

// TestAxpy_MatchesSerialReference checks dst = x + a·y against a plain
// complex128 loop, including a genuinely complex scalar.
func TestAxpy_MatchesSerialReference(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	p := kernel.NewPool(kernel.WithWorkers(4))
	const n = 257
	x, y := randVector(rng, n), randVector(rng, n)
	dst := kernel.NewVector[float64](n)
	a := complex(0.3, -1.7)

	kernel.Axpy(p, dst, x, y, kernel.ToScalar[float64](a))

	for i := 0; i < n; i++ {
		want := asComplex(x, i) + a*asComplex(y, i)
		assert.True(t, scalar.EqualWithinAbs(real(want), dst.Re[i], 1e-14), "re at %d", i)
		assert.True(t, scalar.EqualWithinAbs(imag(want), dst.Im[i], 1e-14), "im at %d", i)
	}
}

// TestAxpy_AliasedDst covers the solver's p-update pattern where dst
// aliases y: dst must read y[i] before writing it.
func TestAxpy_AliasedDst(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	p := kernel.NewPool(kernel.WithWorkers(2))
	const n = 64
	x, y := randVector(rng, n), randVector(rng, n)
	yRef := kernel.NewVector[float64](n)
	kernel.Copy(p, yRef, y)
	a := complex(1.25, 0.5)

	kernel.Axpy(p, y, x, y, kernel.ToScalar[float64](a)) // y = x + a·y

	for i := 0; i < n; i++ {
		want := asComplex(x, i) + a*asComplex(yRef, i)
		assert.True(t, scalar.EqualWithinAbs(real(want), y.Re[i], 1e-14))
		assert.True(t, scalar.EqualWithinAbs(imag(want), y.Im[i], 1e-14))
	}
}

// TestAxpyInPlace_MatchesSerialReference checks x += a·y.
func TestAxpyInPlace_MatchesSerialReference(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	p := kernel.NewPool(kernel.WithWorkers(5))
	const n = 100
	x, y := randVector(rng, n), randVector(rng, n)
	xRef := kernel.NewVector[float64](n)
	kernel.Copy(p, xRef, x)
	a := complex(-0.75, 2.0)

	kernel.AxpyInPlace(p, x, y, kernel.ToScalar[float64](a))

	for i := 0; i < n; i++ {
		want := asComplex(xRef, i) + a*asComplex(y, i)
		assert.True(t, scalar.EqualWithinAbs(real(want), x.Re[i], 1e-14))
		assert.True(t, scalar.EqualWithinAbs(imag(want), x.Im[i], 1e-14))
	}
}

// TestScalar_Mul pins the complex product formula (ac−bd, ad+bc).
func TestScalar_Mul(t *testing.T) {
	a := kernel.Scalar[float64]{Re: 2, Im: 3}
	b := kernel.Scalar[float64]{Re: 5, Im: -1}
	got := a.Mul(b)
	assert.Equal(t, kernel.Scalar[float64]{Re: 13, Im: 13}, got)
}
