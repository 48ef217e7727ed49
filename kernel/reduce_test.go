package kernel_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/qevolve/kernel"
)

// TestNormSq_MatchesSerial compares the two-level reduction against a
// plain serial sum across several pool widths and odd sizes.
func TestNormSq_MatchesSerial(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	for _, workers := range []int{1, 3, 8} {
		p := kernel.NewPool(kernel.WithWorkers(workers))
		for _, n := range []int{1, 2, 63, 64, 1001} {
			v := randVector(rng, n)
			var want float64
			for i := 0; i < n; i++ {
				want += v.Re[i]*v.Re[i] + v.Im[i]*v.Im[i]
			}

			partial := make([]float64, p.Groups(n))
			got := kernel.NormSq(p, v, partial)
			assert.True(t, scalar.EqualWithinAbs(want, got, 1e-12),
				"workers=%d n=%d: want %v got %v", workers, n, want, got)
		}
	}
}

// TestDot_MatchesSerial compares ⟨a,b⟩ = Σ conj(a_i)·b_i against the
// complex128 reference.
func TestDot_MatchesSerial(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, workers := range []int{1, 4, 9} {
		p := kernel.NewPool(kernel.WithWorkers(workers))
		for _, n := range []int{1, 37, 512} {
			a, b := randVector(rng, n), randVector(rng, n)
			var want complex128
			for i := 0; i < n; i++ {
				ac := complex(a.Re[i], a.Im[i])
				bc := complex(b.Re[i], b.Im[i])
				want += complex(real(ac), -imag(ac)) * bc
			}

			pre := make([]float64, p.Groups(n))
			pim := make([]float64, p.Groups(n))
			got := kernel.Dot(p, a, b, pre, pim)
			assert.True(t, scalar.EqualWithinAbs(real(want), real(got), 1e-12))
			assert.True(t, scalar.EqualWithinAbs(imag(want), imag(got), 1e-12))
		}
	}
}

// TestDot_SelfIsNormSq pins ⟨v,v⟩ == ‖v‖² with zero imaginary part.
func TestDot_SelfIsNormSq(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	p := kernel.NewPool(kernel.WithWorkers(4))
	v := randVector(rng, 200)

	pre := make([]float64, p.Groups(200))
	pim := make([]float64, p.Groups(200))
	dot := kernel.Dot(p, v, v, pre, pim)
	norm := kernel.NormSq(p, v, pre)

	require.True(t, scalar.EqualWithinAbs(norm, real(dot), 1e-12))
	assert.True(t, scalar.EqualWithinAbs(0, imag(dot), 1e-12))
}

// TestReductions_Deterministic verifies chunk boundaries (and therefore
// rounding) are reproducible for a fixed pool size.
func TestReductions_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	p := kernel.NewPool(kernel.WithWorkers(6))
	v := randVector(rng, 997)
	partial := make([]float64, p.Groups(997))

	first := kernel.NormSq(p, v, partial)
	for run := 0; run < 5; run++ {
		assert.Equal(t, first, kernel.NormSq(p, v, partial))
	}
}
