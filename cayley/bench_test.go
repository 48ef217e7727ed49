package cayley_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/qevolve/cayley"
	"github.com/katalvlaran/qevolve/hamiltonian"
)

// benchmarkEvolve is a helper that steps a random gauge graph of n nodes
// at the given precision. It resets the timer after setup and fails on
// unexpected errors.
func benchmarkEvolve(b *testing.B, n, gaugeDim int, precision cayley.Precision) {
	rng := rand.New(rand.NewSource(99))
	h, err := hamiltonian.RandomSymmetric[float64](n, gaugeDim, 0.05, rng)
	if err != nil {
		b.Fatalf("build hamiltonian: %v", err)
	}

	eng, err := cayley.New(precision)
	if err != nil {
		b.Fatalf("new engine: %v", err)
	}
	if err = eng.Initialize(h.NodeCount(), h.GaugeDim, h.NNZ()); err != nil {
		b.Fatalf("initialize: %v", err)
	}
	if err = eng.UploadHamiltonian(h.RowOffsets, h.ColumnIndices, h.EdgeWeights, h.DiagonalPotential); err != nil {
		b.Fatalf("upload: %v", err)
	}

	dim := h.Dim()
	re := make([]float64, dim)
	im := make([]float64, dim)
	for i := 0; i < dim; i++ {
		re[i] = 2*rng.Float64() - 1
		im[i] = 2*rng.Float64() - 1
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err = eng.EvolveUnitary(re, im, 0.05); err != nil {
			b.Fatalf("evolve failed: %v", err)
		}
	}
}

// BenchmarkEvolve_DoubleSmall benchmarks double precision on a 100-node graph.
func BenchmarkEvolve_DoubleSmall(b *testing.B) {
	benchmarkEvolve(b, 100, 1, cayley.PrecisionDouble)
}

// BenchmarkEvolve_DoubleMedium benchmarks double precision on a 1000-node graph.
func BenchmarkEvolve_DoubleMedium(b *testing.B) {
	benchmarkEvolve(b, 1000, 1, cayley.PrecisionDouble)
}

// BenchmarkEvolve_DoubleGauge4 benchmarks four gauge components per node.
func BenchmarkEvolve_DoubleGauge4(b *testing.B) {
	benchmarkEvolve(b, 250, 4, cayley.PrecisionDouble)
}

// BenchmarkEvolve_SingleMedium benchmarks single precision on a 1000-node graph.
func BenchmarkEvolve_SingleMedium(b *testing.B) {
	benchmarkEvolve(b, 1000, 1, cayley.PrecisionSingle)
}
