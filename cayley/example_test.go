package cayley_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qevolve/cayley"
	"github.com/katalvlaran/qevolve/hamiltonian"
)

// ExampleEngine_EvolveUnitary evolves a single excitation around a
// 4-cycle gauge graph and shows that the norm survives without any
// renormalization.
func ExampleEngine_EvolveUnitary() {
	h, err := hamiltonian.Cycle[float64](4, 1, 1)
	if err != nil {
		panic(err)
	}

	eng, err := cayley.New(cayley.PrecisionDouble)
	if err != nil {
		panic(err)
	}
	if err = eng.Initialize(h.NodeCount(), h.GaugeDim, h.NNZ()); err != nil {
		panic(err)
	}
	if err = eng.UploadHamiltonian(h.RowOffsets, h.ColumnIndices, h.EdgeWeights, h.DiagonalPotential); err != nil {
		panic(err)
	}

	re := []float64{1, 0, 0, 0} // all amplitude on node 0
	im := make([]float64, 4)

	for step := 0; step < 100; step++ {
		if _, err = eng.EvolveUnitary(re, im, 0.1); err != nil {
			panic(err)
		}
	}

	var normSq float64
	for i := range re {
		normSq += re[i]*re[i] + im[i]*im[i]
	}
	fmt.Printf("norm after 100 steps: %.6f\n", math.Sqrt(normSq))
	// Output:
	// norm after 100 steps: 1.000000
}
