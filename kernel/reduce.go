// Package kernel: two-level parallel reductions.
//
// Each dispatch chunk's representative worker scans its slice serially and
// writes one partial sum; the host then sums the small partial slice
// serially. Group counts equal the pool's worker count, so the host pass
// stays trivially cheap and a second parallel reduction level is not
// worth its complexity here.
//
// Partials accumulate in float64 at either storage precision so the
// solver's breakdown thresholds keep their meaning under float32.
package kernel

// NormSq computes Σ|v_i|². partial must have length ≥ p.Groups(v.Len());
// its contents are overwritten.
// Complexity: O(n) work, one dispatch plus O(groups) host finalization.
func NormSq[T Real](p *Pool, v Vector[T], partial []float64) float64 {
	groups := p.Groups(v.Len())
	for g := 0; g < groups; g++ {
		partial[g] = 0
	}
	p.forChunks(v.Len(), func(g, lo, hi int) {
		var sum float64
		for i := lo; i < hi; i++ {
			re, im := float64(v.Re[i]), float64(v.Im[i])
			sum += re*re + im*im
		}
		partial[g] = sum
	})

	// Host-side serial finalization over the small partial array.
	var total float64
	for g := 0; g < groups; g++ {
		total += partial[g]
	}

	return total
}

// Dot computes the complex inner product ⟨a,b⟩ = Σ conj(a_i)·b_i, i.e.
// (Σ aRe·bRe + aIm·bIm, Σ aRe·bIm − aIm·bRe). partialRe and partialIm
// must each have length ≥ p.Groups(a.Len()); contents are overwritten.
// Complexity: O(n) work, one dispatch plus O(groups) host finalization.
func Dot[T Real](p *Pool, a, b Vector[T], partialRe, partialIm []float64) complex128 {
	groups := p.Groups(a.Len())
	for g := 0; g < groups; g++ {
		partialRe[g] = 0
		partialIm[g] = 0
	}
	p.forChunks(a.Len(), func(g, lo, hi int) {
		var sumRe, sumIm float64
		for i := lo; i < hi; i++ {
			ar, ai := float64(a.Re[i]), float64(a.Im[i])
			br, bi := float64(b.Re[i]), float64(b.Im[i])
			sumRe += ar*br + ai*bi
			sumIm += ar*bi - ai*br
		}
		partialRe[g] = sumRe
		partialIm[g] = sumIm
	})

	var totalRe, totalIm float64
	for g := 0; g < groups; g++ {
		totalRe += partialRe[g]
		totalIm += partialIm[g]
	}

	return complex(totalRe, totalIm)
}
