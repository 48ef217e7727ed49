// Package cayley: sentinel errors.
//
// Error policy: sentinels only, branched on with errors.Is; call sites
// attach method context via %w wrapping. Everything here is a
// configuration error — a caller bug — and therefore fatal; numerical
// trouble inside a solve never surfaces as an error.
package cayley

import "errors"

// ErrNotInitialized indicates UploadHamiltonian or EvolveUnitary was
// called before Initialize.
var ErrNotInitialized = errors.New("cayley: engine not initialized")

// ErrNoHamiltonian indicates EvolveUnitary was called before any
// successful UploadHamiltonian.
var ErrNoHamiltonian = errors.New("cayley: no hamiltonian uploaded")

// ErrDimensionMismatch indicates array lengths that disagree with the
// dimensions fixed by Initialize.
var ErrDimensionMismatch = errors.New("cayley: dimension mismatch")

// ErrBadDimensions indicates Initialize was called with a non-positive
// node count, gauge dimension, or negative nnz.
var ErrBadDimensions = errors.New("cayley: invalid dimensions")

// ErrPrecisionUnavailable indicates the requested precision is unknown or
// unsupported by the dispatch backend. Detected at construction time.
var ErrPrecisionUnavailable = errors.New("cayley: precision unavailable")
