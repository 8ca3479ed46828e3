// File: errors.go — sentinel errors for the builder package.
//
// Only package-level sentinel variables are exposed; callers branch with
// errors.Is. Sentinels are never wrapped with formatted strings at the
// definition site — constructors attach context via fmt.Errorf("%w", ...).
package builder

import "errors"

// ErrTooFewVertices: a size parameter (n, rows, cols, degree) is below the
// constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability: a probability value falls outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource: a stochastic constructor requires a non-nil *rand.Rand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed: construction could not complete without violating an
// invariant (e.g. a nil constructor was passed to BuildGraph).
var ErrConstructFailed = errors.New("builder: construction failed")
