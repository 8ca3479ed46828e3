// File: errors.go — sentinel errors for the solver/sampler backends.
package satsolver

import "errors"

// ErrSamplerFailed is returned when the weighted sampler subprocess exits
// without producing the requested number of samples.
var ErrSamplerFailed = errors.New("satsolver: sampler did not produce the requested samples")

// ErrTimeout marks a solver run that hit its wall-clock budget. Solve
// returns it with a nil Model; callers treat it as an UNSAT result and
// can tell it apart from a genuine UNSAT with errors.Is.
var ErrTimeout = errors.New("satsolver: solver exceeded its time budget")
