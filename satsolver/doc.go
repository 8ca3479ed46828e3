// Package satsolver wraps the two blackbox backends the resolver's CSPs
// are ultimately solved by: an exact SAT solver (Solve) and a weighted
// model sampler (Sample), both invoked as subprocesses over DIMACS CNF.
//
// Both functions are context.Context-governed, following the same
// blocking-operation convention as flow.EdmondsKarp: Solve enforces a
// hard 15-second budget internally, Sample honors whatever deadline the
// caller's context carries. Neither keeps any state between calls; every
// invocation gets its own formula snapshot and, for Sample, its own
// uniquely-named temporary files.
package satsolver
