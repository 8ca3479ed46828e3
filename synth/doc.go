// Package synth generates synthetic NOE networks for exercising the
// symmetrization reducer and enumerator at scale, without needing real
// spectroscopic data.
//
// Grounded on builder's own documented purpose — "assemble fixture and
// scaffolding graphs... on top of core.Graph" — generalized here from
// generic topology construction to reciprocal-pair NOE networks:
// RandomNetwork samples an Erdos-Renyi-style topology with
// builder.RandomSparse and turns each sampled edge into a reciprocal NOE
// pair instead of a plain graph edge.
package synth
