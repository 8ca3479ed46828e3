// Package builder provides deterministic graph-topology constructors used to
// assemble fixture and scaffolding graphs (symmetrization rings, test
// lattices) on top of core.Graph, plus the functional-options configuration
// shared across them.
//
// Constructors:
//   - Cycle, Star, Complete: fixed deterministic topologies.
//   - RandomSparse: Erdos-Renyi-style sampling, seeded via WithSeed/WithRand.
//
// Vertex-ID schemes (IDFn): DefaultIDFn, SymbolIDFn, ExcelColumnIDFn,
// AlphanumericIDFn, HexIDFn.
//
// Edge-weight distributions (WeightFn): DefaultWeightFn, ConstantWeightFn,
// UniformWeightFn, NormalWeightFn, ExponentialWeightFn.
//
// Guarantee: the same constructors, options, and seed always reproduce the
// same graph.
package builder
