// Package reducer implements the symmetrization-graph reducer: it uses
// the clustering CSP as a satisfiability oracle to find symmetrization
// edges that can never be part of a correct NOE pairing, and kills them,
// which may in turn surface new small network components ready for
// direct clustering.
//
// Grounded on symmetrize.py's reduce_symmetrization_graph, test_component,
// and max_matchings: smallest-component-first iteration, brute-force
// max-cardinality matching enumeration per component, SAT-gated edge
// survival, and a restart whenever killing edges creates new active
// edges. CleanComponents is a final per-edge activation check with no
// direct source equivalent, built from the reducer's own completion
// pseudocode.
package reducer
