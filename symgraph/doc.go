// Package symgraph implements the symmetrization graph: a graph over NOE
// peaks in which an edge marks two NOEs as potentially the reciprocal
// halves of the same spatial contact. Each edge carries a tri-state
// dead/active flag — dead edges are ruled out permanently, active edges
// are believed genuine, and the rest remain undecided pending reduction.
//
// LivingGraph, ActiveGraph, and InactiveGraph derive filtered topology
// views (View) from that state; SetActivityLevel auto-activates small
// enough living components; Bipartition and MaxMatching support the
// maximum-cardinality-matching precondition the clustering CSP's
// activation constraints rely on, built on flow.EdmondsKarp.
package symgraph
