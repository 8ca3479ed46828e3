// Package core defines the Graph, Vertex, and Edge primitives shared across
// this module: the bipartite flow networks used to compute matching numbers
// for the symmetrization graph, and the general-purpose fixtures used by
// tests to synthesize structure and NOE topologies.
//
// A Graph supports directed or undirected edges, optional weights, optional
// self-loops and optional parallel edges, selected via GraphOption at
// construction time. Two independent sync.RWMutex values guard vertex state
// (muVert) and edge/adjacency state (muEdgeAdj) so concurrent readers never
// block on each other.
//
// Iteration order is never left to map order: Vertices(), Edges() and
// NeighborIDs() all return values sorted by ID so higher layers (matching,
// CNF emission) stay deterministic across runs.
package core
