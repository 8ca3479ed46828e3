// Package flow computes maximum flow on a *core.Graph via Edmonds-Karp
// (BFS shortest augmenting paths).
//
// This is the engine behind the bipartite maximum-cardinality matching
// reduction used to check König's-theorem preconditions and enumerate
// matchings elsewhere in this module: unit-capacity arcs source -> left
// vertex, left -> right for every compatible pair, right -> sink, max
// flow equals maximum matching size.
//
// # API
//
//	func EdmondsKarp(
//	    ctx context.Context,
//	    g *core.Graph,
//	    source, sink string,
//	    opts FlowOptions,
//	) (maxFlow int64, residual *core.Graph, err error)
//
// Use DefaultOptions() for production-safe defaults (no epsilon
// filtering, no verbose logging):
//
//	opts := flow.DefaultOptions()
//
// The returned residual graph preserves g's configuration flags
// (directedness, weighting, loops, multi-edges) via CloneEmpty, and its
// edges reflect remaining forward capacity plus reverse arcs created
// while augmenting.
//
// # Errors
//
//	ErrSourceNotFound - source vertex missing from g.
//	ErrSinkNotFound   - sink vertex missing from g.
//	EdgeError         - a negative capacity was encountered.
//	context.Canceled / context.DeadlineExceeded - ctx was cancelled mid-search.
//
// Complexity: O(V * E^2) worst case, O(V + E) memory for the capacity
// map and BFS queue.
package flow
