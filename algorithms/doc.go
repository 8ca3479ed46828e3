// Package algorithms implements graph traversals on core.Graph: BFS and
// DFS, both hookable via OnEnqueue/OnDequeue/OnVisit/OnExit callbacks and
// cancellable via context.Context.
//
// These back the connected-component analysis used to bound enumeration
// scope before symmetrization-graph reduction and clause enumeration.
package algorithms
