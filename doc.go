// Package methylcsp assigns 2D NMR methyl chemical-shift peaks to methyl
// groups in a protein structure by treating the problem as a constraint
// satisfaction search over NOE-derived spatial evidence.
//
// The pipeline, subpackage by subpackage:
//
//	model/       — signatures, NOEs, structure distances, assignment state
//	ingest/      — row-level constructors for HMQC/NOE/Structure input
//	core/        — thread-safe Graph/Vertex/Edge primitives
//	algorithms/  — BFS/DFS traversal and connected-component decomposition
//	flow/        — Edmonds-Karp max flow, used for bipartite matching
//	builder/     — deterministic graph-topology fixtures for tests
//	symgraph/    — the symmetrization graph over NOE pairs
//	cnf/         — shared CNF variable allocation and clause encodings
//	clustercsp/  — the clustering CSP (vertex injection, matching, distance)
//	isocsp/      — the isomorphism CSP (structural assignment search)
//	satsolver/   — external SAT backend invocation
//	enumerator/  — randomized support enumeration over unfinished signatures
//	reducer/     — symmetrization-graph reduction via component satisfiability
//	marginal/    — marginal probability estimation via correlated sampling
//
// Every numeric graph/CSP primitive builds on core.Graph and flow, in the
// spirit of the teacher library this module grew out of: small,
// composable, thread-safe pieces wired together by the pipeline above
// rather than one monolithic solver.
package methylcsp
