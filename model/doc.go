// Package model defines the resolver's core domain types: methyl groups and
// their geminal pairing, HMQC signatures and their candidate methyl
// domains, NOE peaks and the symmetry/clustering relationships between
// them, and the structure's pairwise-distance graph.
//
// Nothing in this package parses input or builds CSPs; see ingest for
// construction from raw rows and clustercsp/isocsp for the formulas built
// on top of these types.
package model
