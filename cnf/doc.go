// Package cnf provides shared CNF formula construction: variable
// allocation with a typed meaning sidecar (Variable), clause accumulation
// with bulk-discardable auxiliary clauses, the commander-encoded
// at-most-one/exactly-one constraints used throughout the clustering and
// isomorphism CSPs, and DIMACS serialization for handing a formula to an
// external SAT backend.
//
// Nothing here understands signatures, methyls, or NOEs beyond tagging a
// variable with one — clustercsp and isocsp build formulas out of these
// primitives; satsolver consumes the DIMACS text and reads answers back
// through VariableMeaning.
package cnf
