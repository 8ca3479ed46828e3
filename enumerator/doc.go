// Package enumerator computes per-signature support sets — every methyl
// a signature could still be assigned in some satisfying model — by
// repeatedly probing an already-built CNF formula with auxiliary
// "try something new" clauses and reading back whichever assignments the
// solver happened to pick.
//
// Grounded on sat.py's ClusteringCSP.enumerate: uniform-random selection
// from the unfinished signature set, one aux-clause-then-solve-then-flush
// round per iteration, support sets updated from every returned
// assignment (not only the probed signature's), and a signature locked to
// its discovered support with a permanent clause once it goes UNSAT.
package enumerator
