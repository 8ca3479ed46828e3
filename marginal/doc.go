// Package marginal estimates, from weighted samples of an isomorphism
// CSP, how strongly correlated pairs of signature assignments are, and
// uses that to both tighten the formula with new clauses and nail down
// signatures whose assignment has become all but certain.
//
// Grounded directly on spec pseudocode for marginalize/correlate_assignments/
// gibbs_reduce — no direct Python source for this stage was retrieved.
// Sampling goes through satsolver.Sample; the final step hands the
// tightened formula to enumerator.Enumerate, the same support-set
// computation every other resolver stage ends on.
package marginal
