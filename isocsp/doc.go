// Package isocsp builds the isomorphism constraint-satisfaction formula
// over a resolved signature graph: given which pairs of signatures are
// known to be structurally linked (from a resolved symmetrization graph's
// 2-node components, plus geminal pairs), it encodes which joint
// signature-to-methyl assignments keep every linked pair close enough in
// structure.
//
// Build shares its CNF/variable plumbing with clustercsp (same cnf
// package, same Asg variable family) but is otherwise independent: it
// consumes a signature graph rather than a symmetrization graph, and
// optionally emits edg variables with recorded structural costs for a
// downstream weighted sampler.
package isocsp
