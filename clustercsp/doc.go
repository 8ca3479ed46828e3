// Package clustercsp builds the constraint-satisfaction formula that
// couples clustering (which candidate signature an ambiguous peak
// belongs to), activation (which edges of an active network hold), and
// assignment (which methyl a signature resolves to) into one CNF whose
// models are exactly the structurally-consistent resolutions.
//
// Build runs the teacher's fixed construction order: inject assignment
// variables first, then clustering variables, then activation
// variables, then the matching, distance, and geminal constraints that
// tie them together. Each stage only adds variables and clauses; none
// of them solve anything, leaving that to a downstream solver package.
package clustercsp
