// File: variable.go — the closed set of CNF variable meanings.
package cnf

import "github.com/nmrassign/methylcsp/model"

// Variable tags a CNF variable with what it actually means, so a satisfying
// assignment can be read back as domain facts instead of bare integers.
// The set of implementations is closed to the five kinds the resolver's
// formulas emit; isVariable is unexported so no other package can add one.
type Variable interface {
	isVariable()
}

// Asg is the proposition "signature is assigned to methyl".
type Asg struct {
	Signature *model.Signature
	Methyl    *model.Methyl
}

func (Asg) isVariable() {}

// Cst is the proposition "noe is clustered against signature".
type Cst struct {
	NOE       *model.NOE
	Signature *model.Signature
}

func (Cst) isVariable() {}

// Act is the proposition "the edge between these two NOEs is active",
// i.e. the reciprocal pair (A, B) is truly the same spatial contact.
type Act struct {
	A, B *model.NOE
}

func (Act) isVariable() {}

// Cmd is a commander variable introduced by the at-most-one encoding; it
// carries no domain meaning of its own.
type Cmd struct{}

func (Cmd) isVariable() {}

// Edg is the proposition "there is an edge between these two methyls in
// the candidate structural-assignment graph", used by the isomorphism CSP
// to drive weighted sampling over edge inclusion.
type Edg struct {
	A, B *model.Methyl
}

func (Edg) isVariable() {}
