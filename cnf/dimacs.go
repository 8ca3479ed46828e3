// File: dimacs.go — DIMACS CNF serialization.
package cnf

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders f in DIMACS CNF format: a "p cnf <nvars> <nclauses>"
// header followed by one "lit lit ... 0" line per clause, base clauses
// first, then any still-pending aux clauses.
func (f *Formula) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "p cnf %d %d", f.NVars, f.NClauses)

	for _, c := range f.BaseClauses {
		b.WriteByte('\n')
		writeClause(&b, c)
	}
	for _, c := range f.AuxClauses {
		b.WriteByte('\n')
		writeClause(&b, c)
	}

	return b.String()
}

func writeClause(b *strings.Builder, clause []int) {
	for _, lit := range clause {
		b.WriteString(strconv.Itoa(lit))
		b.WriteByte(' ')
	}
	b.WriteByte('0')
}
