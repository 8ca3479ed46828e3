// File: helpers.go — small shared helpers.
package clustercsp

import "github.com/nmrassign/methylcsp/model"

// litsOf collects the variable numbers in an NOE-keyed variable table. Clause membership doesn't depend on key order, so map
// iteration order is fine here.
func litsOf(table map[*model.NOE]int) []int {
	lits := make([]int, 0, len(table))
	for _, v := range table {
		lits = append(lits, v)
	}

	return lits
}
