// File: model.go — solved models and DIMACS output parsing.
package satsolver

import (
	"regexp"
	"strconv"

	"github.com/nmrassign/methylcsp/cnf"
)

// Model is a satisfying assignment, reported as the semantic meaning of
// every positive literal rather than raw variable numbers.
type Model []cnf.Variable

// solutionPattern matches every signed integer a SAT solver prints in its
// model line, mirroring the original toolchain's permissive regex-based
// parse rather than a strict DIMACS "v ..." line scan.
var solutionPattern = regexp.MustCompile(`(-?[1-9][0-9]*)`)

// parseAssignments extracts the set of literals (positive and negative)
// appearing anywhere in a solver's stdout.
func parseAssignments(output []byte) map[int]bool {
	matches := solutionPattern.FindAllString(string(output), -1)
	seen := make(map[int]bool, len(matches))
	for _, m := range matches {
		n, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		seen[n] = true
	}

	return seen
}

// buildModel maps every positive literal in literals through f's variable
// meanings, dropping any literal the formula has no record of (the
// solver may echo values for variables the formula itself never used).
func buildModel(f *cnf.Formula, literals map[int]bool) Model {
	model := make(Model, 0, len(literals))
	for lit := range literals {
		if lit <= 0 {
			continue
		}
		if meaning, ok := f.VariableMeaning[lit]; ok {
			model = append(model, meaning)
		}
	}

	return model
}
