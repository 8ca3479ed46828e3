// File: solve.go — the blackbox SAT solver backend.
package satsolver

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/nmrassign/methylcsp/cnf"
)

// solveTimeout bounds how long a single Solve call may block on the
// solver subprocess.
const solveTimeout = 15 * time.Second

// SolverPath is the SAT solver binary Solve invokes. Overridable for
// deployments that vendor a differently-named or differently-located
// cryptominisat5 build.
var SolverPath = "cryptominisat5"

// Solve writes f in DIMACS form to an external SAT solver and parses its
// model. A nil Model with a nil error means the formula is unsatisfiable.
// A nil Model with an error of ErrTimeout also means unsatisfiable, per
// the timeout-as-UNSAT contract this backend honors; it is returned as a
// distinguishable sentinel only so callers that want to log a timeout
// separately from a genuine UNSAT result can do so with errors.Is.
func Solve(ctx context.Context, f *cnf.Formula) (Model, error) {
	ctx, cancel := context.WithTimeout(ctx, solveTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, SolverPath, "--verb=0")
	cmd.Stdin = strings.NewReader(f.String())

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	err := cmd.Run()
	if ctx.Err() != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil, ErrTimeout
	}
	if err != nil {
		return nil, err
	}

	literals := parseAssignments(stdout.Bytes())
	model := buildModel(f, literals)
	if len(model) == 0 {
		return nil, nil
	}

	return model, nil
}
