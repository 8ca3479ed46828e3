// File: api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order => identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.
package builder

import (
	"fmt"

	"github.com/nmrassign/methylcsp/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early, respect core graph
// mode flags, and return sentinel errors instead of panicking.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; no partial cleanup is attempted.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================

// Cycle builds an n-vertex simple cycle C_n (n >= 3).
// Complexity: O(n) vertices + O(n) edges.
//func Cycle(n int) Constructor

// Star builds a star with center "Center" and n-1 leaves (n >= 2).
// Complexity: O(n) vertices + O(n-1) edges.
//func Star(n int) Constructor

// Complete builds the complete simple graph K_n (n >= 1).
// Complexity: O(n) vertices + O(n^2) edges.
//func Complete(n int) Constructor

// RandomSparse builds an Erdos-Renyi-style sparse graph. Requires
// cfg.rng != nil and 0 <= p <= 1. Deterministic for a fixed seed.
//func RandomSparse(n int, p float64) Constructor
