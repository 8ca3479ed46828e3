// File: reduce.go — the outer symmetrization-graph reduction loop.
package reducer

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"

	"github.com/nmrassign/methylcsp/config"
	"github.com/nmrassign/methylcsp/model"
	"github.com/nmrassign/methylcsp/symgraph"
)

// Reduce repeatedly kills symmetrization-graph edges that take no part in
// any satisfiability-preserving maximum-cardinality matching of their
// component, in ascending order of component size. Killing edges can
// shrink a component below network's activity threshold, which may
// surface new small components worth testing immediately — whenever that
// happens the whole pass restarts from the smallest living-but-inactive
// component rather than continuing where it left off. Once a full pass
// makes no further progress, CleanComponents runs once as a final
// tightening step over what remains active.
func Reduce(ctx context.Context, network *symgraph.Graph, signatures []*model.Signature, structure *model.Structure, p config.Params, solve Solver, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	active, err := network.ActiveGraph()
	if err != nil {
		return err
	}
	activeEdges := len(active.Edges())

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		inactive, err := network.InactiveGraph()
		if err != nil {
			return err
		}
		components, err := inactive.Components()
		if err != nil {
			return err
		}
		sort.Slice(components, func(i, j int) bool { return len(components[i]) < len(components[j]) })

		restarted := false

		for _, component := range components {
			if len(component) < 2 {
				continue
			}

			edges := componentEdges(inactive, component)
			if len(edges) == 0 {
				continue
			}

			unseen, err := testComponent(ctx, component, network, edges, signatures, structure, p, solve, logger)
			if err != nil {
				if errors.Is(err, ErrComponentTooLarge) {
					logger.Info("skipping component above the enumerable size bound", zap.Int("nodes", len(component)))
					continue
				}
				return err
			}
			if len(unseen) == 0 {
				continue
			}

			for _, e := range unseen {
				if err := network.Kill(e[0], e[1]); err != nil {
					return err
				}
			}

			if err := network.SetActivityLevel(p.MaxCompSize); err != nil {
				return err
			}

			newActive, err := network.ActiveGraph()
			if err != nil {
				return err
			}
			newActiveEdges := len(newActive.Edges())

			if newActiveEdges > activeEdges {
				activeEdges = newActiveEdges
				restarted = true
				break
			}
			activeEdges = newActiveEdges
		}

		if !restarted {
			break
		}
	}

	return CleanComponents(ctx, network, signatures, structure, p, solve)
}
