// File: components.go — connected-component decomposition.
package algorithms

import (
	"sort"

	"github.com/nmrassign/methylcsp/core"
)

// ConnectedComponents partitions g's vertices into connected components
// via BFS, following g's own edge directedness (an undirected graph, such
// as a symmetrization graph, connects through either endpoint; a directed
// graph only follows edges forward). Components are returned as slices of
// vertex IDs, each sorted ascending, ordered by each component's smallest
// member ID.
//
// Complexity: O(V + E) via one BFS per unvisited vertex.
func ConnectedComponents(g *core.Graph) ([][]string, error) {
	visited := make(map[string]bool)
	var components [][]string

	for _, id := range g.Vertices() {
		if visited[id] {
			continue
		}

		res, err := BFS(g, id, nil)
		if err != nil {
			return nil, err
		}

		comp := make([]string, 0, len(res.Order))
		for _, v := range res.Order {
			visited[v.ID] = true
			comp = append(comp, v.ID)
		}
		sort.Strings(comp)
		components = append(components, comp)
	}

	sort.Slice(components, func(i, j int) bool { return components[i][0] < components[j][0] })

	return components, nil
}
