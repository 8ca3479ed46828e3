// File: matching.go — brute-force maximum-cardinality matching enumeration
// over a small edge set.
package reducer

import "github.com/nmrassign/methylcsp/model"

// maxMatchingSize returns the cardinality of a maximum matching among
// edges, found by trying every edge subset and keeping the largest one
// that leaves no vertex shared between two chosen edges. Exponential in
// len(edges); callers bound component size before calling this, mirroring
// the accepted tractability trade-off of brute-forcing only small
// components.
func maxMatchingSize(edges [][2]*model.NOE) int {
	best := 0
	used := make(map[*model.NOE]bool, len(edges)*2)

	var search func(idx, count int)
	search = func(idx, count int) {
		if count > best {
			best = count
		}
		if idx >= len(edges) {
			return
		}
		if count+(len(edges)-idx) <= best {
			return
		}

		search(idx+1, count)

		a, b := edges[idx][0], edges[idx][1]
		if !used[a] && !used[b] {
			used[a], used[b] = true, true
			search(idx+1, count+1)
			used[a], used[b] = false, false
		}
	}
	search(0, 0)

	return best
}

// matchingsOfSize enumerates every vertex-disjoint subset of edges with
// exactly k elements, each reported as a slice sharing its element
// objects with edges — callers that need to mark "which original edges
// were never touched" can therefore compare matching elements against
// edges by value rather than needing a separate normalization step.
func matchingsOfSize(edges [][2]*model.NOE, k int) [][][2]*model.NOE {
	if k == 0 {
		return [][][2]*model.NOE{{}}
	}

	var out [][][2]*model.NOE
	var current [][2]*model.NOE
	used := make(map[*model.NOE]bool, len(edges)*2)

	var search func(start int)
	search = func(start int) {
		if len(current) == k {
			matching := make([][2]*model.NOE, len(current))
			copy(matching, current)
			out = append(out, matching)
			return
		}
		if start >= len(edges) {
			return
		}
		if len(current)+(len(edges)-start) < k {
			return
		}

		search(start + 1)

		a, b := edges[start][0], edges[start][1]
		if !used[a] && !used[b] {
			used[a], used[b] = true, true
			current = append(current, edges[start])
			search(start + 1)
			current = current[:len(current)-1]
			used[a], used[b] = false, false
		}
	}
	search(0)

	return out
}

// maxMatchings enumerates every maximum-cardinality matching among edges.
func maxMatchings(edges [][2]*model.NOE) [][][2]*model.NOE {
	return matchingsOfSize(edges, maxMatchingSize(edges))
}
