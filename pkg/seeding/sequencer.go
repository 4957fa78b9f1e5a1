package seeding

import (
	"fmt"
)

// Sequence is a persistence order over a resolved graph: indices into
// ResolvedGraph.Animals such that every animal appears strictly after both
// of its resolved ancestors, followed by plan indices (plans are written
// only after every animal they reference exists).
type Sequence struct {
	Animals []int
	Plans   []int
}

// Linearize produces a deterministic topological order derived from the
// reference edges themselves. The declared generation number is only a
// tie-break between simultaneously-ready nodes (ascending, then declaration
// order), never the source of ordering truth - the sort stays correct even
// if a generation hint and the actual edges disagree, and the resolver has
// already rejected such definitions.
//
// The resolver also rejects cycles, so Linearize cannot encounter one; if
// the graph is somehow inconsistent it fails with a structural error rather
// than emitting a partial order.
func Linearize(g *ResolvedGraph) (*Sequence, error) {
	n := len(g.Animals)
	indegree := make([]int, n)
	children := make([][]int, n)

	for i, a := range g.Animals {
		for _, parent := range []int{a.Sire, a.Dam} {
			if parent == noParent {
				continue
			}
			indegree[i]++
			children[parent] = append(children[parent], i)
		}
	}

	ready := make([]int, 0, n)
	for i := range g.Animals {
		if indegree[i] == 0 {
			ready = append(ready, i)
		}
	}

	seq := &Sequence{Animals: make([]int, 0, n)}
	for len(ready) > 0 {
		// Pick the ready node with the lowest (generation, declaration
		// index). The fixture universe is small; a linear scan keeps the
		// order obviously deterministic.
		best := 0
		for j := 1; j < len(ready); j++ {
			if less(g, ready[j], ready[best]) {
				best = j
			}
		}
		next := ready[best]
		ready = append(ready[:best], ready[best+1:]...)

		seq.Animals = append(seq.Animals, next)
		for _, child := range children[next] {
			indegree[child]--
			if indegree[child] == 0 {
				ready = append(ready, child)
			}
		}
	}

	if len(seq.Animals) != n {
		return nil, fmt.Errorf("structural error in tenant %q: %d of %d animals unreachable in topological order",
			g.Tenant.Slug, n-len(seq.Animals), n)
	}

	for i := range g.Plans {
		seq.Plans = append(seq.Plans, i)
	}

	return seq, nil
}

// less orders ready nodes by declared generation, then declaration order.
func less(g *ResolvedGraph, a, b int) bool {
	ga, gb := g.Animals[a].Def.Generation, g.Animals[b].Def.Generation
	if ga != gb {
		return ga < gb
	}
	return a < b
}
