package pwrp

import (
	"sort"

	"github.com/vaskrai/mwrpp/graph"
)

// EdgeSet is a required-edge set keyed by identity (graph.Key), exactly
// the equality spec.md §3 mandates: weight and direction never
// participate in membership. It backs both a vehicle's allocation and
// the walk-in-progress bookkeeping in Solve.
type EdgeSet map[graph.Key]graph.Edge

// NewEdgeSet builds a set from a slice of edges.
func NewEdgeSet(edges ...graph.Edge) EdgeSet {
	s := make(EdgeSet, len(edges))
	for _, e := range edges {
		s[graph.KeyOf(e)] = e
	}
	return s
}

// Clone returns an independent copy of s.
func (s EdgeSet) Clone() EdgeSet {
	out := make(EdgeSet, len(s))
	for k, e := range s {
		out[k] = e
	}
	return out
}

// Contains reports whether e (by identity) is a member of s.
func (s EdgeSet) Contains(e graph.Edge) bool {
	_, ok := s[graph.KeyOf(e)]
	return ok
}

// Add inserts e into s.
func (s EdgeSet) Add(e graph.Edge) { s[graph.KeyOf(e)] = e }

// Remove deletes e (by identity) from s.
func (s EdgeSet) Remove(e graph.Edge) { delete(s, graph.KeyOf(e)) }

// Sorted returns every member of s ordered by identity. Go map
// iteration order is randomized per process; every place the heuristic
// or the annealing driver must pick a deterministic "first" candidate
// among several qualifying edges goes through this instead of ranging
// over the map directly, which is what lets the driver be reproducible
// given a fixed RNG seed.
func (s EdgeSet) Sorted() []graph.Edge {
	out := make([]graph.Edge, 0, len(s))
	for _, e := range s {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return lessKey(graph.KeyOf(out[i]), graph.KeyOf(out[j])) })
	return out
}

func lessKey(a, b graph.Key) bool {
	if a.P1 != b.P1 {
		return a.P1 < b.P1
	}
	if a.P2 != b.P2 {
		return a.P2 < b.P2
	}
	if a.Discriminator != b.Discriminator {
		return a.Discriminator < b.Discriminator
	}
	return a.Side < b.Side
}
