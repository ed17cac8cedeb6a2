package anneal

import (
	"github.com/vaskrai/mwrpp/graph"
	"github.com/vaskrai/mwrpp/pwrp"
)

// cost sums tour's edge weights, multiplying a snowy edge's weight by
// slowdown when it counts as "active" under clearing: under
// ClearingOnlyAllocated, active means alloc contains the edge; under
// ClearingAll, active means done does not yet contain it.
func cost(tour []graph.Edge, alloc, done, snowy pwrp.EdgeSet, clearing Clearing, slowdown float64) float64 {
	var total float64
	for _, e := range tour {
		active := alloc.Contains(e)
		if clearing == ClearingAll {
			active = !done.Contains(e)
		}
		mult := 1.0
		if snowy.Contains(e) && active {
			mult = slowdown
		}
		total += e.Weight * mult
	}
	return total
}

// costAllocOnly recomputes tour's cost using the "only allocated"
// formula regardless of the configured clearing policy. The recycle
// phase uses this — see DESIGN.md for why this, and not cost, is used
// there.
func costAllocOnly(tour []graph.Edge, alloc, snowy pwrp.EdgeSet, slowdown float64) float64 {
	var total float64
	for _, e := range tour {
		mult := 1.0
		if snowy.Contains(e) && alloc.Contains(e) {
			mult = slowdown
		}
		total += e.Weight * mult
	}
	return total
}
