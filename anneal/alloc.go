package anneal

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vaskrai/mwrpp/graph"
	"github.com/vaskrai/mwrpp/pwrp"
)

// initialAllocation assigns each required edge by finding the vehicle
// closest to P1 and the vehicle closest to P2 (equidistant vehicles
// resolve to the lower index). If both are the same vehicle it gets the
// edge; otherwise the P2-side vehicle gets it when it currently holds no
// more edges than the P1-side vehicle, and the P1-side vehicle gets it
// otherwise. The two endpoints' distances are not compared — this
// mirrors the original solver's literal comparison rather than a
// symmetric nearest-neighbor rule.
func initialAllocation(positions []r2.Vec, nodePos func(graph.NodeID) r2.Vec, snowy pwrp.EdgeSet) []pwrp.EdgeSet {
	n := len(positions)
	allocs := make([]pwrp.EdgeSet, n)
	for i := range allocs {
		allocs[i] = pwrp.NewEdgeSet()
	}
	if n == 0 {
		return allocs
	}

	closest := func(pos r2.Vec) int {
		best := 0
		bestDist := r2.Norm2(r2.Sub(positions[0], pos))
		for i := 1; i < n; i++ {
			d := r2.Norm2(r2.Sub(positions[i], pos))
			if d < bestDist {
				bestDist = d
				best = i
			}
		}
		return best
	}

	for _, e := range snowy.Sorted() {
		lv1 := closest(nodePos(e.P1))
		lv2 := closest(nodePos(e.P2))
		chosen := lv1
		if lv1 != lv2 && len(allocs[lv2]) <= len(allocs[lv1]) {
			chosen = lv2
		}
		allocs[chosen].Add(e)
	}
	return allocs
}

// solutionToAlloc folds an accepted iteration's tours back into the
// persistent allocation: each snowy edge a vehicle actually traversed
// becomes exclusively that vehicle's, in order-of-evaluation.
func solutionToAlloc(order []int, solution [][]graph.Edge, alloc []pwrp.EdgeSet, snowy pwrp.EdgeSet) {
	for _, i := range order {
		for _, e := range solution[i] {
			if !snowy.Contains(e) || alloc[i].Contains(e) {
				continue
			}
			alloc[i].Add(e)
			for a := range alloc {
				if a != i {
					alloc[a].Remove(e)
				}
			}
		}
	}
}
