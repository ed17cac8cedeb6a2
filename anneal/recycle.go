package anneal

import (
	"math"

	"github.com/vaskrai/mwrpp/graph"
)

// recycle scans ordered pairs of this iteration's just-built tours and,
// for each pair, moves the first sub-cycle it finds from the costlier
// tour into the cheaper one. It runs against newTours regardless of
// whether the tour-building phase's result was accepted — see
// DESIGN.md's note on the stale-objective behavior this preserves.
func (d *Driver) recycle(newTours [][]graph.Edge, costs []float64, valueNext float64) {
	n := len(d.vehicles)
	if n < 2 {
		return
	}

	solImprov := make([][]graph.Edge, n)
	seqs := make([][]graph.NodeID, n)
	for i, tour := range newTours {
		solImprov[i] = append([]graph.Edge(nil), tour...)
		visits := graph.PathToNodes(tour, d.vehicles[i].Start)
		seq := make([]graph.NodeID, len(visits))
		for k, v := range visits {
			seq[k] = v.Node
		}
		seqs[i] = seq
	}

	for posI := 0; posI < n; posI++ {
	pairs:
		for posJ := posI + 1; posJ < n; posJ++ {
			vi, vj := d.order[posI], d.order[posJ]
			i, j := vi, vj
			if !(costs[vi] > costs[vj]) {
				i, j = vj, vi
			}
			for iu := 0; iu < len(seqs[i]); iu++ {
				for ju := 0; ju < len(seqs[j]); ju++ {
					if seqs[i][iu] != seqs[j][ju] {
						continue
					}
					for iv := iu + 1; iv < len(seqs[i]); iv++ {
						if seqs[i][iv] != seqs[i][iu] {
							continue
						}
						var movedEdges []graph.Edge
						var movedNodes []graph.NodeID
						solImprov[i], movedEdges = excise(solImprov[i], iu, iv)
						seqs[i], movedNodes = excise(seqs[i], iu, iv)
						solImprov[j] = insertAt(solImprov[j], ju, movedEdges)
						seqs[j] = insertAt(seqs[j], ju, movedNodes)
						continue pairs
					}
				}
			}
		}
	}

	var costImprovMax float64
	for i := 0; i < n; i++ {
		c := costAllocOnly(solImprov[i], d.alloc[i], d.snowy, d.params.Slowdown)
		if c > costImprovMax {
			costImprovMax = c
		}
	}

	// valueImprov deliberately reuses the tour-building phase's
	// objective rather than recomputing it from solImprov: this
	// reproduces the original solver's behavior, under which the
	// probabilistic-acceptance clause below never actually fires
	// (see DESIGN.md).
	valueImprov := valueNext

	accept := valueImprov < d.valueBest ||
		(valueImprov <= d.valueBest && costImprovMax < d.costMaxBest) ||
		(valueImprov < valueNext && d.rng.Float64() < math.Exp((valueImprov-valueNext)/d.temperature))
	if !accept {
		return
	}

	d.solution = solImprov
	d.valueBest = valueImprov
	d.costMaxBest = costImprovMax
	if d.params.Clearing == ClearingAll {
		solutionToAlloc(d.order, d.solution, d.alloc, d.snowy)
	}
}
