package anneal

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vaskrai/mwrpp/graph"
	"github.com/vaskrai/mwrpp/idmap"
	"github.com/vaskrai/mwrpp/pwrp"
)

// Vehicle is one annealing-driver actor: a depot node to start and end
// every tour at, plus the position used for proximity-based initial
// allocation.
type Vehicle struct {
	Start    graph.NodeID
	Position r2.Vec
}

// Driver runs the simulated-annealing outer loop over a fixed vehicle
// fleet and a fixed universe of required edges.
type Driver struct {
	g        *graph.Graph[idmap.Node]
	vehicles []Vehicle
	snowy    pwrp.EdgeSet
	dir      bool
	params   Params
	rng      *rand.Rand

	alloc       []pwrp.EdgeSet
	solution    [][]graph.Edge
	order       []int
	valueBest   float64
	costMaxBest float64
	temperature float64
	ftCounter   uint64
}

// NewDriver builds a Driver with its initial allocation already
// computed. With no vehicles nothing is allocated or built: Run returns
// an empty solution and no edge of snowy is covered.
func NewDriver(g *graph.Graph[idmap.Node], vehicles []Vehicle, snowy pwrp.EdgeSet, dir bool, params Params) *Driver {
	positions := make([]r2.Vec, len(vehicles))
	for i, v := range vehicles {
		positions[i] = v.Position
	}
	nodePos := func(n graph.NodeID) r2.Vec {
		node, _ := g.Node(n)
		return node.Position
	}

	order := make([]int, len(vehicles))
	for i := range order {
		order[i] = i
	}

	return &Driver{
		g:           g,
		vehicles:    vehicles,
		snowy:       snowy.Clone(),
		dir:         dir,
		params:      params,
		rng:         deriveRNG(rngFromSeed(params.Seed), 0),
		alloc:       initialAllocation(positions, nodePos, snowy),
		solution:    make([][]graph.Edge, len(vehicles)),
		order:       order,
		valueBest:   math.Inf(1),
		costMaxBest: math.Inf(1),
		temperature: params.Annealing.StartingTemperature,
	}
}

// baseWeight is the Dijkstra cost function shared by every pwrp.Solve
// call: plain edge weight, every edge traversable.
func baseWeight(e graph.Edge) (float64, bool) { return e.Weight, true }

// Run executes the full annealing schedule and returns the
// last-accepted per-vehicle tours.
func (d *Driver) Run() [][]graph.Edge {
	for mi := uint64(0); mi < d.params.Annealing.MainIterations; mi++ {
		d.reorder()

		newTours, costs, costTotal, costMax := d.buildTours()
		valueNext := d.params.WeightTotal*costTotal + d.params.WeightMax*costMax

		accepted := valueNext < d.valueBest || (valueNext <= d.valueBest && costMax < d.costMaxBest)
		if accepted {
			d.solution = newTours
			d.valueBest = valueNext
			d.costMaxBest = costMax
			if d.params.Clearing == ClearingAll {
				solutionToAlloc(d.order, d.solution, d.alloc, d.snowy)
			}
		}

		if d.params.Recycle == RecycleExpensiveToCheap {
			d.recycle(newTours, costs, valueNext)
		}

		d.ftCounter++
		if d.ftCounter >= d.params.Annealing.FTIterations {
			d.ftCounter = 0
			d.temperature *= d.params.Annealing.CoolingFactor
		}
	}
	return d.solution
}

// buildTours builds one tour per vehicle, in d.order, via pwrp.Solve.
// Under ClearingAll, edges already driven by an earlier vehicle this
// iteration are excluded from the next vehicle's allocation and no
// longer count as slow; under ClearingOnlyAllocated nothing is shared
// across vehicles.
func (d *Driver) buildTours() (tours [][]graph.Edge, costs []float64, total, max float64) {
	n := len(d.vehicles)
	tours = make([][]graph.Edge, n)
	costs = make([]float64, n)
	done := pwrp.NewEdgeSet()

	for _, i := range d.order {
		effAlloc := d.alloc[i].Clone()
		if d.params.Clearing == ClearingAll {
			for _, e := range done.Sorted() {
				effAlloc.Remove(e)
			}
		}

		sol, remaining, ok := pwrp.Solve(d.g, d.vehicles[i].Start, effAlloc, d.dir, baseWeight)
		if !ok {
			panic(fmt.Sprintf("anneal: vehicle %d could not reach %d required edge(s) after pruning", i, len(remaining)))
		}

		c := cost(sol, d.alloc[i], done, d.snowy, d.params.Clearing, d.params.Slowdown)
		if d.params.Clearing == ClearingAll {
			for _, e := range sol {
				done.Add(e)
			}
		}

		tours[i] = sol
		costs[i] = c
		total += c
		if c > max {
			max = c
		}
	}
	return tours, costs, total, max
}
