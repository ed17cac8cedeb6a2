package pwrp

import (
	"fmt"

	"github.com/vaskrai/mwrpp/graph"
)

// Solve extends a closed walk from start until every edge in alloc has
// been traversed, via cycle injection and distant-isle bridging. It
// never mutates alloc; the returned remaining set is empty whenever ok
// is true, and holds whatever subset of alloc could not be reached
// otherwise.
//
// dir selects the directionality policy the underlying graph's
// pathfinding honours; it must match the policy the caller built alloc
// and the graph's pruning under.
func Solve[N any](g *graph.Graph[N], start graph.NodeID, alloc EdgeSet, dir bool, weight graph.Weight) (sol []graph.Edge, remaining EdgeSet, ok bool) {
	remaining = alloc.Clone()

	for len(remaining) > 0 {
		if e, u, y, injected := injectCycle(g, sol, start, remaining, dir, weight); injected {
			v := e.Other(u)
			ret, found := g.Pathfind(v, u, dir, weight)
			if !found {
				panic(fmt.Sprintf("pwrp: no return path from %d to %d; the graph should be strongly connected under the active direction policy after pruning", v, u))
			}
			seg := append([]graph.Edge{e}, ret...)
			sol = spliceAt(sol, y, seg)
			for _, se := range seg {
				remaining.Remove(se)
			}
			continue
		}

		newSol, bridged := bridgeDistantIsle(g, sol, start, remaining, dir, weight)
		if !bridged {
			return sol, remaining, false
		}
		sol = newSol
	}

	return sol, remaining, true
}

// injectCycle scans sol's visited nodes for the first one with an
// outgoing allocated edge, returning that edge, the visiting node, and
// its visit-index (for splicing).
func injectCycle[N any](g *graph.Graph[N], sol []graph.Edge, start graph.NodeID, alloc EdgeSet, dir bool, weight graph.Weight) (graph.Edge, graph.NodeID, int, bool) {
	visits := graph.PathToNodes(sol, start)
	for y, vis := range visits {
		cands := outgoingAt(alloc, vis.Node, dir)
		if len(cands) > 0 {
			return cands[0], vis.Node, y, true
		}
	}
	return graph.Edge{}, 0, 0, false
}

// bridgeDistantIsle implements step 2: region-to-region Dijkstra from
// the walk's visited nodes to the set of nodes that could enter some
// allocated edge, then a splice of approach-edge-return. Candidate
// entry nodes that dead-end (no return path) are dropped and the
// region search retried.
func bridgeDistantIsle[N any](g *graph.Graph[N], sol []graph.Edge, start graph.NodeID, alloc EdgeSet, dir bool, weight graph.Weight) ([]graph.Edge, bool) {
	visits := graph.PathToNodes(sol, start)
	u := dedupNodes(visits)
	v := entryNodes(alloc, dir)

	for len(v) > 0 {
		src, tgt, pathUV, found := g.PathfindRegions(u, v, dir, weight)
		if !found {
			return nil, false
		}

		cands := outgoingAt(alloc, tgt, dir)
		if len(cands) == 0 {
			v = removeNode(v, tgt)
			continue
		}
		e := cands[0]
		tail := e.Other(tgt)
		ret, okReturn := g.Pathfind(tail, src, dir, weight)
		if !okReturn {
			v = removeNode(v, tgt)
			continue
		}

		seg := make([]graph.Edge, 0, len(pathUV)+1+len(ret))
		seg = append(seg, pathUV...)
		seg = append(seg, e)
		seg = append(seg, ret...)

		y := visitIndex(visits, src)
		newSol := spliceAt(sol, y, seg)
		for _, se := range seg {
			alloc.Remove(se)
		}
		return newSol, true
	}
	return nil, false
}

// outgoingAt returns every edge in alloc outgoing from u under dir,
// ordered deterministically.
func outgoingAt(alloc EdgeSet, u graph.NodeID, dir bool) []graph.Edge {
	var out []graph.Edge
	for _, e := range alloc.Sorted() {
		if e.IsOutgoing(u, dir) {
			out = append(out, e)
		}
	}
	return out
}

// entryNodes returns, in deterministic order, every node that could be
// the outgoing endpoint of some edge in alloc under dir.
func entryNodes(alloc EdgeSet, dir bool) []graph.NodeID {
	seen := make(map[graph.NodeID]bool)
	var order []graph.NodeID
	for _, e := range alloc.Sorted() {
		for _, n := range [2]graph.NodeID{e.P1, e.P2} {
			if e.IsOutgoing(n, dir) && !seen[n] {
				seen[n] = true
				order = append(order, n)
			}
		}
	}
	return order
}

func removeNode(nodes []graph.NodeID, target graph.NodeID) []graph.NodeID {
	out := nodes[:0:0]
	for _, n := range nodes {
		if n != target {
			out = append(out, n)
		}
	}
	return out
}

func dedupNodes(visits []graph.Visit) []graph.NodeID {
	seen := make(map[graph.NodeID]bool, len(visits))
	var order []graph.NodeID
	for _, vis := range visits {
		if !seen[vis.Node] {
			seen[vis.Node] = true
			order = append(order, vis.Node)
		}
	}
	return order
}

func visitIndex(visits []graph.Visit, node graph.NodeID) int {
	for y, vis := range visits {
		if vis.Node == node {
			return y
		}
	}
	return 0
}

// spliceAt inserts seg into sol at edge-index y: the walk up to and
// including the edge that arrives at visit-index y is kept, seg is
// inserted, and the remainder of sol follows.
func spliceAt(sol []graph.Edge, y int, seg []graph.Edge) []graph.Edge {
	out := make([]graph.Edge, 0, len(sol)+len(seg))
	out = append(out, sol[:y]...)
	out = append(out, seg...)
	out = append(out, sol[y:]...)
	return out
}
