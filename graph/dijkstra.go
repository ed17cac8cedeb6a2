package graph

import (
	"container/heap"
	"sort"
)

// Weight filters and costs an edge for a particular traversal. A
// traversal returning ok == false treats e as impassable for this
// query — the PWRP heuristic uses this to restrict Dijkstra to a
// caller-chosen edge subset without building a new Graph.
type Weight func(e Edge) (cost float64, ok bool)

// dpEntry is the per-node Dijkstra bookkeeping record: best distance
// found so far, and the edge that achieved it (absent for a source).
type dpEntry struct {
	dist    float64
	pred    Edge
	hasPred bool
}

// heapItem is a (node, priority) pair. Priority is the cumulative
// distance itself; Less orders by ascending distance, so container/heap
// (a min-heap) pops the closest node first, mirroring the teacher's
// nodePQ.
type heapItem struct {
	node NodeID
	dist float64
}

type nodeHeap []heapItem

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(heapItem)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// dijkstraRun is the shared engine behind Pathfind and PathfindRegions:
// a lazy-decrease-key Dijkstra from every node in sources, stopping as
// soon as any node in targets (or, if targets is nil, every reachable
// node) is finalized. It returns the dp table and, when targets is
// non-nil, the first target node popped (or 0 with ok == false when no
// target is reached). Each node's incident edges are relaxed in
// identity order, so ties between equal-cost paths resolve the same way
// on every run regardless of map iteration order.
func dijkstraRun[N any](g *Graph[N], sources []NodeID, targets map[NodeID]bool, respectDirection bool, weight Weight) (map[NodeID]dpEntry, NodeID, bool) {
	dp := make(map[NodeID]dpEntry, len(g.nodes))
	h := &nodeHeap{}
	heap.Init(h)
	for _, s := range sources {
		if _, ok := dp[s]; ok {
			continue
		}
		dp[s] = dpEntry{dist: 0}
		heap.Push(h, heapItem{node: s, dist: 0})
	}

	finalized := make(map[NodeID]bool, len(g.nodes))
	for h.Len() > 0 {
		item := heap.Pop(h).(heapItem)
		u := item.node
		if finalized[u] {
			continue
		}
		finalized[u] = true

		if targets != nil && targets[u] {
			return dp, u, true
		}

		ud := dp[u].dist
		incident := make([]Edge, 0, len(g.edges[u]))
		for _, e := range g.edges[u] {
			incident = append(incident, e)
		}
		sort.Slice(incident, func(i, j int) bool {
			a, b := KeyOf(incident[i]), KeyOf(incident[j])
			if a.P1 != b.P1 || a.P2 != b.P2 {
				return a.P1 < b.P1 || (a.P1 == b.P1 && a.P2 < b.P2)
			}
			return a.Discriminator < b.Discriminator || (a.Discriminator == b.Discriminator && a.Side < b.Side)
		})
		for _, e := range incident {
			if !e.IsOutgoing(u, respectDirection) {
				continue
			}
			v := e.Other(u)
			if finalized[v] {
				continue
			}
			cost, ok := weight(e)
			if !ok {
				continue
			}
			nd := ud + cost
			cur, seen := dp[v]
			if !seen || nd < cur.dist {
				dp[v] = dpEntry{dist: nd, pred: e, hasPred: true}
				heap.Push(h, heapItem{node: v, dist: nd})
			}
		}
	}

	return dp, 0, false
}

// reconstruct walks dp's predecessor chain backward from t, returning
// the edges from the discovered source to t in traversal order, and
// the source node the chain terminates at.
func reconstruct(dp map[NodeID]dpEntry, t NodeID) ([]Edge, NodeID) {
	var rev []Edge
	cur := t
	for {
		e, ok := dp[cur]
		if !ok || !e.hasPred {
			break
		}
		rev = append(rev, e.pred)
		cur = e.pred.Other(cur)
	}
	// rev is target-to-source; reverse in place.
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev, cur
}

// Pathfind returns the shortest edge sequence from s to t respecting
// respectDirection and weight, or ok == false if t is unreachable.
func (g *Graph[N]) Pathfind(s, t NodeID, respectDirection bool, weight Weight) ([]Edge, bool) {
	dp, _, found := dijkstraRun(g, []NodeID{s}, map[NodeID]bool{t: true}, respectDirection, weight)
	if !found {
		return nil, false
	}
	path, _ := reconstruct(dp, t)
	return path, true
}

// PathfindRegions is the multi-source, multi-target variant: it finds
// the globally shortest path from any node in sources to any node in
// targets, returning the actual source and target it found along with
// the connecting path.
func (g *Graph[N]) PathfindRegions(sources, targets []NodeID, respectDirection bool, weight Weight) (actualSource, actualTarget NodeID, path []Edge, ok bool) {
	targetSet := make(map[NodeID]bool, len(targets))
	for _, t := range targets {
		targetSet[t] = true
	}
	dp, found, okFound := dijkstraRun(g, sources, targetSet, respectDirection, weight)
	if !okFound {
		return 0, 0, nil, false
	}
	p, src := reconstruct(dp, found)
	return src, found, p, true
}

// RegionEdge is one traversable edge reported by GetEdgesBetweenRegions:
// A is the endpoint in the source region an edge may be left from, B is
// the endpoint in the target region it may be entered at.
type RegionEdge struct {
	A, B NodeID
	Edge Edge
}

// GetEdgesBetweenRegions enumerates every edge with an endpoint a in A
// that is outgoing from a, and whose other endpoint b is in B and
// incoming at b, under respectDirection.
func (g *Graph[N]) GetEdgesBetweenRegions(a, b []NodeID, respectDirection bool) []RegionEdge {
	bSet := make(map[NodeID]bool, len(b))
	for _, n := range b {
		bSet[n] = true
	}
	var out []RegionEdge
	for _, u := range a {
		for _, e := range g.edges[u] {
			if !e.IsOutgoing(u, respectDirection) {
				continue
			}
			v := e.Other(u)
			if bSet[v] && e.IsIncoming(v, respectDirection) {
				out = append(out, RegionEdge{A: u, B: v, Edge: e})
			}
		}
	}
	return out
}

// PathToNodes walks an edge sequence starting at start, returning the
// visited node and the edge that led into it (nil-ish/absent for the
// first element). len(result) == len(path)+1.
type Visit struct {
	Node    NodeID
	Via     Edge
	HasEdge bool
}

// PathToNodes converts an edge path into the sequence of nodes it
// visits, picking the "other" endpoint at each step.
func PathToNodes(path []Edge, start NodeID) []Visit {
	out := make([]Visit, 0, len(path)+1)
	out = append(out, Visit{Node: start})
	cur := start
	for _, e := range path {
		cur = e.Other(cur)
		out = append(out, Visit{Node: cur, Via: e, HasEdge: true})
	}
	return out
}
