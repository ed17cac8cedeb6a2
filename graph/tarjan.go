package graph

// scanFrame is one explicit call-stack frame of the iterative Tarjan
// driver: the node being visited, its outgoing edges under the active
// direction policy, and how many of them have already been examined.
// Real road graphs run deep enough that a recursive strongconnect
// would risk the system stack; this formulation never recurses.
type scanFrame struct {
	node  NodeID
	edges []Edge
	idx   int
}

func (g *Graph[N]) outgoing(u NodeID, respectDirection bool) []Edge {
	bucket := g.edges[u]
	out := make([]Edge, 0, len(bucket))
	for _, e := range bucket {
		if e.IsOutgoing(u, respectDirection) {
			out = append(out, e)
		}
	}
	return out
}

// StronglyConnectedComponents computes the graph's SCCs using an
// iterative (explicit-stack) Tarjan's algorithm. When respectDirection
// is false every edge is treated as undirected, so the result is just
// the set of (undirected) connected components. When includeOrphans is
// false, singleton components whose node has no incident edges at all
// are dropped from the result.
func (g *Graph[N]) StronglyConnectedComponents(respectDirection, includeOrphans bool) [][]NodeID {
	index := make(map[NodeID]int, len(g.nodes))
	lowlink := make(map[NodeID]int, len(g.nodes))
	onStack := make(map[NodeID]bool, len(g.nodes))
	var tstack []NodeID
	var sccs [][]NodeID
	counter := 0

	var work []*scanFrame

	for _, start := range g.Nodes() {
		if _, seen := index[start]; seen {
			continue
		}

		index[start] = counter
		lowlink[start] = counter
		counter++
		tstack = append(tstack, start)
		onStack[start] = true
		work = append(work, &scanFrame{node: start, edges: g.outgoing(start, respectDirection)})

		for len(work) > 0 {
			f := work[len(work)-1]
			if f.idx < len(f.edges) {
				e := f.edges[f.idx]
				f.idx++
				w := e.Other(f.node)

				if _, seen := index[w]; !seen {
					index[w] = counter
					lowlink[w] = counter
					counter++
					tstack = append(tstack, w)
					onStack[w] = true
					work = append(work, &scanFrame{node: w, edges: g.outgoing(w, respectDirection)})
					continue
				}
				if onStack[w] && index[w] < lowlink[f.node] {
					lowlink[f.node] = index[w]
				}
				continue
			}

			// All of f.node's edges are processed: fold into parent and,
			// if f.node is a component root, pop it off the tarjan stack.
			work = work[:len(work)-1]
			if len(work) > 0 {
				parent := work[len(work)-1]
				if lowlink[f.node] < lowlink[parent.node] {
					lowlink[parent.node] = lowlink[f.node]
				}
			}
			if lowlink[f.node] == index[f.node] {
				var comp []NodeID
				for {
					n := tstack[len(tstack)-1]
					tstack = tstack[:len(tstack)-1]
					onStack[n] = false
					comp = append(comp, n)
					if n == f.node {
						break
					}
				}
				sccs = append(sccs, comp)
			}
		}
	}

	if includeOrphans {
		return sccs
	}
	out := sccs[:0]
	for _, comp := range sccs {
		if len(comp) == 1 && len(g.GetEdges(comp[0])) == 0 {
			continue
		}
		out = append(out, comp)
	}
	return out
}

// PatchSCCs rewrites every directed edge that spans two distinct SCCs
// in sccs into its undirected equivalent via dedirect. dedirect must
// return an edge equal under identity (Key) to its input but with
// Directed == false; because equality excludes the direction bit, the
// removed and re-added edges share identity — the rewrite is logically
// an in-place mutation of that bit. Does nothing when respectDirection
// is false (there is no direction to patch).
func (g *Graph[N]) PatchSCCs(sccs [][]NodeID, dedirect func(Edge) Edge, respectDirection bool) {
	if !respectDirection {
		return
	}
	compOf := make(map[NodeID]int, len(g.nodes))
	for i, comp := range sccs {
		for _, n := range comp {
			compOf[n] = i
		}
	}
	for _, e := range g.Edges() {
		if !e.Directed {
			continue
		}
		if compOf[e.P1] != compOf[e.P2] {
			g.RemoveEdge(e)
			_ = g.AddEdge(dedirect(e))
		}
	}
}

// FixSCCs is the §4.5 component-pruning pass: it weak-link-patches
// every directed edge crossing a directed SCC boundary, then — if the
// resulting undirected graph still has more than one connected
// component — retains only the components containing at least one of
// starts. Running FixSCCs again afterward is a no-op: the weak-link
// patch already merged every formerly-crossing pair of directed SCCs
// into a single component via the newly undirected edge.
func (g *Graph[N]) FixSCCs(starts []NodeID, dedirect func(Edge) Edge) {
	directedSCCs := g.StronglyConnectedComponents(true, true)
	g.PatchSCCs(directedSCCs, dedirect, true)

	undirectedSCCs := g.StronglyConnectedComponents(false, true)
	if len(undirectedSCCs) <= 1 {
		return
	}

	startSet := make(map[NodeID]bool, len(starts))
	for _, s := range starts {
		startSet[s] = true
	}

	keep := make(map[NodeID]bool)
	for _, comp := range undirectedSCCs {
		inUse := false
		for _, n := range comp {
			if startSet[n] {
				inUse = true
				break
			}
		}
		if inUse {
			for _, n := range comp {
				keep[n] = true
			}
		}
	}
	g.RetainNodes(func(id NodeID, _ N) bool { return keep[id] })
}
