package graph

// Graph is a mixed directed/undirected multigraph. N is the payload
// type carried by every node (coordinates, external metadata, ...); the
// graph itself never interprets it.
//
// Storage mirrors the teacher's adjacency bucketing: a non-cyclic edge
// is indexed under both of its endpoints so GetEdges is O(1) from
// either side, while a cyclic edge (P1 == P2) is stored once. Edges()
// recovers the deduplicated edge set by emitting an edge only from the
// bucket keyed by its own P1, which is exactly the bucket every edge
// (cyclic or not) is guaranteed to appear in.
type Graph[N any] struct {
	nodes map[NodeID]N
	edges map[NodeID]map[Key]Edge
}

// NewGraph returns an empty Graph.
func NewGraph[N any]() *Graph[N] {
	return &Graph[N]{
		nodes: make(map[NodeID]N),
		edges: make(map[NodeID]map[Key]Edge),
	}
}

// AddNode inserts or replaces the payload for id. Idempotent on id: a
// second call with the same id keeps the id but overwrites the payload,
// matching the "node payload is canonical" invariant in spec §4.2.
func (g *Graph[N]) AddNode(id NodeID, payload N) {
	g.nodes[id] = payload
	if _, ok := g.edges[id]; !ok {
		g.edges[id] = make(map[Key]Edge)
	}
}

// Node returns the payload for id, and whether id is known.
func (g *Graph[N]) Node(id NodeID) (N, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// HasNode reports whether id is a registered node.
func (g *Graph[N]) HasNode(id NodeID) bool {
	_, ok := g.nodes[id]
	return ok
}

// NodeCount returns the number of registered nodes.
func (g *Graph[N]) NodeCount() int { return len(g.nodes) }

// Nodes returns every registered node id. Order is unspecified.
func (g *Graph[N]) Nodes() []NodeID {
	out := make([]NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	return out
}

// AddEdge inserts e, succeeding iff both endpoints are registered
// nodes. Re-adding an edge with identical identity (P1, P2,
// Discriminator, Side) but a different Weight/Directed replaces it in
// place — this is how PatchSCCs flips the direction bit without
// disturbing callers that hold the edge by identity.
func (g *Graph[N]) AddEdge(e Edge) error {
	if !g.HasNode(e.P1) || !g.HasNode(e.P2) {
		return ErrUnknownEndpoint
	}
	k := KeyOf(e)
	g.edges[e.P1][k] = e
	if !e.IsCyclic() {
		g.edges[e.P2][k] = e
	}
	return nil
}

// RemoveEdge deletes e (matched by identity) from both of its buckets.
// Removing an edge that is not present is a no-op.
func (g *Graph[N]) RemoveEdge(e Edge) {
	k := KeyOf(e)
	delete(g.edges[e.P1], k)
	if !e.IsCyclic() {
		delete(g.edges[e.P2], k)
	}
}

// GetEdges returns every edge incident to n. Unknown or orphan nodes
// yield an empty (non-nil) slice, never an error.
func (g *Graph[N]) GetEdges(n NodeID) []Edge {
	bucket := g.edges[n]
	out := make([]Edge, 0, len(bucket))
	for _, e := range bucket {
		out = append(out, e)
	}
	return out
}

// GetEdgesBetween returns every edge whose unordered endpoint pair is
// {a, b}, including self-loops when a == b.
func (g *Graph[N]) GetEdgesBetween(a, b NodeID) []Edge {
	var out []Edge
	for _, e := range g.edges[a] {
		if e.Other(a) == b {
			out = append(out, e)
		}
	}
	return out
}

// Edges iterates the deduplicated edge set exactly once per edge,
// yielding it from the bucket keyed by its own P1.
func (g *Graph[N]) Edges() []Edge {
	var out []Edge
	for id, bucket := range g.edges {
		for _, e := range bucket {
			if e.P1 == id {
				out = append(out, e)
			}
		}
	}
	return out
}

// EdgeCount returns the number of distinct edges (by identity).
func (g *Graph[N]) EdgeCount() int {
	n := 0
	for id, bucket := range g.edges {
		for _, e := range bucket {
			if e.P1 == id {
				n++
			}
		}
	}
	return n
}

// RetainNodes deletes every node for which keep returns false, along
// with all edges incident to it.
func (g *Graph[N]) RetainNodes(keep func(NodeID, N) bool) {
	for id, payload := range g.nodes {
		if !keep(id, payload) {
			g.removeNode(id)
		}
	}
}

// RetainNodesEdges drops every edge with an endpoint failing pred.
// Node payloads are left untouched, even for nodes that end up with no
// edges at all — unlike RetainNodes, this never deletes a node.
func (g *Graph[N]) RetainNodesEdges(pred func(NodeID, N) bool) {
	for _, e := range g.Edges() {
		if !pred(e.P1, g.nodes[e.P1]) || !pred(e.P2, g.nodes[e.P2]) {
			g.RemoveEdge(e)
		}
	}
}

// removeNode deletes id and every edge touching it.
func (g *Graph[N]) removeNode(id NodeID) {
	for _, e := range g.GetEdges(id) {
		g.RemoveEdge(e)
	}
	delete(g.nodes, id)
	delete(g.edges, id)
}
