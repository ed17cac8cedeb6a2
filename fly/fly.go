package fly

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vaskrai/mwrpp/anneal"
	"github.com/vaskrai/mwrpp/graph"
	"github.com/vaskrai/mwrpp/idmap"
	"github.com/vaskrai/mwrpp/pwrp"
)

var (
	// ErrUnknownNode indicates a segment endpoint, or an explicit
	// vehicle location, refers to a node id that was never registered.
	ErrUnknownNode = errors.New("fly: unknown node id")
	// ErrOrphanNode indicates an explicit vehicle location resolves to a
	// node with no incident edges.
	ErrOrphanNode = errors.New("fly: location resolves to an orphan node")
	// ErrNoNodes indicates a coordinate-based vehicle location could not
	// be snapped because the graph has no non-orphan node at all.
	ErrNoNodes = errors.New("fly: no non-orphan node to locate a vehicle against")
)

// NodeInput is one surveyed point.
type NodeInput struct {
	ID       string
	Lon, Lat float64
}

// SegmentInput is one undirected road segment, always required for the
// aerial specialisation. Discriminator is empty when the pair (P1, P2)
// carries no parallel segment.
type SegmentInput struct {
	P1, P2        string
	Discriminator string
	Distance      float64
}

// Location is a vehicle's starting point: either an explicit node id
// (NodeID non-empty) or raw coordinates.
type Location struct {
	NodeID   string
	Lon, Lat float64
}

// PathSegment is one stop of a vehicle's output route.
type PathSegment struct {
	Node          string
	Discriminator string
}

// Build assembles the aerial graph, runs the annealing driver, and
// returns one output route per vehicle in input order.
func Build(nodes []NodeInput, segments []SegmentInput, vehicles []Location, params anneal.Params) ([][]PathSegment, error) {
	m := idmap.New()
	for _, n := range nodes {
		m.AddNode(n.ID, r2.Vec{X: n.Lon, Y: n.Lat})
	}

	snowy := pwrp.NewEdgeSet()
	for _, s := range segments {
		p1, ok := m.ID2NID(s.P1)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownNode, s.P1)
		}
		p2, ok := m.ID2NID(s.P2)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownNode, s.P2)
		}
		disc, err := discriminatorID(m, s.Discriminator)
		if err != nil {
			return nil, err
		}
		e := graph.Edge{P1: p1, P2: p2, Discriminator: disc, Directed: false, Weight: s.Distance}
		if err := m.G.AddEdge(e); err != nil {
			return nil, err
		}
		snowy.Add(e)
	}

	starts := make([]anneal.Vehicle, len(vehicles))
	startIDs := make([]graph.NodeID, len(vehicles))
	for i, loc := range vehicles {
		nid, pos, err := resolveLocation(m, loc.NodeID, loc.Lon, loc.Lat)
		if err != nil {
			return nil, err
		}
		starts[i] = anneal.Vehicle{Start: nid, Position: pos}
		startIDs[i] = nid
	}

	m.G.FixSCCs(startIDs, dedirect)

	driver := anneal.NewDriver(m.G, starts, snowy, false, params)
	tours := driver.Run()

	out := make([][]PathSegment, len(tours))
	for i, tour := range tours {
		out[i] = toPathSegments(m, graph.PathToNodes(tour, startIDs[i]))
	}
	return out, nil
}

// dedirect satisfies FixSCCs' weak-link patch: every edge here is
// already undirected, so this is only ever called on the (never true)
// directed case and returns its input unchanged but for the flag.
func dedirect(e graph.Edge) graph.Edge { e.Directed = false; return e }

// discriminatorID resolves a discriminator tag to the internal id of
// the node it names. Per spec.md §3 a discriminator is itself a node
// id, so it must already be registered; it is never minted.
func discriminatorID(m *idmap.Map, tag string) (graph.NodeID, error) {
	if tag == "" {
		return graph.NoDiscriminator, nil
	}
	nid, ok := m.ID2NID(tag)
	if !ok {
		return 0, fmt.Errorf("%w: discriminator %s", ErrUnknownNode, tag)
	}
	return nid, nil
}

func resolveLocation(m *idmap.Map, nodeID string, lon, lat float64) (graph.NodeID, r2.Vec, error) {
	if nodeID != "" {
		nid, ok := m.ID2NID(nodeID)
		if !ok {
			return 0, r2.Vec{}, fmt.Errorf("%w: %s", ErrUnknownNode, nodeID)
		}
		if len(m.G.GetEdges(nid)) == 0 {
			return 0, r2.Vec{}, fmt.Errorf("%w: %s", ErrOrphanNode, nodeID)
		}
		node, _ := m.G.Node(nid)
		return nid, node.Position, nil
	}
	pos := r2.Vec{X: lon, Y: lat}
	best, ok := nearestNonOrphan(m, pos)
	if !ok {
		return 0, r2.Vec{}, ErrNoNodes
	}
	node, _ := m.G.Node(best)
	return best, node.Position, nil
}

// nearestNonOrphan scans nodes in ascending NodeID order so a tied
// distance always resolves the same way for a given input.
func nearestNonOrphan(m *idmap.Map, pos r2.Vec) (graph.NodeID, bool) {
	ids := m.G.Nodes()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var best graph.NodeID
	bestDist := math.Inf(1)
	found := false
	for _, nid := range ids {
		if len(m.G.GetEdges(nid)) == 0 {
			continue
		}
		node, _ := m.G.Node(nid)
		d := r2.Norm2(r2.Sub(node.Position, pos))
		if !found || d < bestDist {
			bestDist = d
			best = nid
			found = true
		}
	}
	return best, found
}

func toPathSegments(m *idmap.Map, visits []graph.Visit) []PathSegment {
	out := make([]PathSegment, len(visits))
	for i, v := range visits {
		id, _ := m.NID2ID(v.Node)
		seg := PathSegment{Node: id}
		if v.HasEdge && v.Via.Discriminator != graph.NoDiscriminator {
			seg.Discriminator, _ = m.NID2ID(v.Via.Discriminator)
		}
		out[i] = seg
	}
	return out
}
