package sidewalk

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
	// ErrUnknownNode indicates a segment endpoint, a snow-status
	// endpoint, or an explicit vehicle location, refers to a node id
	// that was never registered.
	ErrUnknownNode = errors.New("sidewalk: unknown node id")
	// ErrOrphanNode indicates an explicit vehicle location resolves to a
	// node with no incident edges.
	ErrOrphanNode = errors.New("sidewalk: location resolves to an orphan node")
	// ErrNoNodes indicates a coordinate-based vehicle location could not
	// be snapped because the graph has no non-orphan node at all.
	ErrNoNodes = errors.New("sidewalk: no non-orphan node to locate a vehicle against")
	// ErrBadSide indicates a SnowStatus named a side other than "left"
	// or "right".
	ErrBadSide = errors.New("sidewalk: side must be \"left\" or \"right\"")
)

// NodeInput is one intersection or endpoint.
type NodeInput struct {
	ID       string
	Lon, Lat float64
}

// Sidewalks flags which sidewalks exist alongside a road segment.
type Sidewalks struct {
	Left, Right bool
}

// SegmentInput is one road segment, contributing a road edge and up to
// two sidewalk edges.
type SegmentInput struct {
	P1, P2        string
	Discriminator string
	Directed      bool
	Distance      float64
	Sidewalks     Sidewalks
}

// SnowStatus records the current snow depth on a sidewalk. Side must
// be "left" or "right". Depth 0 means clear.
type SnowStatus struct {
	P1, P2        string
	Discriminator string
	Side          string
	Depth         float64
}

// Location is a vehicle's starting point: either an explicit node id
// (NodeID non-empty) or raw coordinates.
type Location struct {
	NodeID   string
	Lon, Lat float64
}

// Vehicles groups the two fleets the sidewalk solver accepts: plows
// that drive the road network, and plows that drive the sidewalks.
type Vehicles struct {
	Road     []Location
	Sidewalk []Location
}

// PathSegment is one stop of a vehicle's output route. Side is "left",
// "right", or empty for a road-network stop.
type PathSegment struct {
	Node          string
	Discriminator string
	Side          string
}

type segKey struct {
	a, b, disc graph.NodeID
	side       graph.Side
}

func normKey(a, b, disc graph.NodeID, side graph.Side) segKey {
	if a > b {
		a, b = b, a
	}
	return segKey{a: a, b: b, disc: disc, side: side}
}

func sideOf(s string) (graph.Side, error) {
	switch s {
	case "left":
		return graph.SideLeftSidewalk, nil
	case "right":
		return graph.SideRightSidewalk, nil
	default:
		return graph.SideNone, fmt.Errorf("%w: got %q", ErrBadSide, s)
	}
}

// Build assembles the combined road/sidewalk graph, determines which
// sidewalk edges are snowy, runs the annealing driver over the
// combined road-then-sidewalk fleet, and returns one output route per
// vehicle in that order. defaultDepth stands in for any sidewalk edge
// with no matching SnowStatus entry.
func Build(nodes []NodeInput, segments []SegmentInput, snow []SnowStatus, defaultDepth float64, vehicles Vehicles, params anneal.Params) ([][]PathSegment, error) {
	m := idmap.New()
	for _, n := range nodes {
		m.AddNode(n.ID, r2.Vec{X: n.Lon, Y: n.Lat})
	}

	depths := make(map[segKey]float64, len(snow))
	for _, s := range snow {
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
		side, err := sideOf(s.Side)
		if err != nil {
			return nil, err
		}
		depths[normKey(p1, p2, disc, side)] = s.Depth
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

		roadSide := graph.SideRoadTwoWay
		if s.Directed {
			roadSide = graph.SideRoadOneWay
		}
		road := graph.Edge{P1: p1, P2: p2, Discriminator: disc, Directed: s.Directed, Weight: s.Distance, Side: roadSide}
		if err := m.G.AddEdge(road); err != nil {
			return nil, err
		}

		if s.Sidewalks.Left {
			if err := addSidewalk(m, snowy, p1, p2, disc, graph.SideLeftSidewalk, s.Distance, depths, defaultDepth); err != nil {
				return nil, err
			}
		}
		if s.Sidewalks.Right {
			if err := addSidewalk(m, snowy, p1, p2, disc, graph.SideRightSidewalk, s.Distance, depths, defaultDepth); err != nil {
				return nil, err
			}
		}
	}

	locs := make([]Location, 0, len(vehicles.Road)+len(vehicles.Sidewalk))
	locs = append(locs, vehicles.Road...)
	locs = append(locs, vehicles.Sidewalk...)

	starts := make([]anneal.Vehicle, len(locs))
	startIDs := make([]graph.NodeID, len(locs))
	for i, loc := range locs {
		nid, pos, err := resolveLocation(m, loc.NodeID, loc.Lon, loc.Lat)
		if err != nil {
			return nil, err
		}
		starts[i] = anneal.Vehicle{Start: nid, Position: pos}
		startIDs[i] = nid
	}

	m.G.FixSCCs(startIDs, dedirect)
	// FixSCCs may have flipped some snowy edge's Directed bit (the
	// weak-link patch); resync so alloc/solve see the graph's live copy.
	snowy = resyncDirectionality(m.G, snowy)

	driver := anneal.NewDriver(m.G, starts, snowy, true, params)
	tours := driver.Run()

	out := make([][]PathSegment, len(tours))
	for i, tour := range tours {
		out[i] = toPathSegments(m, graph.PathToNodes(tour, startIDs[i]))
	}
	return out, nil
}

func addSidewalk(m *idmap.Map, snowy pwrp.EdgeSet, p1, p2, disc graph.NodeID, side graph.Side, distance float64, depths map[segKey]float64, defaultDepth float64) error {
	e := graph.Edge{P1: p1, P2: p2, Discriminator: disc, Directed: false, Weight: distance, Side: side}
	if err := m.G.AddEdge(e); err != nil {
		return err
	}
	depth, explicit := depths[normKey(p1, p2, disc, side)]
	if !explicit {
		depth = defaultDepth
	}
	if depth > 0 {
		snowy.Add(e)
	}
	return nil
}

// dedirect satisfies FixSCCs' weak-link patch: every edge it is ever
// called on is the one-way road edge (the only directed edge kind this
// specialisation produces). Side is left untouched — PatchSCCs
// requires dedirect's output to keep the input's identity, and Side is
// part of that identity.
func dedirect(e graph.Edge) graph.Edge {
	e.Directed = false
	return e
}

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

// resyncDirectionality rebuilds set from the graph's current edges,
// so any member whose Directed bit FixSCCs flipped is carried forward
// correctly.
func resyncDirectionality(g *graph.Graph[idmap.Node], set pwrp.EdgeSet) pwrp.EdgeSet {
	out := pwrp.NewEdgeSet()
	for _, e := range set.Sorted() {
		for _, live := range g.GetEdgesBetween(e.P1, e.P2) {
			if graph.KeyOf(live) == graph.KeyOf(e) {
				out.Add(live)
				break
			}
		}
	}
	return out
}

func sideLabel(s graph.Side) string {
	switch s {
	case graph.SideLeftSidewalk:
		return "left"
	case graph.SideRightSidewalk:
		return "right"
	default:
		return ""
	}
}

func toPathSegments(m *idmap.Map, visits []graph.Visit) []PathSegment {
	out := make([]PathSegment, len(visits))
	for i, v := range visits {
		id, _ := m.NID2ID(v.Node)
		seg := PathSegment{Node: id}
		if v.HasEdge {
			if v.Via.Discriminator != graph.NoDiscriminator {
				seg.Discriminator, _ = m.NID2ID(v.Via.Discriminator)
			}
			seg.Side = sideLabel(v.Via.Side)
		}
		out[i] = seg
	}
	return out
}
