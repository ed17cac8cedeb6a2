package idmap

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vaskrai/mwrpp/graph"
)

// Node is the payload a Map's Graph carries per node: its external
// identifier and its geographic position. The solver itself only ever
// reads Position; translating output back out of the lightweight id
// space goes through Map.NID2ID, not through ExternalID.
type Node struct {
	ExternalID string
	Position   r2.Vec
}

// Map is the Id Adapter: it owns the external-id -> internal-id table
// and a graph.IDGen, and delegates all node storage to G.
type Map struct {
	G     *graph.Graph[Node]
	gen   *graph.IDGen
	toNID map[string]graph.NodeID
	toID  map[graph.NodeID]string
}

// New returns an empty Map backed by a fresh graph.Graph and id
// generator.
func New() *Map {
	return &Map{
		G:     graph.NewGraph[Node](),
		gen:   graph.NewIDGen(),
		toNID: make(map[string]graph.NodeID),
		toID:  make(map[graph.NodeID]string),
	}
}

// AddNode registers external id with the given position. Calling it
// again with the same id replaces the stored position but preserves the
// previously allocated internal id — id allocation is keyed on external
// id, never on position.
func (m *Map) AddNode(id string, pos r2.Vec) graph.NodeID {
	nid, ok := m.toNID[id]
	if !ok {
		nid = m.gen.Next()
		m.toNID[id] = nid
		m.toID[nid] = id
	}
	m.G.AddNode(nid, Node{ExternalID: id, Position: pos})
	return nid
}

// ID2NID returns the internal id for an external id, and whether it is
// known.
func (m *Map) ID2NID(id string) (graph.NodeID, bool) {
	nid, ok := m.toNID[id]
	return nid, ok
}

// NID2ID returns the external id for an internal id, and whether it is
// known.
func (m *Map) NID2ID(nid graph.NodeID) (string, bool) {
	id, ok := m.toID[nid]
	return id, ok
}

// NID2Node returns the full node payload for an internal id, and
// whether it is known.
func (m *Map) NID2Node(nid graph.NodeID) (Node, bool) {
	return m.G.Node(nid)
}
