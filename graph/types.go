package graph

import "errors"

// Sentinel errors for graph operations. Mutation and query methods on
// unknown nodes/edges never panic; they return these (or a zero value)
// instead, per the "algorithms never throw" discipline the rest of the
// module follows.
var (
	// ErrUnknownEndpoint indicates AddEdge was given a P1 or P2 that is
	// not a registered node.
	ErrUnknownEndpoint = errors.New("graph: edge endpoint not registered")
)

// NodeID is the lightweight, monotonically assigned identifier nodes and
// edges are addressed by inside a Graph. External identifiers never
// appear here; see package idmap.
type NodeID uint64

// NoDiscriminator is the sentinel Discriminator value meaning "no
// discriminator" (i.e. at most one edge is expected between these
// endpoints, or the edge is not part of a parallel bundle).
const NoDiscriminator NodeID = ^NodeID(0)

// Side tags the role an edge plays in the sidewalk specialisation. It is
// part of every edge's identity (per spec) even though only the
// sidewalk specialisation ever sets it to something other than
// SideNone.
type Side uint8

const (
	// SideNone is the default: used by the aerial and road-plow
	// specialisations, and implied for edges the sidewalk
	// specialisation never touches.
	SideNone Side = iota
	// SideRoadTwoWay tags a bidirectional road edge in the sidewalk
	// specialisation.
	SideRoadTwoWay
	// SideRoadOneWay tags a directed road edge in the sidewalk
	// specialisation.
	SideRoadOneWay
	// SideLeftSidewalk tags the left-hand sidewalk edge of a road
	// segment.
	SideLeftSidewalk
	// SideRightSidewalk tags the right-hand sidewalk edge of a road
	// segment.
	SideRightSidewalk
)

// Edge connects two nodes. Two edges are equal, and hash identically,
// iff their (P1, P2, Discriminator, Side) tuples match — Weight and
// Directed are deliberately excluded, so an edge keeps its identity
// across a direction flip (see Graph.PatchSCCs) and regardless of which
// shortest-path weight function last touched it.
type Edge struct {
	P1, P2        NodeID
	Discriminator NodeID
	Directed      bool
	Weight        float64
	Side          Side
}

// Key is the comparable projection of Edge used for set/map membership.
type Key struct {
	P1, P2        NodeID
	Discriminator NodeID
	Side          Side
}

// KeyOf returns e's identity key.
func KeyOf(e Edge) Key {
	return Key{P1: e.P1, P2: e.P2, Discriminator: e.Discriminator, Side: e.Side}
}

// IsCyclic reports whether e is a self-loop.
func (e Edge) IsCyclic() bool { return e.P1 == e.P2 }

// Other returns the endpoint of e that is not u. Callers only invoke
// this when u is known to be one of e's endpoints; for a self-loop it
// returns u itself.
func (e Edge) Other(u NodeID) NodeID {
	if e.P1 == u {
		return e.P2
	}
	return e.P1
}

// IsOutgoing reports whether e may be left from u under the given
// direction policy: true for any undirected edge (or any edge when
// respectDirection is false), and true for a directed edge only when
// u == P1.
func (e Edge) IsOutgoing(u NodeID, respectDirection bool) bool {
	if !respectDirection || !e.Directed {
		return u == e.P1 || u == e.P2
	}
	return u == e.P1
}

// IsIncoming is the mirror of IsOutgoing: whether e may be entered at u.
func (e Edge) IsIncoming(u NodeID, respectDirection bool) bool {
	if !respectDirection || !e.Directed {
		return u == e.P1 || u == e.P2
	}
	return u == e.P2
}

// IDGen is a monotonic NodeID generator. The zero value starts
// allocating from 0. It is owned by whichever adapter constructs a
// Graph's nodes (see package idmap) so that lightweight ids are never
// reused even across multiple Graphs sharing one generator.
type IDGen struct {
	next NodeID
}

// NewIDGen returns a generator that starts at 0.
func NewIDGen() *IDGen { return &IDGen{} }

// Next reserves and returns the next NodeID.
func (g *IDGen) Next() NodeID {
	id := g.next
	g.next++
	return id
}
