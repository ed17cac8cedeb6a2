package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vaskrai/mwrpp/graph"
)

func unitWeight(e graph.Edge) (float64, bool) { return e.Weight, true }

func triangle(t *testing.T) (*graph.Graph[string], graph.NodeID, graph.NodeID, graph.NodeID) {
	g := graph.NewGraph[string]()
	a, b, c := graph.NodeID(0), graph.NodeID(1), graph.NodeID(2)
	g.AddNode(a, "A")
	g.AddNode(b, "B")
	g.AddNode(c, "C")
	require.NoError(t, g.AddEdge(graph.Edge{P1: a, P2: b, Discriminator: graph.NoDiscriminator, Weight: 1}))
	require.NoError(t, g.AddEdge(graph.Edge{P1: b, P2: c, Discriminator: graph.NoDiscriminator, Weight: 1}))
	require.NoError(t, g.AddEdge(graph.Edge{P1: a, P2: c, Discriminator: graph.NoDiscriminator, Weight: 1}))
	return g, a, b, c
}

func TestAddEdgeRejectsUnknownEndpoint(t *testing.T) {
	g := graph.NewGraph[string]()
	g.AddNode(0, "A")
	err := g.AddEdge(graph.Edge{P1: 0, P2: 1})
	require.ErrorIs(t, err, graph.ErrUnknownEndpoint)
}

func TestEdgesDeduplicatedAcrossBuckets(t *testing.T) {
	g, a, b, _ := triangle(t)
	require.Len(t, g.GetEdges(a), 2)
	require.Len(t, g.GetEdges(b), 2)
	require.Len(t, g.Edges(), 3)
	require.Equal(t, 3, g.EdgeCount())
}

func TestCyclicEdgeStoredOnce(t *testing.T) {
	g := graph.NewGraph[string]()
	g.AddNode(0, "A")
	loop := graph.Edge{P1: 0, P2: 0, Discriminator: graph.NoDiscriminator}
	require.NoError(t, g.AddEdge(loop))
	require.Len(t, g.GetEdges(0), 1)
	require.Len(t, g.Edges(), 1)
}

func TestGetEdgesUnknownNodeIsEmpty(t *testing.T) {
	g := graph.NewGraph[string]()
	require.Empty(t, g.GetEdges(42))
}

func TestEdgeIdentityExcludesWeightAndDirection(t *testing.T) {
	e1 := graph.Edge{P1: 1, P2: 2, Discriminator: graph.NoDiscriminator, Weight: 5, Directed: true}
	e2 := graph.Edge{P1: 1, P2: 2, Discriminator: graph.NoDiscriminator, Weight: 99, Directed: false}
	require.Equal(t, graph.KeyOf(e1), graph.KeyOf(e2))
}

func TestDiscriminatorDistinguishesParallelEdges(t *testing.T) {
	e1 := graph.Edge{P1: 1, P2: 2, Discriminator: 10}
	e2 := graph.Edge{P1: 1, P2: 2, Discriminator: 11}
	require.NotEqual(t, graph.KeyOf(e1), graph.KeyOf(e2))
}

func TestPathfindTriangle(t *testing.T) {
	g, a, _, c := triangle(t)
	path, ok := g.Pathfind(a, c, false, unitWeight)
	require.True(t, ok)
	require.Len(t, path, 1)
}

func TestPathfindUnreachable(t *testing.T) {
	g := graph.NewGraph[string]()
	g.AddNode(0, "A")
	g.AddNode(1, "B")
	_, ok := g.Pathfind(0, 1, false, unitWeight)
	require.False(t, ok)
}

func TestPathfindRespectsDirection(t *testing.T) {
	g := graph.NewGraph[string]()
	g.AddNode(0, "A")
	g.AddNode(1, "B")
	require.NoError(t, g.AddEdge(graph.Edge{P1: 0, P2: 1, Discriminator: graph.NoDiscriminator, Directed: true, Weight: 1}))
	_, ok := g.Pathfind(1, 0, true, unitWeight)
	require.False(t, ok, "directed edge must not be traversable backward")
	_, ok = g.Pathfind(1, 0, false, unitWeight)
	require.True(t, ok, "direction is ignored when respectDirection is false")
}

func TestPathfindRegionsFindsClosestPair(t *testing.T) {
	g := graph.NewGraph[string]()
	for i := graph.NodeID(0); i < 4; i++ {
		g.AddNode(i, "n")
	}
	// chain 0-1-2-3
	require.NoError(t, g.AddEdge(graph.Edge{P1: 0, P2: 1, Discriminator: graph.NoDiscriminator, Weight: 1}))
	require.NoError(t, g.AddEdge(graph.Edge{P1: 1, P2: 2, Discriminator: graph.NoDiscriminator, Weight: 1}))
	require.NoError(t, g.AddEdge(graph.Edge{P1: 2, P2: 3, Discriminator: graph.NoDiscriminator, Weight: 1}))

	src, tgt, path, ok := g.PathfindRegions([]graph.NodeID{0}, []graph.NodeID{2, 3}, false, unitWeight)
	require.True(t, ok)
	require.Equal(t, graph.NodeID(0), src)
	require.Equal(t, graph.NodeID(2), tgt)
	require.Len(t, path, 2)
}

func TestPathToNodesRoundTrips(t *testing.T) {
	g, a, _, c := triangle(t)
	path, ok := g.Pathfind(a, c, false, unitWeight)
	require.True(t, ok)

	visits := graph.PathToNodes(path, a)
	require.Len(t, visits, len(path)+1)
	require.Equal(t, a, visits[0].Node)
	require.False(t, visits[0].HasEdge)
	for i := 1; i < len(visits); i++ {
		require.True(t, visits[i].HasEdge)
	}
	require.Equal(t, c, visits[len(visits)-1].Node)
}

func TestRetainNodesPrunesIncidentEdges(t *testing.T) {
	g, a, b, c := triangle(t)
	g.RetainNodes(func(id graph.NodeID, _ string) bool { return id != c })
	require.False(t, g.HasNode(c))
	require.Len(t, g.Edges(), 1)
	require.Len(t, g.GetEdgesBetween(a, b), 1)
}

func TestRetainNodesEdgesPrunesEdgesOnlyKeepsNodePayloads(t *testing.T) {
	g, a, b, c := triangle(t)
	g.RetainNodesEdges(func(id graph.NodeID, _ string) bool { return id != c })

	require.True(t, g.HasNode(c), "RetainNodesEdges must never delete a node payload")
	require.Len(t, g.Edges(), 1)
	require.Len(t, g.GetEdgesBetween(a, b), 1)
	require.Empty(t, g.GetEdges(c))
}

func TestStronglyConnectedComponentsDirectedCycle(t *testing.T) {
	g := graph.NewGraph[string]()
	for i := graph.NodeID(0); i < 3; i++ {
		g.AddNode(i, "n")
	}
	require.NoError(t, g.AddEdge(graph.Edge{P1: 0, P2: 1, Discriminator: graph.NoDiscriminator, Directed: true, Weight: 1}))
	require.NoError(t, g.AddEdge(graph.Edge{P1: 1, P2: 2, Discriminator: graph.NoDiscriminator, Directed: true, Weight: 1}))
	require.NoError(t, g.AddEdge(graph.Edge{P1: 2, P2: 0, Discriminator: graph.NoDiscriminator, Directed: true, Weight: 1}))

	sccs := g.StronglyConnectedComponents(true, true)
	require.Len(t, sccs, 1)
	require.Len(t, sccs[0], 3)
}

func TestStronglyConnectedComponentsPartitionCoversEveryNode(t *testing.T) {
	g, a, b, c := triangle(t)
	sccs := g.StronglyConnectedComponents(false, true)
	seen := map[graph.NodeID]bool{}
	for _, comp := range sccs {
		for _, n := range comp {
			require.False(t, seen[n], "node must belong to exactly one SCC")
			seen[n] = true
		}
	}
	require.True(t, seen[a] && seen[b] && seen[c])
}

func dedirect(e graph.Edge) graph.Edge {
	e.Directed = false
	return e
}

func TestFixSCCsMergesTwoComponentsJoinedByOneDirectedEdge(t *testing.T) {
	g := graph.NewGraph[string]()
	for i := graph.NodeID(0); i < 6; i++ {
		g.AddNode(i, "n")
	}
	// two undirected triangles {0,1,2} and {3,4,5}, joined 2->3 directed.
	for _, pair := range [][2]graph.NodeID{{0, 1}, {1, 2}, {0, 2}, {3, 4}, {4, 5}, {3, 5}} {
		require.NoError(t, g.AddEdge(graph.Edge{P1: pair[0], P2: pair[1], Discriminator: graph.NoDiscriminator, Weight: 1}))
	}
	require.NoError(t, g.AddEdge(graph.Edge{P1: 2, P2: 3, Discriminator: graph.NoDiscriminator, Directed: true, Weight: 1}))

	g.FixSCCs([]graph.NodeID{0}, dedirect)

	require.Equal(t, 6, g.NodeCount())
	sccs := g.StronglyConnectedComponents(false, true)
	require.Len(t, sccs, 1)

	bridge := g.GetEdgesBetween(2, 3)
	require.Len(t, bridge, 1)
	require.False(t, bridge[0].Directed)
}

func TestFixSCCsIsIdempotent(t *testing.T) {
	g := graph.NewGraph[string]()
	for i := graph.NodeID(0); i < 4; i++ {
		g.AddNode(i, "n")
	}
	require.NoError(t, g.AddEdge(graph.Edge{P1: 0, P2: 1, Discriminator: graph.NoDiscriminator, Directed: true, Weight: 1}))
	require.NoError(t, g.AddEdge(graph.Edge{P1: 1, P2: 2, Discriminator: graph.NoDiscriminator, Directed: true, Weight: 1}))
	require.NoError(t, g.AddEdge(graph.Edge{P1: 2, P2: 3, Discriminator: graph.NoDiscriminator, Directed: true, Weight: 1}))

	g.FixSCCs([]graph.NodeID{0}, dedirect)
	before := g.Edges()

	g.FixSCCs([]graph.NodeID{0}, dedirect)
	after := g.Edges()

	require.ElementsMatch(t, before, after)
}

func TestFixSCCsDropsComponentsWithoutAVehicle(t *testing.T) {
	g := graph.NewGraph[string]()
	for i := graph.NodeID(0); i < 4; i++ {
		g.AddNode(i, "n")
	}
	require.NoError(t, g.AddEdge(graph.Edge{P1: 0, P2: 1, Discriminator: graph.NoDiscriminator, Weight: 1}))
	require.NoError(t, g.AddEdge(graph.Edge{P1: 2, P2: 3, Discriminator: graph.NoDiscriminator, Weight: 1}))
	// 0-1 and 2-3 are disjoint; only 0 has a vehicle.
	g.FixSCCs([]graph.NodeID{0}, dedirect)

	require.True(t, g.HasNode(0))
	require.True(t, g.HasNode(1))
	require.False(t, g.HasNode(2))
	require.False(t, g.HasNode(3))
}
