package idmap_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vaskrai/mwrpp/idmap"
)

func TestAddNodeAllocatesMonotonicIds(t *testing.T) {
	m := idmap.New()
	a := m.AddNode("A", r2.Vec{X: 0, Y: 0})
	b := m.AddNode("B", r2.Vec{X: 1, Y: 1})
	require.NotEqual(t, a, b)
	require.True(t, m.G.HasNode(a))
	require.True(t, m.G.HasNode(b))
}

func TestAddNodeIsIdempotentOnExternalID(t *testing.T) {
	m := idmap.New()
	first := m.AddNode("A", r2.Vec{X: 0, Y: 0})
	second := m.AddNode("A", r2.Vec{X: 5, Y: 5})
	require.Equal(t, first, second)

	node, ok := m.NID2Node(first)
	require.True(t, ok)
	require.Equal(t, r2.Vec{X: 5, Y: 5}, node.Position, "re-adding replaces the payload but keeps the id")
}

func TestID2NIDAndNID2IDRoundTrip(t *testing.T) {
	m := idmap.New()
	nid := m.AddNode("A", r2.Vec{X: 0, Y: 0})

	gotNID, ok := m.ID2NID("A")
	require.True(t, ok)
	require.Equal(t, nid, gotNID)

	gotID, ok := m.NID2ID(nid)
	require.True(t, ok)
	require.Equal(t, "A", gotID)
}

func TestLookupsAreTotalOnMiss(t *testing.T) {
	m := idmap.New()
	_, ok := m.ID2NID("missing")
	require.False(t, ok)
	_, ok = m.NID2ID(999)
	require.False(t, ok)
	_, ok = m.NID2Node(999)
	require.False(t, ok)
}
