package roadplow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vaskrai/mwrpp/anneal"
	"github.com/vaskrai/mwrpp/roadplow"
)

func triangleNodes() []roadplow.NodeInput {
	return []roadplow.NodeInput{
		{ID: "a", Lon: 0, Lat: 0},
		{ID: "b", Lon: 1, Lat: 0},
		{ID: "c", Lon: 0, Lat: 1},
	}
}

func shortSchedule() anneal.Params {
	return anneal.New(anneal.WithSeed(2), anneal.WithAnnealing(anneal.Annealing{
		MainIterations: 5, FTIterations: 2, StartingTemperature: 2, CoolingFactor: 0.9,
	}))
}

func TestBuildOnlyPlowsSegmentsWithPositiveDepth(t *testing.T) {
	segments := []roadplow.SegmentInput{
		{P1: "a", P2: "b", Directed: false, Distance: 1},
		{P1: "b", P2: "c", Directed: false, Distance: 1},
		{P1: "a", P2: "c", Directed: false, Distance: 1},
	}
	snow := []roadplow.SnowStatus{
		{P1: "a", P2: "b", Depth: 3},
	}

	tours, err := roadplow.Build(triangleNodes(), segments, snow, 0, []roadplow.Location{{NodeID: "a"}}, shortSchedule())
	require.NoError(t, err)
	require.Len(t, tours, 1)

	visited := map[string]bool{}
	for _, seg := range tours[0] {
		visited[seg.Node] = true
	}
	require.True(t, visited["a"])
	require.True(t, visited["b"])
}

func TestBuildDefaultDepthMakesUnlistedSegmentsRequired(t *testing.T) {
	segments := []roadplow.SegmentInput{
		{P1: "a", P2: "b", Directed: false, Distance: 1},
		{P1: "b", P2: "c", Directed: false, Distance: 1},
		{P1: "a", P2: "c", Directed: false, Distance: 1},
	}

	tours, err := roadplow.Build(triangleNodes(), segments, nil, 1, []roadplow.Location{{NodeID: "a"}}, shortSchedule())
	require.NoError(t, err)

	visited := map[string]bool{}
	for _, seg := range tours[0] {
		visited[seg.Node] = true
	}
	for _, id := range []string{"a", "b", "c"} {
		require.True(t, visited[id])
	}
}

func TestBuildRespectsDirectedSegments(t *testing.T) {
	// a->b->c->a, all one-way, all snowy: a single vehicle at a must
	// traverse the whole directed cycle.
	segments := []roadplow.SegmentInput{
		{P1: "a", P2: "b", Directed: true, Distance: 1},
		{P1: "b", P2: "c", Directed: true, Distance: 1},
		{P1: "c", P2: "a", Directed: true, Distance: 1},
	}
	snow := []roadplow.SnowStatus{
		{P1: "a", P2: "b", Depth: 1},
		{P1: "b", P2: "c", Depth: 1},
		{P1: "c", P2: "a", Depth: 1},
	}

	tours, err := roadplow.Build(triangleNodes(), segments, snow, 0, []roadplow.Location{{NodeID: "a"}}, shortSchedule())
	require.NoError(t, err)
	require.NotEmpty(t, tours[0])
	require.Equal(t, "a", tours[0][0].Node)

	route := make([]string, len(tours[0]))
	for k, seg := range tours[0] {
		route[k] = seg.Node
	}
	require.Equal(t, []string{"a", "b", "c", "a"}, route)
}

func TestBuildRejectsUnknownSnowEndpoint(t *testing.T) {
	segments := []roadplow.SegmentInput{{P1: "a", P2: "b", Distance: 1}}
	snow := []roadplow.SnowStatus{{P1: "a", P2: "ghost", Depth: 1}}
	_, err := roadplow.Build(triangleNodes(), segments, snow, 0, []roadplow.Location{{NodeID: "a"}}, shortSchedule())
	require.ErrorIs(t, err, roadplow.ErrUnknownNode)
}
