package fly_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vaskrai/mwrpp/anneal"
	"github.com/vaskrai/mwrpp/fly"
)

func triangleNodes() []fly.NodeInput {
	return []fly.NodeInput{
		{ID: "a", Lon: 0, Lat: 0},
		{ID: "b", Lon: 1, Lat: 0},
		{ID: "c", Lon: 0, Lat: 1},
	}
}

func triangleSegments() []fly.SegmentInput {
	return []fly.SegmentInput{
		{P1: "a", P2: "b", Distance: 1},
		{P1: "b", P2: "c", Distance: 1},
		{P1: "a", P2: "c", Distance: 1},
	}
}

func TestBuildCoversEverySegmentFromExplicitStart(t *testing.T) {
	vehicles := []fly.Location{{NodeID: "a"}}
	params := anneal.New(anneal.WithSeed(5), anneal.WithAnnealing(anneal.Annealing{
		MainIterations: 5, FTIterations: 2, StartingTemperature: 2, CoolingFactor: 0.9,
	}))

	tours, err := fly.Build(triangleNodes(), triangleSegments(), vehicles, params)
	require.NoError(t, err)
	require.Len(t, tours, 1)

	visited := map[string]bool{}
	for _, seg := range tours[0] {
		visited[seg.Node] = true
	}
	for _, id := range []string{"a", "b", "c"} {
		require.True(t, visited[id], "node %s must appear in the route", id)
	}

	// Each pair of consecutive stops is one driven segment.
	driven := map[[2]string]bool{}
	for k := 1; k < len(tours[0]); k++ {
		p, q := tours[0][k-1].Node, tours[0][k].Node
		if p > q {
			p, q = q, p
		}
		driven[[2]string{p, q}] = true
	}
	for _, pair := range [][2]string{{"a", "b"}, {"b", "c"}, {"a", "c"}} {
		require.True(t, driven[pair], "segment %s-%s must be driven", pair[0], pair[1])
	}
}

func TestBuildSnapsCoordinateLocationToNearestNode(t *testing.T) {
	vehicles := []fly.Location{{Lon: 0.1, Lat: 0.1}}
	params := anneal.New(anneal.WithSeed(1), anneal.WithAnnealing(anneal.Annealing{
		MainIterations: 3, FTIterations: 2, StartingTemperature: 1, CoolingFactor: 0.9,
	}))

	tours, err := fly.Build(triangleNodes(), triangleSegments(), vehicles, params)
	require.NoError(t, err)
	require.NotEmpty(t, tours[0])
	require.Equal(t, "a", tours[0][0].Node, "0.1,0.1 is nearest to a")
}

func TestBuildRejectsUnknownSegmentEndpoint(t *testing.T) {
	segments := []fly.SegmentInput{{P1: "a", P2: "ghost", Distance: 1}}
	_, err := fly.Build(triangleNodes(), segments, []fly.Location{{NodeID: "a"}}, anneal.New())
	require.ErrorIs(t, err, fly.ErrUnknownNode)
}

func TestBuildRejectsOrphanExplicitLocation(t *testing.T) {
	nodes := append(triangleNodes(), fly.NodeInput{ID: "island", Lon: 9, Lat: 9})
	_, err := fly.Build(nodes, triangleSegments(), []fly.Location{{NodeID: "island"}}, anneal.New())
	require.ErrorIs(t, err, fly.ErrOrphanNode)
}

func TestBuildResolvesDiscriminatorToExistingNode(t *testing.T) {
	nodes := append(triangleNodes(), fly.NodeInput{ID: "mid", Lon: 0.5, Lat: 0})
	segments := []fly.SegmentInput{
		{P1: "a", P2: "b", Discriminator: "mid", Distance: 1},
	}
	tours, err := fly.Build(nodes, segments, []fly.Location{{NodeID: "a"}}, anneal.New(anneal.WithAnnealing(anneal.Annealing{
		MainIterations: 1, FTIterations: 1, StartingTemperature: 1, CoolingFactor: 1,
	})))
	require.NoError(t, err)
	require.NotEmpty(t, tours[0])
}
