package datastructure

import (
	"errors"
	"testing"

	"github.com/lintang-b-s/ridepool/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGraph(nRequests, nVehicles int) *CompatibilityGraph {
	g := NewCompatibilityGraph()
	for i := 0; i < nRequests; i++ {
		g.AddVertex(NewRequestVertex(i))
	}
	for i := 0; i < nVehicles; i++ {
		g.AddVertex(NewVehicleVertex(i))
	}
	return g
}

func TestAddEdgeKeepsLighter(t *testing.T) {
	g := newTestGraph(2, 1)

	require.NoError(t, g.AddEdge(NewRREdge(1, 0, 30)))
	require.NoError(t, g.AddEdge(NewRREdge(0, 1, 50)))
	e, ok := g.EdgeBetween(NewRequestVertex(1), NewRequestVertex(0))
	require.True(t, ok)
	assert.Equal(t, 30, e.GetWeight())

	require.NoError(t, g.AddEdge(NewRREdge(0, 1, 10)))
	e, _ = g.EdgeBetween(NewRequestVertex(0), NewRequestVertex(1))
	assert.Equal(t, 10, e.GetWeight())
	assert.Equal(t, 1, g.NumberOfEdges())

	assert.True(t, errors.Is(g.AddEdge(NewRREdge(0, 0, 1)), util.ErrBadParamInput))
	assert.True(t, errors.Is(g.AddEdge(NewRVEdge(3, 0, 1, false)), util.ErrNotFound))
}

func TestEdgesOfOrdering(t *testing.T) {
	g := newTestGraph(3, 3)
	require.NoError(t, g.AddEdge(NewRVEdge(2, 0, 5, false)))
	require.NoError(t, g.AddEdge(NewRVEdge(0, 0, 5, false)))
	require.NoError(t, g.AddEdge(NewRVEdge(1, 0, 1, false)))
	require.NoError(t, g.AddEdge(NewRREdge(0, 2, 5)))

	got := g.EdgesOf(NewRequestVertex(0))
	require.Len(t, got, 4)
	others := make([]VertexId, len(got))
	for i, e := range got {
		others[i] = e.Other(NewRequestVertex(0))
	}
	assert.Equal(t, []VertexId{
		NewVehicleVertex(1),
		NewRequestVertex(2),
		NewVehicleVertex(0),
		NewVehicleVertex(2),
	}, others)
}

func TestRequestMaps(t *testing.T) {
	g := newTestGraph(3, 2)
	require.NoError(t, g.SetRVEdges(0, []Edge{NewRVEdge(1, 0, 9, true), NewRVEdge(0, 0, 2, false)}))
	require.NoError(t, g.SetRREdges(0, []Edge{NewRREdge(0, 2, 4), NewRREdge(0, 1, 6)}))
	require.NoError(t, g.SetRVEdges(1, []Edge{}))

	assert.Equal(t, map[int][]int{0: {1, 0}}, g.RequestToVehicles())
	assert.Equal(t, map[int][]int{0: {1, 2}, 1: {0}, 2: {0}}, g.RequestToRequests())
	assert.True(t, g.RVEdges(0)[0].IsHiringEdge())
	assert.Equal(t, 4, g.NumberOfEdges())
	assert.Equal(t, "#nodes = 5, #edges = 4, avg. RR targets = 1.33, avg. RV links = 0.67", g.String())
}

func TestVerticesSorted(t *testing.T) {
	g := NewCompatibilityGraph()
	g.AddVertex(NewVehicleVertex(1))
	g.AddVertex(NewRequestVertex(2))
	g.AddVertex(NewVehicleVertex(0))
	g.AddVertex(NewRequestVertex(0))
	g.AddVertex(NewRequestVertex(0))

	assert.Equal(t, []VertexId{
		NewRequestVertex(0), NewRequestVertex(2), NewVehicleVertex(0), NewVehicleVertex(1),
	}, g.Vertices())
}

func TestRRListsBoundedPerSource(t *testing.T) {
	g := newTestGraph(3, 0)
	require.NoError(t, g.SetRREdges(0, []Edge{NewRREdge(0, 2, 5)}))
	require.NoError(t, g.SetRREdges(1, []Edge{NewRREdge(1, 2, 7)}))

	assert.Len(t, g.RREdges(0), 1)
	assert.Len(t, g.RREdges(1), 1)
	assert.Empty(t, g.RREdges(2))
	assert.Equal(t, []int{0, 1}, g.RequestToRequests()[2])
	assert.Equal(t, 2, g.Degree(NewRequestVertex(2)))
}
