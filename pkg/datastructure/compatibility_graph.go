package datastructure

import (
	"fmt"
	"sort"

	"github.com/lintang-b-s/ridepool/pkg/util"
)

// CompatibilityGraph is the undirected, simple, weighted shareability graph of a dispatch round.
type CompatibilityGraph struct {
	vertices []VertexId
	adj      map[VertexId]map[VertexId]Edge
	numEdges int

	// pruned per request lists, hiring edge first
	rvLists map[int][]Edge
	rrLists map[int][]Edge
}

func NewCompatibilityGraph() *CompatibilityGraph {
	return &CompatibilityGraph{
		vertices: make([]VertexId, 0),
		adj:      make(map[VertexId]map[VertexId]Edge),
		rvLists:  make(map[int][]Edge),
		rrLists:  make(map[int][]Edge),
	}
}

func (g *CompatibilityGraph) AddVertex(v VertexId) {
	if _, ok := g.adj[v]; ok {
		return
	}
	g.adj[v] = make(map[VertexId]Edge)
	g.vertices = append(g.vertices, v)
}

func (g *CompatibilityGraph) HasVertex(v VertexId) bool {
	_, ok := g.adj[v]
	return ok
}

// AddEdge inserts e. An existing edge between the same endpoints is replaced only when e is lighter.
func (g *CompatibilityGraph) AddEdge(e Edge) error {
	if e.from == e.to {
		return util.WrapErrorf(nil, util.ErrBadParamInput, "self loop on %s", e.from)
	}
	fromAdj, ok := g.adj[e.from]
	if !ok {
		return util.WrapErrorf(nil, util.ErrNotFound, "vertex %s", e.from)
	}
	toAdj, ok := g.adj[e.to]
	if !ok {
		return util.WrapErrorf(nil, util.ErrNotFound, "vertex %s", e.to)
	}

	if old, exists := fromAdj[e.to]; exists {
		if !e.Less(old) {
			return nil
		}
	} else {
		g.numEdges++
	}
	fromAdj[e.to] = e
	toAdj[e.from] = e
	return nil
}

// SetRVEdges stores the pruned RV list of request and adds its edges to the graph.
func (g *CompatibilityGraph) SetRVEdges(request int, edges []Edge) error {
	for _, e := range edges {
		if err := g.AddEdge(e); err != nil {
			return err
		}
	}
	g.rvLists[request] = edges
	return nil
}

// SetRREdges stores the pruned RR list of request (edges to higher request indices) and adds them to the graph.
func (g *CompatibilityGraph) SetRREdges(request int, edges []Edge) error {
	for _, e := range edges {
		if err := g.AddEdge(e); err != nil {
			return err
		}
	}
	g.rrLists[request] = edges
	return nil
}

// RVEdges returns the pruned vehicle edges of request. A hiring edge, if any, comes first.
func (g *CompatibilityGraph) RVEdges(request int) []Edge {
	return g.rvLists[request]
}

func (g *CompatibilityGraph) RREdges(request int) []Edge {
	return g.rrLists[request]
}

// EdgesOf returns the edges incident to v ordered by weight, then by the other endpoint.
func (g *CompatibilityGraph) EdgesOf(v VertexId) []Edge {
	adj := g.adj[v]
	res := make([]Edge, 0, len(adj))
	for _, e := range adj {
		res = append(res, e)
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].weight != res[j].weight {
			return res[i].weight < res[j].weight
		}
		return res[i].Other(v).Less(res[j].Other(v))
	})
	return res
}

func (g *CompatibilityGraph) EdgeBetween(a, b VertexId) (Edge, bool) {
	e, ok := g.adj[a][b]
	return e, ok
}

func (g *CompatibilityGraph) Degree(v VertexId) int {
	return len(g.adj[v])
}

// Vertices returns requests then vehicles, each by index.
func (g *CompatibilityGraph) Vertices() []VertexId {
	res := make([]VertexId, len(g.vertices))
	copy(res, g.vertices)
	sort.Slice(res, func(i, j int) bool {
		return res[i].Less(res[j])
	})
	return res
}

func (g *CompatibilityGraph) NumberOfVertices() int {
	return len(g.vertices)
}

func (g *CompatibilityGraph) NumberOfEdges() int {
	return g.numEdges
}

// RequestToRequests maps each request to the requests it can share a ride with, by index.
// Config.MaxEdgesRR bounds the per-source lists of RREdges, kept by the lower request index. A request can
// appear in the lists of many lower requests, so its entry here may hold more than MaxEdgesRR requests.
func (g *CompatibilityGraph) RequestToRequests() map[int][]int {
	res := make(map[int][]int)
	for v, adj := range g.adj {
		if !v.IsRequest() {
			continue
		}
		for w := range adj {
			if w.IsRequest() {
				res[v.Index] = append(res[v.Index], w.Index)
			}
		}
	}
	for r := range res {
		sort.Ints(res[r])
	}
	return res
}

// RequestToVehicles maps each request to its vehicles in pruned list order, hiring vehicle first.
func (g *CompatibilityGraph) RequestToVehicles() map[int][]int {
	res := make(map[int][]int)
	for r, edges := range g.rvLists {
		if len(edges) == 0 {
			continue
		}
		vs := make([]int, len(edges))
		for i, e := range edges {
			vs[i] = e.from.Index
		}
		res[r] = vs
	}
	for v := range g.adj {
		if !v.IsRequest() {
			continue
		}
		if _, ok := g.rvLists[v.Index]; ok {
			continue
		}
		for _, e := range g.EdgesOf(v) {
			if e.kind == EDGE_RV {
				res[v.Index] = append(res[v.Index], e.from.Index)
			}
		}
	}
	return res
}

func (g *CompatibilityGraph) String() string {
	nRequests, rrLinks, rvLinks := 0, 0, 0
	for v, adj := range g.adj {
		if !v.IsRequest() {
			continue
		}
		nRequests++
		for w := range adj {
			if w.IsRequest() {
				rrLinks++
			} else {
				rvLinks++
			}
		}
	}
	avgRR, avgRV := 0.0, 0.0
	if nRequests > 0 {
		avgRR = float64(rrLinks) / float64(nRequests)
		avgRV = float64(rvLinks) / float64(nRequests)
	}
	return fmt.Sprintf("#nodes = %d, #edges = %d, avg. RR targets = %.2f, avg. RV links = %.2f",
		len(g.vertices), g.numEdges, avgRR, avgRV)
}
