package datastructure

import "fmt"

type VertexKind uint8

const (
	REQUEST_VERTEX VertexKind = iota
	VEHICLE_VERTEX
)

type VertexId struct {
	Kind  VertexKind
	Index int
}

func NewRequestVertex(index int) VertexId {
	return VertexId{Kind: REQUEST_VERTEX, Index: index}
}

func NewVehicleVertex(index int) VertexId {
	return VertexId{Kind: VEHICLE_VERTEX, Index: index}
}

func (v VertexId) IsRequest() bool {
	return v.Kind == REQUEST_VERTEX
}

func (v VertexId) Less(o VertexId) bool {
	if v.Kind != o.Kind {
		return v.Kind < o.Kind
	}
	return v.Index < o.Index
}

func (v VertexId) String() string {
	if v.Kind == REQUEST_VERTEX {
		return fmt.Sprintf("r%d", v.Index)
	}
	return fmt.Sprintf("v%d", v.Index)
}

type EdgeKind uint8

const (
	EDGE_RR EdgeKind = iota
	EDGE_RV
)

// Edge is an undirected compatibility edge weighted by the best known delay.
// RV edges go from the vehicle to the request, RR edges from the lower to the higher request index.
type Edge struct {
	from   VertexId
	to     VertexId
	weight int
	kind   EdgeKind
	hiring bool
}

func NewRREdge(r1, r2, weight int) Edge {
	if r2 < r1 {
		r1, r2 = r2, r1
	}
	return Edge{
		from:   NewRequestVertex(r1),
		to:     NewRequestVertex(r2),
		weight: weight,
		kind:   EDGE_RR,
	}
}

func NewRVEdge(vehicle, request, weight int, hiring bool) Edge {
	return Edge{
		from:   NewVehicleVertex(vehicle),
		to:     NewRequestVertex(request),
		weight: weight,
		kind:   EDGE_RV,
		hiring: hiring,
	}
}

func (e Edge) GetFrom() VertexId {
	return e.from
}

func (e Edge) GetTo() VertexId {
	return e.to
}

func (e Edge) GetWeight() int {
	return e.weight
}

func (e Edge) GetKind() EdgeKind {
	return e.kind
}

func (e Edge) IsHiringEdge() bool {
	return e.hiring
}

// Other returns the endpoint opposite to v.
func (e Edge) Other(v VertexId) VertexId {
	if e.from == v {
		return e.to
	}
	return e.from
}

// Less orders edges by weight, then by endpoints.
func (e Edge) Less(o Edge) bool {
	if e.weight != o.weight {
		return e.weight < o.weight
	}
	if e.from != o.from {
		return e.from.Less(o.from)
	}
	return e.to.Less(o.to)
}

func (e Edge) String() string {
	if e.hiring {
		return fmt.Sprintf("%s-%s(%d, hiring)", e.from, e.to, e.weight)
	}
	return fmt.Sprintf("%s-%s(%d)", e.from, e.to, e.weight)
}
