package pdcombinatorics

import (
	"sort"

	"github.com/lintang-b-s/ridepool/pkg/datastructure"
)

// InsertionGroup inserts several requests into a vehicle plan one at a time. Each partial sequence of the
// generator on top of the stack seeds a new SingleInsertion for the next request, depth first.
type InsertionGroup struct {
	stack   []*SingleInsertion
	pending []*datastructure.Request
}

// NewInsertionGroup inserts requests ordered by pickup earliest time descending, then by id.
func NewInsertionGroup(requests []*datastructure.Request, v *datastructure.Vehicle) *InsertionGroup {
	sorted := make([]*datastructure.Request, len(requests))
	copy(sorted, requests)
	sort.SliceStable(sorted, func(i, j int) bool {
		ei, ej := sorted[i].GetPickup().GetEarliest(), sorted[j].GetPickup().GetEarliest()
		if ei != ej {
			return ei > ej
		}
		return sorted[i].GetId() < sorted[j].GetId()
	})

	g := &InsertionGroup{
		stack: make([]*SingleInsertion, 0, len(sorted)),
	}
	if len(sorted) == 0 {
		return g
	}
	g.stack = append(g.stack, NewSingleInsertionFromVehicle(sorted[0], v))
	g.pending = sorted[1:]
	return g
}

func (g *InsertionGroup) HasNext() bool {
	return len(g.stack) > 0
}

func (g *InsertionGroup) Next() []datastructure.Node {
	if !g.HasNext() {
		return nil
	}
	g.push()

	top := g.stack[len(g.stack)-1]
	res := top.Next()
	g.popExhausted()
	return res
}

func (g *InsertionGroup) push() {
	for len(g.pending) > 0 {
		seq := g.stack[len(g.stack)-1].Next()
		g.stack = append(g.stack, NewSingleInsertion(g.pending[0], seq))
		g.pending = g.pending[1:]
	}
}

func (g *InsertionGroup) popExhausted() {
	for len(g.stack) > 0 && !g.stack[len(g.stack)-1].HasNext() {
		exhausted := g.stack[len(g.stack)-1]
		g.stack = g.stack[:len(g.stack)-1]
		g.pending = append([]*datastructure.Request{exhausted.Request()}, g.pending...)
	}
}
