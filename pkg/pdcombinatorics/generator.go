package pdcombinatorics

import (
	"github.com/lintang-b-s/ridepool/pkg"
	"github.com/lintang-b-s/ridepool/pkg/datastructure"
)

// Generator lazily yields pickup and drop-off orderings. A generator is stateful, finite, not restartable
// and must be used by one goroutine. Each sequence returned by Next is a fresh slice.
type Generator interface {
	HasNext() bool
	Next() []datastructure.Node
}

// NewGenerator builds the generator of strategy for inserting requests into v's plan.
// Unknown strategies fall back to insertion.
func NewGenerator(strategy string, ctx *datastructure.Context, v *datastructure.Vehicle,
	requests []*datastructure.Request, source PermutationSource) Generator {
	switch strategy {
	case pkg.PD_PERMUTATION:
		return NewPermutationsFromVehicle(ctx, requests, v, source)
	default:
		return NewInsertionGroup(requests, v)
	}
}

// Collect drains g.
func Collect(g Generator) [][]datastructure.Node {
	res := make([][]datastructure.Node, 0)
	for g.HasNext() {
		res = append(res, g.Next())
	}
	return res
}
