package pdcombinatorics

import (
	"sort"

	"github.com/lintang-b-s/ridepool/pkg/datastructure"
)

// Permutations yields every precedence respecting ordering of the seed
// [PK_1..PK_n, DP_1..DP_n, DP_p1..DP_pm] by applying the index permutations of a PermutationSource.
type Permutations struct {
	seed    []datastructure.Node
	indices IndexIterator
}

// NewPermutations builds the seed from requests and onboard passengers, each ordered by id.
func NewPermutations(requests, passengers []*datastructure.Request, source PermutationSource) *Permutations {
	reqs := sortedById(requests)
	pax := sortedById(passengers)

	seed := make([]datastructure.Node, 0, 2*len(reqs)+len(pax))
	for _, r := range reqs {
		seed = append(seed, r.GetPickup())
	}
	for _, r := range reqs {
		seed = append(seed, r.GetDropoff())
	}
	for _, r := range pax {
		seed = append(seed, r.GetDropoff())
	}

	return &Permutations{
		seed:    seed,
		indices: source.Indices(len(reqs), len(pax)),
	}
}

// NewPermutationsFromVehicle reorders the plan of v together with requests: requests still to be picked
// up by v join requests, passengers onboard only need their drop-off.
func NewPermutationsFromVehicle(ctx *datastructure.Context, requests []*datastructure.Request,
	v *datastructure.Vehicle, source PermutationSource) *Permutations {
	all := make([]*datastructure.Request, 0, len(requests))
	all = append(all, requests...)
	passengers := make([]*datastructure.Request, 0)

	if visit := v.GetVisit(); visit != nil {
		for _, r := range visit.PendingRequests() {
			all = append(all, ctx.Request(r))
		}
		for _, r := range visit.Passengers() {
			passengers = append(passengers, ctx.Request(r))
		}
	}
	return NewPermutations(all, passengers, source)
}

func (p *Permutations) HasNext() bool {
	return p.indices.HasNext()
}

func (p *Permutations) Next() []datastructure.Node {
	idx := p.indices.Next()
	if idx == nil {
		return nil
	}
	res := make([]datastructure.Node, len(idx))
	for k, pos := range idx {
		res[k] = p.seed[pos]
	}
	return res
}

func sortedById(requests []*datastructure.Request) []*datastructure.Request {
	res := make([]*datastructure.Request, len(requests))
	copy(res, requests)
	sort.Slice(res, func(i, j int) bool {
		return res[i].GetId() < res[j].GetId()
	})
	return res
}
