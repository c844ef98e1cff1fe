package pdcombinatorics

import (
	"testing"

	"github.com/lintang-b-s/ridepool/pkg"
	"github.com/lintang-b-s/ridepool/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequests(t *testing.T, ctx *datastructure.Context, ids ...int) []*datastructure.Request {
	t.Helper()
	q := datastructure.QoS{Id: "q", PkDelay: 300, DpDelay: 300, SharingAllowed: true}
	res := make([]*datastructure.Request, 0, len(ids))
	for _, id := range ids {
		w := datastructure.RequestWindows{PkEarliest: id, PkLatest: id + 300, DpEarliest: id, DpLatest: id + 600}
		idx, err := ctx.AddRequestWithWindows(id, 10*id, 10*id+1, 1, q, w)
		require.NoError(t, err)
		res = append(res, ctx.Request(idx))
	}
	return res
}

func sequenceSet(seqs [][]datastructure.Node) []string {
	res := make([]string, len(seqs))
	for i, s := range seqs {
		res[i] = datastructure.SequenceString(s)
	}
	return res
}

func assertDistinct(t *testing.T, seqs []string) {
	t.Helper()
	seen := make(map[string]struct{}, len(seqs))
	for _, s := range seqs {
		_, dup := seen[s]
		assert.False(t, dup, "duplicate sequence %s", s)
		seen[s] = struct{}{}
	}
}

func idleVehicle() *datastructure.Vehicle {
	return datastructure.NewVehicle(99, 4, datastructure.NewOriginNode(99, 0), 0)
}

func TestSingleInsertionEnumeratesAllPositions(t *testing.T) {
	ctx := datastructure.NewContext(0)
	reqs := newRequests(t, ctx, 1, 2, 3)
	base := []datastructure.Node{reqs[1].GetPickup(), reqs[1].GetDropoff(), reqs[2].GetDropoff()}

	testCases := []struct {
		name string
		base []datastructure.Node
		want int
	}{
		{name: "empty plan", base: []datastructure.Node{}, want: 1},
		{name: "one stop", base: base[:1], want: 3},
		{name: "three stops", base: base, want: 10},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			g := NewSingleInsertion(reqs[0], tt.base)
			assert.Equal(t, tt.want, g.Count())

			seqs := Collect(g)
			require.Len(t, seqs, tt.want)
			assertDistinct(t, sequenceSet(seqs))

			for _, s := range seqs {
				require.Len(t, s, len(tt.base)+2)
				pk, dp := -1, -1
				rest := make([]datastructure.Node, 0, len(tt.base))
				for pos, n := range s {
					switch {
					case n == reqs[0].GetPickup():
						pk = pos
					case n == reqs[0].GetDropoff():
						dp = pos
					default:
						rest = append(rest, n)
					}
				}
				assert.Less(t, pk, dp)
				assert.Equal(t, tt.base, rest, "plan order kept")
			}
		})
	}
}

func TestSingleInsertionFromVehicleSkipsWaypoint(t *testing.T) {
	ctx := datastructure.NewContext(0)
	reqs := newRequests(t, ctx, 1, 2)

	v := idleVehicle()
	v.SetLoad(1)
	v.SetVisit(datastructure.NewVisit(0, []datastructure.Node{
		datastructure.NewWaypointNode(ctx.NextWaypointId(), 5), reqs[1].GetDropoff(),
	}, 0, 0))

	seqs := sequenceSet(Collect(NewSingleInsertionFromVehicle(reqs[0], v)))
	assert.ElementsMatch(t, []string{
		"[PK1 DP1 DP2]",
		"[PK1 DP2 DP1]",
		"[DP2 PK1 DP1]",
	}, seqs)
}

func TestSingleRequestStrategiesAreEquivalent(t *testing.T) {
	ctx := datastructure.NewContext(0)
	reqs := newRequests(t, ctx, 7)
	v := idleVehicle()

	insertion := sequenceSet(Collect(NewGenerator(pkg.PD_INSERTION, ctx, v, reqs, NewEnumeratingSource())))
	permutation := sequenceSet(Collect(NewGenerator(pkg.PD_PERMUTATION, ctx, v, reqs, NewEnumeratingSource())))

	assert.Equal(t, []string{"[PK7 DP7]"}, insertion)
	assert.ElementsMatch(t, insertion, permutation)
}

func TestInsertionGroupMatchesPermutationsOnEmptyVehicle(t *testing.T) {
	testCases := []struct {
		name string
		ids  []int
	}{
		{name: "two requests", ids: []int{1, 2}},
		{name: "three requests", ids: []int{3, 1, 2}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			ctx := datastructure.NewContext(0)
			reqs := newRequests(t, ctx, tt.ids...)
			v := idleVehicle()

			insertion := sequenceSet(Collect(NewInsertionGroup(reqs, v)))
			permutation := sequenceSet(Collect(NewPermutations(reqs, nil, NewEnumeratingSource())))

			assert.Len(t, insertion, CountPermutations(len(reqs), 0))
			assertDistinct(t, insertion)
			assert.ElementsMatch(t, permutation, insertion)
		})
	}
}

func TestStrategiesWithOnePassengerOnboard(t *testing.T) {
	ctx := datastructure.NewContext(0)
	reqs := newRequests(t, ctx, 1, 2)

	v := idleVehicle()
	v.SetLoad(1)
	v.SetVisit(datastructure.NewVisit(0, []datastructure.Node{reqs[1].GetDropoff()}, 0, 0))

	insertion := sequenceSet(Collect(NewGenerator(pkg.PD_INSERTION, ctx, v, reqs[:1], NewEnumeratingSource())))
	permutation := sequenceSet(Collect(NewGenerator(pkg.PD_PERMUTATION, ctx, v, reqs[:1], NewEnumeratingSource())))

	assert.Len(t, permutation, CountPermutations(1, 1))
	assert.ElementsMatch(t, insertion, permutation)
}

func TestPermutationsFromVehicleReordersPendingPickups(t *testing.T) {
	ctx := datastructure.NewContext(0)
	reqs := newRequests(t, ctx, 1, 2, 3)

	v := idleVehicle()
	v.SetLoad(1)
	v.SetVisit(datastructure.NewVisit(0, []datastructure.Node{
		reqs[1].GetPickup(), reqs[2].GetDropoff(), reqs[1].GetDropoff(),
	}, 0, 0))

	seqs := Collect(NewPermutationsFromVehicle(ctx, reqs[:1], v, NewEnumeratingSource()))
	assert.Len(t, seqs, CountPermutations(2, 1))
	assertDistinct(t, sequenceSet(seqs))
	for _, s := range seqs {
		assert.Len(t, s, 5)
	}
}

func TestUnknownStrategyFallsBackToInsertion(t *testing.T) {
	ctx := datastructure.NewContext(0)
	reqs := newRequests(t, ctx, 1)

	g := NewGenerator("pd_unknown", ctx, idleVehicle(), reqs, NewEnumeratingSource())
	_, ok := g.(*InsertionGroup)
	assert.True(t, ok)
}

func TestInsertionGroupWithoutRequests(t *testing.T) {
	g := NewInsertionGroup(nil, idleVehicle())
	assert.False(t, g.HasNext())
	assert.Nil(t, g.Next())
}

func newTableRequests(t *testing.T) (*datastructure.Context, []*datastructure.Request) {
	t.Helper()
	ctx := datastructure.NewContext(0)
	return ctx, newRequests(t, ctx, 4, 5, 6)
}
