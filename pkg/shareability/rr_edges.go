package shareability

import (
	"github.com/lintang-b-s/ridepool/pkg"
	da "github.com/lintang-b-s/ridepool/pkg/datastructure"
	"github.com/lintang-b-s/ridepool/pkg/util"
)

// rrEdges pairs the request at position pos of the round with every later request.
func (b *Builder) rrEdges(r *round, pos int) rrResult {
	var res rrResult
	i := r.requests[pos]
	r1 := r.sim.Request(i)
	if !r1.IsSharingAllowed() {
		return rrResult{edges: []da.Edge{}}
	}

	edges := make([]da.Edge, 0)
	for _, j := range r.requests[pos+1:] {
		r2 := r.sim.Request(j)
		if !r2.IsSharingAllowed() {
			continue
		}
		delay, checked, feasible := b.bestPairDelay(r, r1, r2)
		res.stats.Checked += checked
		res.stats.Feasible += feasible
		if feasible > 0 {
			edges = append(edges, da.NewRREdge(i, j, delay))
		}
	}

	res.edges = pruneEdges(edges, b.cfg.MaxEdgesRR)
	return res
}

// pairOrderings lists the six orderings of two requests with each pickup before its drop-off.
func pairOrderings(r1, r2 *da.Request) [6][4]da.Node {
	pk1, dp1 := r1.GetPickup(), r1.GetDropoff()
	pk2, dp2 := r2.GetPickup(), r2.GetDropoff()
	return [6][4]da.Node{
		{pk1, pk2, dp2, dp1},
		{pk1, pk2, dp1, dp2},
		{pk1, dp1, pk2, dp2},
		{pk2, pk1, dp1, dp2},
		{pk2, pk1, dp2, dp1},
		{pk2, dp2, pk1, dp1},
	}
}

// bestPairDelay runs the orderings of r1 and r2 on an empty vehicle of the configured capacity waiting at
// the first pickup, without deadline. It returns the lowest delay and how many orderings were feasible.
func (b *Builder) bestPairDelay(r *round, r1, r2 *da.Request) (int, int, int) {
	now := r.sim.GetCurrentTime()
	best, checked, feasible := pkg.NO_PATH, 0, 0

	for _, ordering := range pairOrderings(r1, r2) {
		first := ordering[0]
		startTime := util.Max(now, first.GetEarliest())

		checked++
		delay, ok := r.checker.CheckSequence(ordering[:], startTime, first.GetLoad(), b.cfg.VehicleCapacity, pkg.INF_TIME)
		if !ok {
			continue
		}
		if feasible == 0 || delay < best {
			best = delay
		}
		feasible++
	}
	return best, checked, feasible
}
