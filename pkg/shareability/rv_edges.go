package shareability

import (
	da "github.com/lintang-b-s/ridepool/pkg/datastructure"
	"github.com/lintang-b-s/ridepool/pkg/pdcombinatorics"
)

// rvEdges tests req against its candidate vehicles and keeps the best visit of each. Hireable vehicles
// only serve the request they were offered for and yield the hiring edge.
func (b *Builder) rvEdges(r *round, req int) rvResult {
	var res rvResult
	request := r.sim.Request(req)
	now := r.sim.GetCurrentTime()
	requests := []*da.Request{request}

	edges := make([]da.Edge, 0, len(r.candidates[req]))
	for _, vi := range r.candidates[req] {
		v := r.sim.Vehicle(vi)
		if v.IsHireable() && v.GetPromptedBy() != req {
			continue
		}

		gen := pdcombinatorics.NewGenerator(b.cfg.PDStrategy, r.sim, v, requests, b.source)
		visit, stats, ok := r.checker.BestVisit(v, now, gen)
		res.stats.Add(stats)
		if !ok {
			continue
		}

		if v.IsHireable() {
			e := da.NewRVEdge(vi, req, visit.GetDelay(), true)
			if !res.hasHiring || e.Less(res.hiring) {
				res.hiring = e
				res.hasHiring = true
			}
			continue
		}
		edges = append(edges, da.NewRVEdge(vi, req, visit.GetDelay(), false))
	}

	res.edges = pruneEdges(edges, b.cfg.MaxEdgesRV)
	return res
}
