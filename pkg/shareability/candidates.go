package shareability

import (
	"github.com/lintang-b-s/ridepool/pkg/geo"
	"github.com/lintang-b-s/ridepool/pkg/spatialindex"
	"go.uber.org/zap"
)

// candidateVehicles maps every request of the round to the vehicles worth testing against it.
// Without a locator or radius every vehicle is a candidate. Otherwise a vehicle is a candidate when it is
// within CandidateRadiusKm of the pickup, when its position cannot be located, or when it is hireable.
func (b *Builder) candidateVehicles(r *round) map[int][]int {
	res := make(map[int][]int, len(r.requests))
	if b.locate == nil || b.cfg.CandidateRadiusKm <= 0 {
		for _, req := range r.requests {
			res[req] = r.vehicles
		}
		return res
	}

	positions := make(map[int]geo.Coordinate, len(r.vehicles))
	always := make([]int, 0)
	for _, vi := range r.vehicles {
		v := r.sim.Vehicle(vi)
		c, ok := b.locate(v.GetPosition().GetNetworkId())
		if !ok || v.IsHireable() {
			always = append(always, vi)
			continue
		}
		positions[vi] = c
	}
	index := spatialindex.NewVehicleIndex()
	index.Build(positions, b.log)
	b.log.Debug("vehicles outside the candidate index", zap.Int("unindexed", len(always)))

	for _, req := range r.requests {
		c, ok := b.locate(r.sim.Request(req).GetPickup().GetNetworkId())
		if !ok {
			res[req] = r.vehicles
			continue
		}
		near := index.SearchWithinRadius(c.Lat, c.Lon, b.cfg.CandidateRadiusKm)
		res[req] = mergeSorted(near, always)
	}
	return res
}

func mergeSorted(a, b []int) []int {
	res := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] < b[j] {
			res = append(res, a[i])
			i++
		} else {
			res = append(res, b[j])
			j++
		}
	}
	res = append(res, a[i:]...)
	return append(res, b[j:]...)
}
