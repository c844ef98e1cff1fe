package spatialindex

import (
	"sort"

	"github.com/lintang-b-s/ridepool/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

// VehicleIndex is an r-tree over vehicle positions, used to pick the candidate vehicles of a request.
type VehicleIndex struct {
	tr     *rtree.RTreeG[int]
	coords map[int]geo.Coordinate
}

func NewVehicleIndex() *VehicleIndex {
	var tr rtree.RTreeG[int]
	return &VehicleIndex{
		tr:     &tr,
		coords: make(map[int]geo.Coordinate),
	}
}

// Build indexes every vehicle with a known position. positions maps vehicle index to coordinate.
func (vi *VehicleIndex) Build(positions map[int]geo.Coordinate, log *zap.Logger) {
	log.Debug("Building vehicle r-tree spatial index...", zap.Int("vehicles", len(positions)))
	for v, c := range positions {
		vi.Insert(v, c)
	}
	log.Debug("Vehicle r-tree spatial index built.", zap.Int("indexed", vi.Len()))
}

func (vi *VehicleIndex) Insert(vehicle int, c geo.Coordinate) {
	vi.tr.Insert([2]float64{c.Lon, c.Lat}, [2]float64{c.Lon, c.Lat}, vehicle)
	vi.coords[vehicle] = c
}

func (vi *VehicleIndex) Len() int {
	return vi.tr.Len()
}

// SearchWithinRadius returns the vehicles within radius (in km) of (qLat, qLon), by index.
func (vi *VehicleIndex) SearchWithinRadius(qLat, qLon, radius float64) []int {
	center := geo.NewCoordinate(qLat, qLon)
	lower, upper := geo.BoundingBox(center, radius)

	results := make([]int, 0, 10)
	vi.tr.Search([2]float64{lower.Lon, lower.Lat}, [2]float64{upper.Lon, upper.Lat},
		func(min, max [2]float64, vehicle int) bool {
			if geo.GreatCircleDistance(center, vi.coords[vehicle]) <= radius {
				results = append(results, vehicle)
			}
			return true
		})
	sort.Ints(results)
	return results
}
