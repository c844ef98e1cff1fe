package oracle

import (
	"math"

	"github.com/lintang-b-s/ridepool/pkg"
	"github.com/lintang-b-s/ridepool/pkg/geo"
)

// GeodesicOracle estimates travel times from the great circle distance at a constant speed.
type GeodesicOracle struct {
	coords   map[int]geo.Coordinate
	speedKmh float64
}

func NewGeodesicOracle(coords map[int]geo.Coordinate, speedKmh float64) *GeodesicOracle {
	return &GeodesicOracle{
		coords:   coords,
		speedKmh: speedKmh,
	}
}

func (g *GeodesicOracle) TravelTime(from, to int) int {
	if from == to {
		return 0
	}
	a, ok := g.coords[from]
	if !ok {
		return pkg.NO_PATH
	}
	b, ok := g.coords[to]
	if !ok || g.speedKmh <= 0 {
		return pkg.NO_PATH
	}
	km := geo.GreatCircleDistance(a, b)
	return int(math.Ceil(km / g.speedKmh * 3600))
}

func (g *GeodesicOracle) Coordinate(id int) (geo.Coordinate, bool) {
	c, ok := g.coords[id]
	return c, ok
}
