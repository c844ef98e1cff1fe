package geo

import (
	"math"

	"github.com/lintang-b-s/ridepool/pkg/util"
)

const earthRadiusKM = 6371.0

// Coordinate is a position in degrees.
type Coordinate struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{Lat: lat, Lon: lon}
}

func (c Coordinate) radians() (float64, float64) {
	return util.DegreeToRadians(c.Lat), util.DegreeToRadians(c.Lon)
}

// HaversineDistance returns the distance between a and b in km.
func HaversineDistance(a, b Coordinate) float64 {
	latA, lonA := a.radians()
	latB, lonB := b.radians()

	hav := func(x float64) float64 { return (1 - math.Cos(x)) / 2.0 }
	h := hav(latB-latA) + math.Cos(latA)*math.Cos(latB)*hav(lonB-lonA)
	return 2.0 * earthRadiusKM * math.Asin(math.Sqrt(h))
}

// Destination returns the point reached from c after dist km on the initial bearing (degrees).
func Destination(c Coordinate, bearing, dist float64) Coordinate {
	lat, lon := c.radians()
	theta := util.DegreeToRadians(bearing)
	delta := dist / earthRadiusKM

	sinLat := math.Sin(lat)*math.Cos(delta) + math.Cos(lat)*math.Sin(delta)*math.Cos(theta)
	destLat := math.Asin(sinLat)
	destLon := lon + math.Atan2(math.Sin(theta)*math.Sin(delta)*math.Cos(lat), math.Cos(delta)-math.Sin(lat)*sinLat)

	return NewCoordinate(util.RadiansToDegree(destLat), normalizeLongitude(util.RadiansToDegree(destLon)))
}

// normalizeLongitude maps a longitude in degrees to [-180, 180).
func normalizeLongitude(lon float64) float64 {
	return math.Mod(lon+540, 360) - 180.0
}
