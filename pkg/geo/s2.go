package geo

import (
	"math"

	"github.com/golang/geo/s2"
)

// GreatCircleDistance returns the distance between a and b along the sphere in km.
func GreatCircleDistance(a, b Coordinate) float64 {
	pa := s2.LatLngFromDegrees(a.Lat, a.Lon)
	pb := s2.LatLngFromDegrees(b.Lat, b.Lon)
	return pa.Distance(pb).Radians() * earthRadiusKM
}

// BoundingBox returns the lower left and upper right corners of the square of half side radius (km) around c.
func BoundingBox(c Coordinate, radius float64) (Coordinate, Coordinate) {
	diagonal := radius * math.Sqrt2
	return Destination(c, 225, diagonal), Destination(c, 45, diagonal)
}
