package oracle

import "github.com/lintang-b-s/ridepool/pkg"

// Oracle returns the travel time in seconds between two network locations, or pkg.NO_PATH when
// to is unreachable from from. Implementations must be safe for concurrent reads.
type Oracle interface {
	TravelTime(from, to int) int
}

// Func adapts a plain function to Oracle.
type Func func(from, to int) int

func (f Func) TravelTime(from, to int) int {
	return f(from, to)
}

func normalize(tt int) int {
	if tt < 0 {
		return pkg.NO_PATH
	}
	return tt
}
