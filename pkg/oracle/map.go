package oracle

type pair struct {
	from, to int
}

// MapOracle holds travel times of explicit pairs. Unknown pairs take the fallback value and a location
// is always 0 seconds away from itself. Set must not be called concurrently with TravelTime.
type MapOracle struct {
	pairs     map[pair]int
	fallback  int
	symmetric bool
}

func NewMapOracle(fallback int, symmetric bool) *MapOracle {
	return &MapOracle{
		pairs:     make(map[pair]int),
		fallback:  normalize(fallback),
		symmetric: symmetric,
	}
}

func (m *MapOracle) Set(from, to, tt int) *MapOracle {
	m.pairs[pair{from, to}] = normalize(tt)
	if m.symmetric {
		m.pairs[pair{to, from}] = normalize(tt)
	}
	return m
}

func (m *MapOracle) TravelTime(from, to int) int {
	if from == to {
		return 0
	}
	if tt, ok := m.pairs[pair{from, to}]; ok {
		return tt
	}
	return m.fallback
}
