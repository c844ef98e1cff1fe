package feasibility

import (
	"github.com/lintang-b-s/ridepool/pkg/datastructure"
)

// SequenceIterator yields candidate node sequences, without the vehicle position.
type SequenceIterator interface {
	HasNext() bool
	Next() []datastructure.Node
}

// Stats counts the sequences a search sent through the checker.
type Stats struct {
	Checked  int
	Feasible int
}

func (s *Stats) Add(o Stats) {
	s.Checked += o.Checked
	s.Feasible += o.Feasible
}

// BestVisit drains it through the checker from the vehicle position and keeps the lowest delay sequence.
// Ties keep the sequence generated first.
func (c *Checker) BestVisit(v *datastructure.Vehicle, now int, it SequenceIterator) (*datastructure.Visit, Stats, bool) {
	var stats Stats
	start := v.GetPosition()
	startTime := v.StartTime(now)

	buf := make([]datastructure.Node, 0, 16)
	best := make([]datastructure.Node, 0, 16)
	bestDelay := 0
	found := false
	for it.HasNext() {
		seq := it.Next()
		buf = append(buf[:0], start)
		buf = append(buf, seq...)

		stats.Checked++
		delay, ok := c.CheckSequence(buf, startTime, v.GetLoad(), v.GetCapacity(), v.GetContractDeadline())
		if !ok {
			continue
		}
		stats.Feasible++
		if !found || delay < bestDelay {
			best = append(best[:0], seq...)
			bestDelay = delay
			found = true
		}
	}
	if !found {
		return nil, stats, false
	}

	buf = append(buf[:0], start)
	buf = append(buf, best...)
	_, delay, bonus, _ := c.Trace(buf, startTime, v.GetLoad(), v.GetCapacity(), v.GetContractDeadline())
	return datastructure.NewVisit(v.GetIndex(), best, delay, bonus), stats, true
}
