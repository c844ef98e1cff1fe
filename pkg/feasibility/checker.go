package feasibility

import (
	"github.com/lintang-b-s/ridepool/pkg"
	"github.com/lintang-b-s/ridepool/pkg/datastructure"
	"github.com/lintang-b-s/ridepool/pkg/oracle"
	"github.com/lintang-b-s/ridepool/pkg/util"
)

// Checker simulates a vehicle driving through a node sequence leg by leg.
// It only reads its oracle and context, so one Checker may be shared by many goroutines.
type Checker struct {
	ctx *datastructure.Context
	tt  oracle.Oracle
}

func NewChecker(ctx *datastructure.Context, tt oracle.Oracle) *Checker {
	return &Checker{
		ctx: ctx,
		tt:  tt,
	}
}

// Stop is a node of a checked sequence with the time the vehicle gets there and its load after it.
type Stop struct {
	Node    datastructure.Node
	Arrival int
	Load    int
}

type legState struct {
	arrival int
	load    int
	delay   int
	bonus   int
}

// CheckSequence drives from nodes[0] at startTime carrying startLoad. It returns the summed lateness of
// the drop-offs relative to their earliest time, or false as soon as a leg breaks a capacity, time window,
// deadline, reachability or sharing constraint.
func (c *Checker) CheckSequence(nodes []datastructure.Node, startTime, startLoad, capacity, deadline int) (int, bool) {
	st, ok := c.walk(nodes, startTime, startLoad, capacity, deadline, nil)
	if !ok {
		return pkg.NO_PATH, false
	}
	return st.delay, true
}

// Trace is CheckSequence that also reports every stop and the delay bonus, the summed slack
// latest - arrival over the pickup and drop-off nodes.
func (c *Checker) Trace(nodes []datastructure.Node, startTime, startLoad, capacity, deadline int) ([]Stop, int, int, bool) {
	stops := make([]Stop, 0, len(nodes))
	st, ok := c.walk(nodes, startTime, startLoad, capacity, deadline, &stops)
	if !ok {
		return nil, pkg.NO_PATH, 0, false
	}
	return stops, st.delay, st.bonus, true
}

func (c *Checker) walk(nodes []datastructure.Node, startTime, startLoad, capacity, deadline int,
	stops *[]Stop) (legState, bool) {
	st := legState{arrival: startTime, load: startLoad}
	ok := true
	if startLoad < 0 || startLoad > capacity {
		return st, false
	}
	if len(nodes) == 0 {
		return st, true
	}

	// requests whose pickup is still ahead; their drop-offs may not come first
	var buf [16]int
	ahead := buf[:0]
	for _, n := range nodes {
		if n.IsPickup() {
			ahead = append(ahead, n.GetRequest())
		}
	}

	first := nodes[0]
	if startTime > first.GetLatest() || startTime > deadline {
		return st, false
	}
	if ahead, ok = visitPrecedence(ahead, first); !ok {
		return st, false
	}
	if first.IsPUDO() {
		st.bonus += first.GetLatest() - startTime
	}
	if stops != nil {
		*stops = append(*stops, Stop{Node: first, Arrival: startTime, Load: startLoad})
	}

	for i := 1; i < len(nodes); i++ {
		a, b := nodes[i-1], nodes[i]
		if ahead, ok = visitPrecedence(ahead, b); !ok {
			return st, false
		}
		if !c.leg(&st, a, b, capacity, deadline) {
			return st, false
		}
		if stops != nil {
			*stops = append(*stops, Stop{Node: b, Arrival: st.arrival, Load: st.load})
		}
	}
	return st, true
}

// visitPrecedence removes the pickup n from ahead, or rejects n if it is a drop-off whose pickup is still
// ahead. Drop-offs of onboard passengers have no pickup in the sequence and always pass.
func visitPrecedence(ahead []int, n datastructure.Node) ([]int, bool) {
	if !n.IsPUDO() {
		return ahead, true
	}
	for k, r := range ahead {
		if r != n.GetRequest() {
			continue
		}
		if n.IsDropoff() {
			return ahead, false
		}
		ahead[k] = ahead[len(ahead)-1]
		return ahead[:len(ahead)-1], true
	}
	return ahead, true
}

func (c *Checker) leg(st *legState, a, b datastructure.Node, capacity, deadline int) bool {
	if !c.shareable(a, b, st.load) {
		return false
	}

	load := st.load + b.GetLoad()
	if load < 0 || load > capacity {
		return false
	}

	tt := c.tt.TravelTime(a.GetNetworkId(), b.GetNetworkId())
	if tt < 0 {
		return false
	}
	arrival := util.Max(st.arrival+tt, b.GetEarliest())
	if arrival > b.GetLatest() || arrival > deadline {
		return false
	}

	st.arrival = arrival
	st.load = load
	if b.IsDropoff() {
		st.delay += arrival - b.GetEarliest()
	}
	if b.IsPUDO() {
		st.bonus += b.GetLatest() - arrival
	}
	return true
}

// shareable rejects legs that would make a request not allowing sharing ride with someone else.
// loadBefore is the load of the vehicle when it leaves a.
func (c *Checker) shareable(a, b datastructure.Node, loadBefore int) bool {
	switch {
	case a.IsPickup() && c.private(a) && b.GetRequest() != a.GetRequest():
		return false
	case b.IsDropoff() && c.private(b) && a.IsPUDO() && a.GetRequest() != b.GetRequest():
		return false
	case b.IsPickup() && c.private(b) && loadBefore > 0:
		return false
	}
	return true
}

func (c *Checker) private(n datastructure.Node) bool {
	return !c.ctx.Request(n.GetRequest()).IsSharingAllowed()
}
