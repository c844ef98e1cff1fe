package datastructure

import (
	"fmt"

	"github.com/lintang-b-s/ridepool/pkg"
)

// Node is a point a vehicle must visit. Nodes are values: a request's pickup and drop-off
// refer back to their request through its index in the Context arena, not a pointer.
type Node struct {
	kind      pkg.NodeKind
	networkId int
	earliest  int
	latest    int
	load      int // passengers boarding (>0), alighting (<0)
	tripId    int
	request   int
}

func NewPickupNode(networkId, tripId, request, earliest, latest, passengers int) Node {
	return Node{
		kind:      pkg.PICKUP,
		networkId: networkId,
		earliest:  earliest,
		latest:    latest,
		load:      passengers,
		tripId:    tripId,
		request:   request,
	}
}

func NewDropoffNode(networkId, tripId, request, earliest, latest, passengers int) Node {
	return Node{
		kind:      pkg.DROPOFF,
		networkId: networkId,
		earliest:  earliest,
		latest:    latest,
		load:      -passengers,
		tripId:    tripId,
		request:   request,
	}
}

func NewOriginNode(vehicleId, networkId int) Node {
	return newSyntheticNode(pkg.VEHICLE_ORIGIN, networkId, vehicleId, 0)
}

// NewStopNode is created when a vehicle parks at networkId at time arrival.
func NewStopNode(vehicleId, networkId, arrival int) Node {
	return newSyntheticNode(pkg.STOP, networkId, vehicleId, arrival)
}

// NewWaypointNode marks the position of a vehicle in the middle of a leg. id comes from
// Context.NextWaypointId.
func NewWaypointNode(id, networkId int) Node {
	return newSyntheticNode(pkg.WAYPOINT, networkId, id, 0)
}

// NewRebalanceTargetNode turns target into the destination of a relocation reachable at earliest.
func NewRebalanceTargetNode(target Node, earliest int) Node {
	return newSyntheticNode(pkg.REBALANCE_TARGET, target.networkId, target.tripId, earliest)
}

func newSyntheticNode(kind pkg.NodeKind, networkId, tripId, earliest int) Node {
	return Node{
		kind:      kind,
		networkId: networkId,
		earliest:  earliest,
		latest:    pkg.INF_TIME,
		tripId:    tripId,
		request:   pkg.NO_REQUEST,
	}
}

func (n Node) GetKind() pkg.NodeKind {
	return n.kind
}

func (n Node) GetNetworkId() int {
	return n.networkId
}

func (n Node) GetEarliest() int {
	return n.earliest
}

func (n Node) GetLatest() int {
	return n.latest
}

func (n Node) GetLoad() int {
	return n.load
}

func (n Node) GetTripId() int {
	return n.tripId
}

// GetRequest returns the arena index of the owning request or pkg.NO_REQUEST.
func (n Node) GetRequest() int {
	return n.request
}

func (n Node) IsPickup() bool {
	return n.kind == pkg.PICKUP
}

func (n Node) IsDropoff() bool {
	return n.kind == pkg.DROPOFF
}

func (n Node) IsPUDO() bool {
	return n.kind == pkg.PICKUP || n.kind == pkg.DROPOFF
}

func (n Node) String() string {
	switch n.kind {
	case pkg.PICKUP:
		return fmt.Sprintf("PK%d", n.tripId)
	case pkg.DROPOFF:
		return fmt.Sprintf("DP%d", n.tripId)
	case pkg.VEHICLE_ORIGIN:
		return fmt.Sprintf("OR%d", n.tripId)
	case pkg.STOP:
		return fmt.Sprintf("ST%d", n.tripId)
	case pkg.WAYPOINT:
		return fmt.Sprintf("MI%d", n.networkId)
	case pkg.REBALANCE_TARGET:
		return fmt.Sprintf("RE%d", n.tripId)
	default:
		return "??"
	}
}

// SequenceString renders a node sequence as "[PK1 PK2 DP1 DP2]".
func SequenceString(nodes []Node) string {
	s := "["
	for i, n := range nodes {
		if i > 0 {
			s += " "
		}
		s += n.String()
	}
	return s + "]"
}
