package pkg

import "math"

// enum of node kinds
type NodeKind uint8

const (
	PICKUP NodeKind = iota
	DROPOFF
	VEHICLE_ORIGIN
	STOP     // vehicle parked
	WAYPOINT // vehicle in the middle of a leg
	REBALANCE_TARGET
)

func (k NodeKind) String() string {
	switch k {
	case PICKUP:
		return "pickup"
	case DROPOFF:
		return "dropoff"
	case VEHICLE_ORIGIN:
		return "origin"
	case STOP:
		return "stop"
	case WAYPOINT:
		return "waypoint"
	case REBALANCE_TARGET:
		return "target"
	default:
		return "unknown"
	}
}

const (
	INF_TIME int = math.MaxInt32 // latest time of non-PUDO nodes, unbounded contract deadline
	NO_PATH  int = -1            // oracle sentinel for unreachable pairs

	NO_REQUEST int = -1 // request index of synthetic nodes
	NO_VEHICLE int = -1
)

// pickup & delivery sequence generator strategies
const (
	PD_INSERTION   = "pd_insertion"
	PD_PERMUTATION = "pd_permutation"
)

const (
	DEFAULT_VEHICLE_CAPACITY = 4
	DEFAULT_MAX_EDGES_RV     = 30
	DEFAULT_MAX_EDGES_RR     = 30
	DEFAULT_WORKERS          = 4
	HEAP_ARITY               = 4
)

const (
	DEBUG = false
)
