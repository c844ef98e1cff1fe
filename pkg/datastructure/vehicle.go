package datastructure

import (
	"fmt"

	"github.com/lintang-b-s/ridepool/pkg"
	"github.com/lintang-b-s/ridepool/pkg/util"
)

// Vehicle is the snapshot of a vehicle at the start of a dispatch round.
type Vehicle struct {
	id               int
	index            int
	capacity         int
	load             int
	position         Node
	readyAt          int
	visit            *Visit
	contractDeadline int
	hireable         bool
	promptedBy       int // request that caused the vehicle to be offered for hire
}

func NewVehicle(id, capacity int, position Node, readyAt int) *Vehicle {
	return &Vehicle{
		id:               id,
		index:            pkg.NO_VEHICLE,
		capacity:         capacity,
		position:         position,
		readyAt:          readyAt,
		contractDeadline: pkg.INF_TIME,
		promptedBy:       pkg.NO_REQUEST,
	}
}

// NewHireableVehicle is a vehicle outside the owned fleet offered on demand to request promptedBy.
func NewHireableVehicle(id, capacity int, position Node, readyAt, promptedBy, contractDeadline int) *Vehicle {
	v := NewVehicle(id, capacity, position, readyAt)
	v.hireable = true
	v.promptedBy = promptedBy
	v.contractDeadline = contractDeadline
	return v
}

func (v *Vehicle) GetId() int {
	return v.id
}

func (v *Vehicle) GetIndex() int {
	return v.index
}

func (v *Vehicle) GetCapacity() int {
	return v.capacity
}

func (v *Vehicle) GetLoad() int {
	return v.load
}

func (v *Vehicle) GetPosition() Node {
	return v.position
}

func (v *Vehicle) GetReadyAt() int {
	return v.readyAt
}

func (v *Vehicle) GetVisit() *Visit {
	return v.visit
}

func (v *Vehicle) GetContractDeadline() int {
	return v.contractDeadline
}

func (v *Vehicle) IsHireable() bool {
	return v.hireable
}

func (v *Vehicle) GetPromptedBy() int {
	return v.promptedBy
}

func (v *Vehicle) IsServicing() bool {
	return v.visit != nil && !v.visit.IsEmpty()
}

func (v *Vehicle) SetLoad(load int) {
	v.load = load
}

func (v *Vehicle) SetContractDeadline(deadline int) {
	v.contractDeadline = deadline
}

func (v *Vehicle) SetVisit(visit *Visit) {
	v.visit = visit
}

// CommittedSequence returns the committed nodes still to visit. A leading waypoint is the vehicle's own
// position in the middle of a leg and is left out.
func (v *Vehicle) CommittedSequence() []Node {
	if v.visit == nil {
		return []Node{}
	}
	seq := v.visit.GetSequence()
	if len(seq) > 0 && seq[0].GetKind() == pkg.WAYPOINT {
		seq = seq[1:]
	}
	return seq
}

// StartTime is the time the vehicle can leave its position in a round starting at now.
func (v *Vehicle) StartTime(now int) int {
	return util.Max(v.readyAt, now)
}

func (v *Vehicle) String() string {
	return fmt.Sprintf("V%d(cap=%d, load=%d, at %s)", v.id, v.capacity, v.load, v.position)
}
