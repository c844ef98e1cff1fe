package datastructure

import (
	"fmt"
)

// Visit is a candidate trip: the nodes a vehicle visits after its current position.
// delay is only meaningful for sequences accepted by the feasibility checker.
type Visit struct {
	vehicle    int
	sequence   []Node
	requests   []int // picked up by this visit
	passengers []int // already onboard, only dropped off
	delay      int
	delayBonus int
}

// NewVisit builds a visit for vehicle from a checked sequence. Requests with a pickup in the sequence are
// served by it, requests with only a drop-off are onboard passengers.
func NewVisit(vehicle int, sequence []Node, delay, delayBonus int) *Visit {
	v := &Visit{
		vehicle:    vehicle,
		sequence:   sequence,
		requests:   make([]int, 0, len(sequence)/2),
		passengers: make([]int, 0),
		delay:      delay,
		delayBonus: delayBonus,
	}

	picked := make(map[int]struct{}, len(sequence)/2)
	for _, n := range sequence {
		if n.IsPickup() {
			picked[n.GetRequest()] = struct{}{}
			v.requests = append(v.requests, n.GetRequest())
		}
	}
	for _, n := range sequence {
		if !n.IsDropoff() {
			continue
		}
		if _, ok := picked[n.GetRequest()]; !ok {
			v.passengers = append(v.passengers, n.GetRequest())
		}
	}
	return v
}

func (v *Visit) GetVehicle() int {
	return v.vehicle
}

func (v *Visit) GetSequence() []Node {
	return v.sequence
}

func (v *Visit) GetDelay() int {
	return v.delay
}

func (v *Visit) GetDelayBonus() int {
	return v.delayBonus
}

// PendingRequests returns the arena indices of the requests still to be picked up.
func (v *Visit) PendingRequests() []int {
	return v.requests
}

// Passengers returns the arena indices of the requests onboard.
func (v *Visit) Passengers() []int {
	return v.passengers
}

func (v *Visit) Len() int {
	return len(v.sequence)
}

func (v *Visit) IsEmpty() bool {
	return len(v.sequence) == 0
}

func (v *Visit) String() string {
	return fmt.Sprintf("V%d %s delay=%d bonus=%d", v.vehicle, SequenceString(v.sequence), v.delay, v.delayBonus)
}
