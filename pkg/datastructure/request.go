package datastructure

import (
	"fmt"

	"github.com/lintang-b-s/ridepool/pkg"
	"github.com/lintang-b-s/ridepool/pkg/util"
)

// QoS is a service class. PkDelay bounds the pickup lateness, DpDelay the extra in-vehicle delay.
type QoS struct {
	Id             string `yaml:"id"`
	PkDelay        int    `yaml:"pk_delay"`
	PkDelayTarget  int    `yaml:"pk_delay_target"`
	DpDelay        int    `yaml:"dp_delay"`
	SharingAllowed bool   `yaml:"sharing_allowed"`
}

type RequestStatus uint8

const (
	WAITING RequestStatus = iota
	ASSIGNED
	REJECTED
)

func (s RequestStatus) String() string {
	switch s {
	case WAITING:
		return "waiting"
	case ASSIGNED:
		return "assigned"
	case REJECTED:
		return "rejected"
	default:
		return "unknown"
	}
}

// RequestWindows are the time windows of the pickup and drop-off nodes of a request.
type RequestWindows struct {
	PkEarliest int
	PkLatest   int
	DpEarliest int
	DpLatest   int
}

// NewRequestWindows computes the windows of a request issued at requestTime whose direct trip takes
// directTravelTime: pickup [t, t+PkDelay], drop-off [t+tt, t+tt+PkDelay+DpDelay].
func NewRequestWindows(requestTime, directTravelTime int, qos QoS) RequestWindows {
	return RequestWindows{
		PkEarliest: requestTime,
		PkLatest:   requestTime + qos.PkDelay,
		DpEarliest: requestTime + directTravelTime,
		DpLatest:   requestTime + directTravelTime + qos.PkDelay + qos.DpDelay,
	}
}

type Request struct {
	id          int
	index       int
	passengers  int
	requestTime int
	qos         QoS
	pickup      Node
	dropoff     Node
	status      RequestStatus
	visit       *Visit
	vehicle     int
}

func newRequest(id, index, origin, destination, passengers, requestTime int, qos QoS, w RequestWindows) *Request {
	return &Request{
		id:          id,
		index:       index,
		passengers:  passengers,
		requestTime: requestTime,
		qos:         qos,
		pickup:      NewPickupNode(origin, id, index, w.PkEarliest, w.PkLatest, passengers),
		dropoff:     NewDropoffNode(destination, id, index, w.DpEarliest, w.DpLatest, passengers),
		status:      WAITING,
		vehicle:     pkg.NO_VEHICLE,
	}
}

func (r *Request) GetId() int {
	return r.id
}

// GetIndex returns the handle of the request in the Context arena.
func (r *Request) GetIndex() int {
	return r.index
}

func (r *Request) GetPassengers() int {
	return r.passengers
}

func (r *Request) GetRequestTime() int {
	return r.requestTime
}

func (r *Request) GetQoS() QoS {
	return r.qos
}

func (r *Request) IsSharingAllowed() bool {
	return r.qos.SharingAllowed
}

func (r *Request) GetPickup() Node {
	return r.pickup
}

func (r *Request) GetDropoff() Node {
	return r.dropoff
}

func (r *Request) GetStatus() RequestStatus {
	return r.status
}

func (r *Request) GetVisit() *Visit {
	return r.visit
}

func (r *Request) GetVehicle() int {
	return r.vehicle
}

func (r *Request) IsWaiting() bool {
	return r.status == WAITING
}

func (r *Request) assign(vehicle int, visit *Visit) error {
	if r.status != WAITING {
		return util.WrapErrorf(nil, util.ErrBadParamInput, "request %d is %s, cannot assign", r.id, r.status)
	}
	r.status = ASSIGNED
	r.vehicle = vehicle
	r.visit = visit
	return nil
}

func (r *Request) Reject() error {
	if r.status != WAITING {
		return util.WrapErrorf(nil, util.ErrBadParamInput, "request %d is %s, cannot reject", r.id, r.status)
	}
	r.status = REJECTED
	return nil
}

func (r *Request) String() string {
	return fmt.Sprintf("r%d(%s->%s, %d pax, %s)", r.id, r.pickup, r.dropoff, r.passengers, r.status)
}
