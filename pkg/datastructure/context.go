package datastructure

import (
	"math"

	"github.com/lintang-b-s/ridepool/pkg"
	"github.com/lintang-b-s/ridepool/pkg/oracle"
	"github.com/lintang-b-s/ridepool/pkg/util"
)

// Context owns the mutable state of a simulation: the request arena, the vehicle snapshots and
// the per-location counters. Requests and vehicles are referenced by their index in the arena.
type Context struct {
	currentTime  int
	requests     []*Request
	requestIndex map[int]int
	vehicles     []*Vehicle
	vehicleIndex map[int]int
	qos          map[string]QoS
	hotSpot      map[int]int
	tabu         map[int]struct{}
	waypointId   int
}

func NewContext(currentTime int) *Context {
	c := &Context{}
	c.Reset()
	c.currentTime = currentTime
	return c
}

// Reset drops every request, vehicle and counter.
func (c *Context) Reset() {
	c.currentTime = 0
	c.requests = make([]*Request, 0)
	c.requestIndex = make(map[int]int)
	c.vehicles = make([]*Vehicle, 0)
	c.vehicleIndex = make(map[int]int)
	c.qos = make(map[string]QoS)
	c.hotSpot = make(map[int]int)
	c.tabu = make(map[int]struct{})
	c.waypointId = math.MinInt32
}

func (c *Context) GetCurrentTime() int {
	return c.currentTime
}

func (c *Context) SetCurrentTime(t int) {
	c.currentTime = t
}

func (c *Context) AddQoS(q QoS) {
	c.qos[q.Id] = q
}

func (c *Context) GetQoS(id string) (QoS, bool) {
	q, ok := c.qos[id]
	return q, ok
}

// AddRequest registers a request issued now whose windows follow from its QoS class and the direct
// travel time between origin and destination. It returns the arena index of the request.
func (c *Context) AddRequest(tt oracle.Oracle, id, origin, destination, passengers int, qosId string) (int, error) {
	q, ok := c.qos[qosId]
	if !ok {
		return pkg.NO_REQUEST, util.WrapErrorf(nil, util.ErrNotFound, "qos class %q of request %d", qosId, id)
	}
	direct := tt.TravelTime(origin, destination)
	if direct < 0 {
		return pkg.NO_REQUEST, util.WrapErrorf(nil, util.ErrInvalidInstance,
			"request %d: destination %d unreachable from %d", id, destination, origin)
	}
	return c.AddRequestWithWindows(id, origin, destination, passengers, q, NewRequestWindows(c.currentTime, direct, q))
}

func (c *Context) AddRequestWithWindows(id, origin, destination, passengers int, q QoS, w RequestWindows) (int, error) {
	if _, dup := c.requestIndex[id]; dup {
		return pkg.NO_REQUEST, util.WrapErrorf(nil, util.ErrInvalidInstance, "duplicate request id %d", id)
	}
	if passengers < 1 {
		return pkg.NO_REQUEST, util.WrapErrorf(nil, util.ErrInvalidInstance, "request %d has %d passengers", id, passengers)
	}
	if w.PkEarliest > w.PkLatest || w.DpEarliest > w.DpLatest {
		return pkg.NO_REQUEST, util.WrapErrorf(nil, util.ErrInvalidInstance, "request %d has an empty time window", id)
	}

	index := len(c.requests)
	c.requests = append(c.requests, newRequest(id, index, origin, destination, passengers, c.currentTime, q, w))
	c.requestIndex[id] = index
	return index, nil
}

func (c *Context) Request(index int) *Request {
	return c.requests[index]
}

func (c *Context) RequestById(id int) (*Request, bool) {
	index, ok := c.requestIndex[id]
	if !ok {
		return nil, false
	}
	return c.requests[index], true
}

func (c *Context) Requests() []*Request {
	return c.requests
}

func (c *Context) NumberOfRequests() int {
	return len(c.requests)
}

// WaitingRequests returns the arena indices of the requests still waiting, in arrival order.
func (c *Context) WaitingRequests() []int {
	res := make([]int, 0, len(c.requests))
	for i, r := range c.requests {
		if r.IsWaiting() {
			res = append(res, i)
		}
	}
	return res
}

// AddVehicle registers a snapshot and returns its index.
func (c *Context) AddVehicle(v *Vehicle) (int, error) {
	if _, dup := c.vehicleIndex[v.id]; dup {
		return pkg.NO_VEHICLE, util.WrapErrorf(nil, util.ErrInvalidInstance, "duplicate vehicle id %d", v.id)
	}
	v.index = len(c.vehicles)
	c.vehicles = append(c.vehicles, v)
	c.vehicleIndex[v.id] = v.index
	return v.index, nil
}

func (c *Context) Vehicle(index int) *Vehicle {
	return c.vehicles[index]
}

func (c *Context) VehicleById(id int) (*Vehicle, bool) {
	index, ok := c.vehicleIndex[id]
	if !ok {
		return nil, false
	}
	return c.vehicles[index], true
}

func (c *Context) Vehicles() []*Vehicle {
	return c.vehicles
}

func (c *Context) NumberOfVehicles() int {
	return len(c.vehicles)
}

// VehicleIndices returns the indices of every registered vehicle.
func (c *Context) VehicleIndices() []int {
	res := make([]int, len(c.vehicles))
	for i := range c.vehicles {
		res[i] = i
	}
	return res
}

// Assign commits visit to the vehicle and marks every request it serves, onboard ones included, as assigned.
// Nothing changes unless every served request is waiting or already assigned to the vehicle.
func (c *Context) Assign(vehicle int, visit *Visit) error {
	if vehicle < 0 || vehicle >= len(c.vehicles) {
		return util.WrapErrorf(nil, util.ErrNotFound, "vehicle index %d", vehicle)
	}
	served := make([]int, 0, len(visit.PendingRequests())+len(visit.Passengers()))
	served = append(served, visit.PendingRequests()...)
	served = append(served, visit.Passengers()...)

	for _, r := range served {
		if r < 0 || r >= len(c.requests) {
			return util.WrapErrorf(nil, util.ErrNotFound, "request index %d", r)
		}
		req := c.requests[r]
		if req.status == ASSIGNED && req.vehicle == vehicle {
			continue
		}
		if req.status != WAITING {
			return util.WrapErrorf(nil, util.ErrBadParamInput, "request %d is %s, cannot assign", req.id, req.status)
		}
	}

	for _, r := range served {
		req := c.requests[r]
		if req.status == ASSIGNED {
			req.visit = visit
			continue
		}
		if err := req.assign(vehicle, visit); err != nil {
			return err
		}
	}
	c.vehicles[vehicle].visit = visit
	return nil
}

func (c *Context) IncreaseHotness(networkId int) {
	c.hotSpot[networkId]++
}

func (c *Context) Hotness(networkId int) int {
	return c.hotSpot[networkId]
}

func (c *Context) AddTabu(networkId int) {
	c.tabu[networkId] = struct{}{}
}

func (c *Context) IsTabu(networkId int) bool {
	_, ok := c.tabu[networkId]
	return ok
}

func (c *Context) ClearTabu() {
	c.tabu = make(map[int]struct{})
}

// NextWaypointId returns a fresh id for a waypoint node. Ids count up from math.MinInt32 and never
// collide with request or vehicle ids.
func (c *Context) NextWaypointId() int {
	id := c.waypointId
	c.waypointId++
	return id
}

// Validate checks the invariants every dispatch round relies on.
func (c *Context) Validate() error {
	for i, r := range c.requests {
		if err := c.validateRequest(i, r); err != nil {
			return err
		}
	}
	for i, v := range c.vehicles {
		if err := c.validateVehicle(i, v); err != nil {
			return err
		}
	}
	return nil
}

func (c *Context) validateRequest(i int, r *Request) error {
	pk, dp := r.pickup, r.dropoff
	switch {
	case r.index != i:
		return util.WrapErrorf(nil, util.ErrInvalidInstance, "request %d stored at %d has index %d", r.id, i, r.index)
	case pk.kind != pkg.PICKUP || dp.kind != pkg.DROPOFF:
		return util.WrapErrorf(nil, util.ErrInvalidInstance, "request %d nodes are %s/%s", r.id, pk.kind, dp.kind)
	case pk.tripId != r.id || dp.tripId != r.id || pk.request != i || dp.request != i:
		return util.WrapErrorf(nil, util.ErrInvalidInstance, "request %d pickup and drop-off do not share its trip", r.id)
	case pk.load != r.passengers || dp.load != -r.passengers:
		return util.WrapErrorf(nil, util.ErrInvalidInstance, "request %d loads %d/%d for %d passengers",
			r.id, pk.load, dp.load, r.passengers)
	case pk.earliest > pk.latest || dp.earliest > dp.latest:
		return util.WrapErrorf(nil, util.ErrInvalidInstance, "request %d has an empty time window", r.id)
	}
	return nil
}

func (c *Context) validateVehicle(i int, v *Vehicle) error {
	if v.index != i {
		return util.WrapErrorf(nil, util.ErrInvalidInstance, "vehicle %d stored at %d has index %d", v.id, i, v.index)
	}
	if v.capacity < 0 || v.load < 0 || v.load > v.capacity {
		return util.WrapErrorf(nil, util.ErrInvalidInstance, "vehicle %d load %d outside [0, %d]", v.id, v.load, v.capacity)
	}
	if v.hireable && (v.promptedBy < 0 || v.promptedBy >= len(c.requests)) {
		return util.WrapErrorf(nil, util.ErrInvalidInstance, "hireable vehicle %d prompted by unknown request %d",
			v.id, v.promptedBy)
	}

	seq := v.CommittedSequence()
	picked := make(map[int]int, len(seq))
	dropped := make(map[int]int, len(seq))
	for pos, n := range seq {
		if !n.IsPUDO() {
			continue
		}
		if n.request < 0 || n.request >= len(c.requests) {
			return util.WrapErrorf(nil, util.ErrInvalidInstance, "vehicle %d visits %s of unknown request", v.id, n)
		}
		if n.IsPickup() {
			if _, dup := picked[n.request]; dup {
				return util.WrapErrorf(nil, util.ErrInvalidInstance, "vehicle %d picks up %s twice", v.id, n)
			}
			picked[n.request] = pos
		} else {
			if _, dup := dropped[n.request]; dup {
				return util.WrapErrorf(nil, util.ErrInvalidInstance, "vehicle %d drops off %s twice", v.id, n)
			}
			dropped[n.request] = pos
		}
	}

	onboard := 0
	for r, pos := range picked {
		dpPos, ok := dropped[r]
		if !ok || dpPos < pos {
			return util.WrapErrorf(nil, util.ErrInvalidInstance, "vehicle %d picks up request %d without dropping it off",
				v.id, c.requests[r].id)
		}
	}
	for r := range dropped {
		if _, ok := picked[r]; !ok {
			onboard += c.requests[r].passengers
		}
	}
	if onboard != v.load {
		return util.WrapErrorf(nil, util.ErrInvalidInstance, "vehicle %d carries %d passengers but its load is %d",
			v.id, onboard, v.load)
	}
	return nil
}
