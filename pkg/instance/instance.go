package instance

import (
	"io"

	"github.com/lintang-b-s/ridepool/pkg"
	da "github.com/lintang-b-s/ridepool/pkg/datastructure"
	"github.com/lintang-b-s/ridepool/pkg/geo"
	"github.com/lintang-b-s/ridepool/pkg/oracle"
	"github.com/lintang-b-s/ridepool/pkg/util"
	"gopkg.in/yaml.v3"
)

// Instance is the on-disk description of a dispatch round.
type Instance struct {
	Time        int                    `yaml:"time"`
	QoS         []da.QoS               `yaml:"qos"`
	Coordinates map[int]geo.Coordinate `yaml:"coordinates"`
	Requests    []RequestSpec          `yaml:"requests"`
	Vehicles    []VehicleSpec          `yaml:"vehicles"`
}

type Windows struct {
	PkEarliest int `yaml:"pk_earliest"`
	PkLatest   int `yaml:"pk_latest"`
	DpEarliest int `yaml:"dp_earliest"`
	DpLatest   int `yaml:"dp_latest"`
}

type RequestSpec struct {
	Id          int      `yaml:"id"`
	Origin      int      `yaml:"origin"`
	Destination int      `yaml:"destination"`
	Passengers  int      `yaml:"passengers"`
	QoS         string   `yaml:"qos"`
	Windows     *Windows `yaml:"windows,omitempty"`
}

// StopSpec is one committed stop of a vehicle. Kind is pickup or dropoff.
type StopSpec struct {
	Kind    string `yaml:"kind"`
	Request int    `yaml:"request"`
}

type VehicleSpec struct {
	Id               int        `yaml:"id"`
	Capacity         int        `yaml:"capacity"`
	Position         int        `yaml:"position"`
	ReadyAt          int        `yaml:"ready_at"`
	Waypoint         *int       `yaml:"waypoint,omitempty"`
	Hireable         bool       `yaml:"hireable"`
	PromptedBy       int        `yaml:"prompted_by"`
	ContractDeadline *int       `yaml:"contract_deadline,omitempty"`
	Visit            []StopSpec `yaml:"visit"`
}

const (
	stopPickup  = "pickup"
	stopDropoff = "dropoff"
)

// Read decodes an instance file. Files ending in .bz2 are decompressed on the fly.
func Read(path string) (*Instance, error) {
	f, err := util.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

func Decode(r io.Reader) (*Instance, error) {
	inst := &Instance{}
	if err := yaml.NewDecoder(r).Decode(inst); err != nil {
		return nil, util.WrapErrorf(err, util.ErrInvalidInstance, "decode instance")
	}
	return inst, nil
}

// Locate returns the coordinate of a network location, if the instance has one.
func (inst *Instance) Locate(networkId int) (geo.Coordinate, bool) {
	c, ok := inst.Coordinates[networkId]
	return c, ok
}

// NewContext registers the service classes, requests and vehicles of the instance in a fresh context.
// Requests without explicit windows get them from tt. Committed visits are assigned to their vehicle,
// whose load is the number of passengers onboard.
func (inst *Instance) NewContext(tt oracle.Oracle) (*da.Context, error) {
	ctx := da.NewContext(inst.Time)
	for _, q := range inst.QoS {
		ctx.AddQoS(q)
	}

	for _, r := range inst.Requests {
		var err error
		if r.Windows == nil {
			_, err = ctx.AddRequest(tt, r.Id, r.Origin, r.Destination, r.Passengers, r.QoS)
		} else {
			q, ok := ctx.GetQoS(r.QoS)
			if !ok {
				return nil, util.WrapErrorf(nil, util.ErrNotFound, "qos class %q of request %d", r.QoS, r.Id)
			}
			w := da.RequestWindows{
				PkEarliest: r.Windows.PkEarliest,
				PkLatest:   r.Windows.PkLatest,
				DpEarliest: r.Windows.DpEarliest,
				DpLatest:   r.Windows.DpLatest,
			}
			_, err = ctx.AddRequestWithWindows(r.Id, r.Origin, r.Destination, r.Passengers, q, w)
		}
		if err != nil {
			return nil, err
		}
	}

	for _, vs := range inst.Vehicles {
		if err := inst.addVehicle(ctx, vs); err != nil {
			return nil, err
		}
	}

	if err := ctx.Validate(); err != nil {
		return nil, err
	}
	return ctx, nil
}

// addVehicle registers vs. A vehicle with a waypoint is in the middle of a leg: its trips start from the
// waypoint, which also leads its committed visit.
func (inst *Instance) addVehicle(ctx *da.Context, vs VehicleSpec) error {
	position := da.NewOriginNode(vs.Id, vs.Position)
	if vs.Waypoint != nil {
		position = da.NewWaypointNode(ctx.NextWaypointId(), *vs.Waypoint)
	}

	var v *da.Vehicle
	if vs.Hireable {
		prompted, ok := ctx.RequestById(vs.PromptedBy)
		if !ok {
			return util.WrapErrorf(nil, util.ErrNotFound, "vehicle %d prompted by unknown request %d", vs.Id, vs.PromptedBy)
		}
		deadline := pkg.INF_TIME
		if vs.ContractDeadline != nil {
			deadline = *vs.ContractDeadline
		}
		v = da.NewHireableVehicle(vs.Id, vs.Capacity, position, vs.ReadyAt, prompted.GetIndex(), deadline)
	} else {
		v = da.NewVehicle(vs.Id, vs.Capacity, position, vs.ReadyAt)
		if vs.ContractDeadline != nil {
			v.SetContractDeadline(*vs.ContractDeadline)
		}
	}

	index, err := ctx.AddVehicle(v)
	if err != nil {
		return err
	}
	if len(vs.Visit) == 0 {
		return nil
	}

	seq := make([]da.Node, 0, len(vs.Visit)+1)
	if vs.Waypoint != nil {
		seq = append(seq, position)
	}
	for _, s := range vs.Visit {
		req, ok := ctx.RequestById(s.Request)
		if !ok {
			return util.WrapErrorf(nil, util.ErrNotFound, "vehicle %d visits unknown request %d", vs.Id, s.Request)
		}
		switch s.Kind {
		case stopPickup:
			seq = append(seq, req.GetPickup())
		case stopDropoff:
			seq = append(seq, req.GetDropoff())
		default:
			return util.WrapErrorf(nil, util.ErrInvalidInstance, "vehicle %d: unknown stop kind %q", vs.Id, s.Kind)
		}
	}

	visit := da.NewVisit(index, seq, 0, 0)
	load := 0
	for _, r := range visit.Passengers() {
		load += ctx.Request(r).GetPassengers()
	}
	v.SetLoad(load)
	return ctx.Assign(index, visit)
}
