package instance

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lintang-b-s/ridepool/pkg"
	da "github.com/lintang-b-s/ridepool/pkg/datastructure"
	"github.com/lintang-b-s/ridepool/pkg/oracle"
	"github.com/lintang-b-s/ridepool/pkg/shareability"
	"github.com/lintang-b-s/ridepool/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sample = `
time: 10
qos:
  - id: standard
    pk_delay: 300
    dp_delay: 600
    sharing_allowed: true
  - id: private
    pk_delay: 120
    dp_delay: 60
coordinates:
  0: {lat: -7.55, lon: 110.78}
  1: {lat: -7.56, lon: 110.80}
requests:
  - id: 1
    origin: 0
    destination: 1
    passengers: 2
    qos: standard
  - id: 2
    origin: 2
    destination: 3
    passengers: 1
    qos: private
    windows: {pk_earliest: 50, pk_latest: 150, dp_earliest: 50, dp_latest: 400}
  - id: 3
    origin: 4
    destination: 5
    passengers: 1
    qos: standard
vehicles:
  - id: 100
    capacity: 4
    position: 0
  - id: 101
    capacity: 4
    position: 6
    waypoint: 7
    visit:
      - {kind: dropoff, request: 3}
  - id: 200
    capacity: 2
    position: 2
    hireable: true
    prompted_by: 2
    contract_deadline: 500
`

func travel() oracle.Oracle {
	return oracle.NewMapOracle(100, true).Set(0, 1, 40).Set(4, 5, 30)
}

func TestNewContextFromInstance(t *testing.T) {
	inst, err := Decode(strings.NewReader(sample))
	require.NoError(t, err)

	ctx, err := inst.NewContext(travel())
	require.NoError(t, err)
	assert.Equal(t, 10, ctx.GetCurrentTime())
	assert.Equal(t, 3, ctx.NumberOfRequests())
	assert.Equal(t, 3, ctx.NumberOfVehicles())

	r1, ok := ctx.RequestById(1)
	require.True(t, ok)
	assert.Equal(t, 10, r1.GetPickup().GetEarliest())
	assert.Equal(t, 310, r1.GetPickup().GetLatest())
	assert.Equal(t, 50, r1.GetDropoff().GetEarliest())
	assert.Equal(t, 950, r1.GetDropoff().GetLatest())

	r2, _ := ctx.RequestById(2)
	assert.Equal(t, 400, r2.GetDropoff().GetLatest())
	assert.False(t, r2.IsSharingAllowed())

	r3, _ := ctx.RequestById(3)
	assert.Equal(t, da.ASSIGNED, r3.GetStatus())
	assert.Equal(t, []int{r1.GetIndex(), r2.GetIndex()}, ctx.WaitingRequests())

	busy, _ := ctx.VehicleById(101)
	assert.Equal(t, 1, busy.GetLoad())
	assert.True(t, busy.IsServicing())
	assert.Equal(t, []da.Node{r3.GetDropoff()}, busy.CommittedSequence())
	assert.Equal(t, pkg.WAYPOINT, busy.GetVisit().GetSequence()[0].GetKind())
	assert.Equal(t, pkg.WAYPOINT, busy.GetPosition().GetKind())
	assert.Equal(t, 7, busy.GetPosition().GetNetworkId())
	assert.Equal(t, busy.GetPosition(), busy.GetVisit().GetSequence()[0])

	hired, _ := ctx.VehicleById(200)
	assert.True(t, hired.IsHireable())
	assert.Equal(t, r2.GetIndex(), hired.GetPromptedBy())
	assert.Equal(t, 500, hired.GetContractDeadline())

	idle, _ := ctx.VehicleById(100)
	assert.Equal(t, pkg.VEHICLE_ORIGIN, idle.GetPosition().GetKind())
	assert.Equal(t, 0, idle.GetPosition().GetNetworkId())
	assert.Equal(t, pkg.INF_TIME, idle.GetContractDeadline())

	c, ok := inst.Locate(1)
	require.True(t, ok)
	assert.InDelta(t, 110.80, c.Lon, 1e-9)
	_, ok = inst.Locate(9)
	assert.False(t, ok)
}

func TestNewContextErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			name:    "unknown qos",
			doc:     "requests:\n  - {id: 1, origin: 0, destination: 1, passengers: 1, qos: gold}\n",
			wantErr: util.ErrNotFound,
		},
		{
			name: "unknown visited request",
			doc: "qos:\n  - {id: q, pk_delay: 10}\nrequests:\n  - {id: 1, origin: 0, destination: 1, passengers: 1, qos: q}\n" +
				"vehicles:\n  - {id: 5, capacity: 2, position: 0, visit: [{kind: dropoff, request: 9}]}\n",
			wantErr: util.ErrNotFound,
		},
		{
			name: "bad stop kind",
			doc: "qos:\n  - {id: q, pk_delay: 10}\nrequests:\n  - {id: 1, origin: 0, destination: 1, passengers: 1, qos: q}\n" +
				"vehicles:\n  - {id: 5, capacity: 2, position: 0, visit: [{kind: detour, request: 1}]}\n",
			wantErr: util.ErrInvalidInstance,
		},
		{
			name: "overloaded vehicle",
			doc: "qos:\n  - {id: q, pk_delay: 10}\nrequests:\n  - {id: 1, origin: 0, destination: 1, passengers: 3, qos: q}\n" +
				"vehicles:\n  - {id: 5, capacity: 2, position: 0, visit: [{kind: dropoff, request: 1}]}\n",
			wantErr: util.ErrInvalidInstance,
		},
		{
			name:    "hireable without prompting request",
			doc:     "vehicles:\n  - {id: 5, capacity: 2, position: 0, hireable: true, prompted_by: 3}\n",
			wantErr: util.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst, err := Decode(strings.NewReader(tt.doc))
			require.NoError(t, err)
			_, err = inst.NewContext(travel())
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestReadInstance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "round.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	inst, err := Read(path)
	require.NoError(t, err)
	assert.Len(t, inst.Requests, 3)
	assert.Len(t, inst.Vehicles, 3)

	_, err = Decode(strings.NewReader("requests: [1, 2"))
	assert.True(t, errors.Is(err, util.ErrInvalidInstance))
}

func TestVehicleStartsFromItsWaypoint(t *testing.T) {
	doc := `
qos:
  - {id: q, pk_delay: 20, dp_delay: 20, sharing_allowed: true}
requests:
  - {id: 1, origin: 1, destination: 2, passengers: 1, qos: q}
vehicles:
  - {id: 100, capacity: 4, position: 6}
  - {id: 101, capacity: 4, position: 6, waypoint: 7}
`
	inst, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	tt := oracle.NewMapOracle(1000, false).Set(7, 1, 5).Set(1, 2, 10)
	ctx, err := inst.NewContext(tt)
	require.NoError(t, err)

	graph, err := shareability.BuildGraph(context.Background(), ctx, shareability.DefaultConfig(), tt, zap.NewNop())
	require.NoError(t, err)

	r, _ := ctx.RequestById(1)
	edges := graph.RVEdges(r.GetIndex())
	require.Len(t, edges, 1)
	moving, _ := ctx.VehicleById(101)
	assert.Equal(t, moving.GetIndex(), edges[0].GetFrom().Index)
	assert.Equal(t, 5, edges[0].GetWeight())
}
