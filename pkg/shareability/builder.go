package shareability

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/lintang-b-s/ridepool/pkg/concurrent"
	da "github.com/lintang-b-s/ridepool/pkg/datastructure"
	"github.com/lintang-b-s/ridepool/pkg/feasibility"
	"github.com/lintang-b-s/ridepool/pkg/geo"
	"github.com/lintang-b-s/ridepool/pkg/metrics"
	"github.com/lintang-b-s/ridepool/pkg/oracle"
	"github.com/lintang-b-s/ridepool/pkg/pdcombinatorics"
	"github.com/lintang-b-s/ridepool/pkg/util"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Locator returns the coordinate of a network location.
type Locator func(networkId int) (geo.Coordinate, bool)

// Builder assembles the shareability graph of a dispatch round.
type Builder struct {
	cfg    Config
	tt     oracle.Oracle
	source pdcombinatorics.PermutationSource
	locate Locator
	log    *zap.Logger
}

func NewBuilder(cfg Config, tt oracle.Oracle, source pdcombinatorics.PermutationSource, log *zap.Logger) *Builder {
	if source == nil {
		source = pdcombinatorics.NewEnumeratingSource()
	}
	return &Builder{
		cfg:    cfg,
		tt:     tt,
		source: source,
		log:    log,
	}
}

// WithLocator enables the candidate vehicle pre-filter of Config.CandidateRadiusKm.
func (b *Builder) WithLocator(locate Locator) *Builder {
	b.locate = locate
	return b
}

func (b *Builder) GetConfig() Config {
	return b.cfg
}

// round is the read-only state shared by the workers of one BuildGraph call.
type round struct {
	id         uuid.UUID
	sim        *da.Context
	checker    *feasibility.Checker
	requests   []int
	vehicles   []int
	candidates map[int][]int
}

type rvResult struct {
	edges     []da.Edge
	hiring    da.Edge
	hasHiring bool
	stats     feasibility.Stats
}

type rrResult struct {
	edges []da.Edge
	stats feasibility.Stats
}

// BuildGraph computes the RV edges of every request in requests against vehicles and the RR edges of
// every pair of requests, prunes them and returns the graph. Both lists hold arena indices of sim.
// The RV and RR phases run concurrently, each on its own pool of Config.Workers goroutines.
// The result does not depend on Config.Workers. A canceled ctx discards the round.
func (b *Builder) BuildGraph(ctx context.Context, sim *da.Context, requests, vehicles []int) (*da.CompatibilityGraph, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	if err := sim.Validate(); err != nil {
		return nil, err
	}
	if err := b.checkIndices(sim, requests, vehicles); err != nil {
		return nil, err
	}

	start := time.Now()
	r := &round{
		id:       uuid.New(),
		sim:      sim,
		checker:  feasibility.NewChecker(sim, b.tt),
		requests: sortedCopy(requests),
		vehicles: sortedCopy(vehicles),
	}
	r.candidates = b.candidateVehicles(r)

	var (
		rvLists []rvResult
		rrLists []rrResult
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rvLists = concurrent.MapOrdered(b.cfg.Workers, r.requests, func(req int) rvResult {
			if gctx.Err() != nil {
				return rvResult{}
			}
			return b.rvEdges(r, req)
		})
		return gctx.Err()
	})
	g.Go(func() error {
		positions := make([]int, len(r.requests))
		for i := range positions {
			positions[i] = i
		}
		rrLists = concurrent.MapOrdered(b.cfg.Workers, positions, func(pos int) rrResult {
			if gctx.Err() != nil {
				return rrResult{}
			}
			return b.rrEdges(r, pos)
		})
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	graph, err := b.assemble(r, rvLists, rrLists)
	if err != nil {
		return nil, err
	}

	elapsed := time.Since(start)
	metrics.GraphBuildSeconds.Observe(elapsed.Seconds())
	b.log.Info("shareability graph built",
		zap.String("round", r.id.String()),
		zap.Int("requests", len(r.requests)),
		zap.Int("vehicles", len(r.vehicles)),
		zap.Int("edges", graph.NumberOfEdges()),
		zap.Duration("elapsed", elapsed))
	b.log.Sugar().Debugf("round %s: %s", r.id, graph)
	return graph, nil
}

func (b *Builder) assemble(r *round, rvLists []rvResult, rrLists []rrResult) (*da.CompatibilityGraph, error) {
	graph := da.NewCompatibilityGraph()
	for _, req := range r.requests {
		graph.AddVertex(da.NewRequestVertex(req))
	}
	for _, v := range r.vehicles {
		graph.AddVertex(da.NewVehicleVertex(v))
	}

	var stats feasibility.Stats
	nRV, nRR, nHiring := 0, 0, 0
	for k, req := range r.requests {
		rv := rvLists[k]
		edges := pinHiringEdge(rv.edges, rv.hiring, rv.hasHiring)
		if err := graph.SetRVEdges(req, edges); err != nil {
			return nil, err
		}
		if err := graph.SetRREdges(req, rrLists[k].edges); err != nil {
			return nil, err
		}

		stats.Add(rv.stats)
		stats.Add(rrLists[k].stats)
		nRV += len(rv.edges)
		nRR += len(rrLists[k].edges)
		if rv.hasHiring {
			nHiring++
		}
	}

	metrics.ObserveChecks(stats.Checked, stats.Feasible)
	metrics.ObserveEdges(metrics.KindRV, nRV)
	metrics.ObserveEdges(metrics.KindRR, nRR)
	metrics.ObserveEdges(metrics.KindHiring, nHiring)
	b.log.Sugar().Infof("round %s: %d RV edges, %d RR edges, %d hiring edges, %d/%d sequences feasible",
		r.id, nRV, nRR, nHiring, stats.Feasible, stats.Checked)
	return graph, nil
}

func (b *Builder) checkIndices(sim *da.Context, requests, vehicles []int) error {
	seen := make(map[int]struct{}, len(requests))
	for _, req := range requests {
		if req < 0 || req >= sim.NumberOfRequests() {
			return util.WrapErrorf(nil, util.ErrNotFound, "request index %d", req)
		}
		if _, dup := seen[req]; dup {
			return util.WrapErrorf(nil, util.ErrBadParamInput, "request index %d listed twice", req)
		}
		seen[req] = struct{}{}
		if !sim.Request(req).IsWaiting() {
			return util.WrapErrorf(nil, util.ErrBadParamInput, "request %d is %s",
				sim.Request(req).GetId(), sim.Request(req).GetStatus())
		}
	}
	seen = make(map[int]struct{}, len(vehicles))
	for _, v := range vehicles {
		if v < 0 || v >= sim.NumberOfVehicles() {
			return util.WrapErrorf(nil, util.ErrNotFound, "vehicle index %d", v)
		}
		if _, dup := seen[v]; dup {
			return util.WrapErrorf(nil, util.ErrBadParamInput, "vehicle index %d listed twice", v)
		}
		seen[v] = struct{}{}
	}
	return nil
}

func sortedCopy(xs []int) []int {
	res := make([]int, len(xs))
	copy(res, xs)
	sort.Ints(res)
	return res
}

// BuildGraph builds the graph of every waiting request of sim against every vehicle, enumerating
// permutations on demand.
func BuildGraph(ctx context.Context, sim *da.Context, cfg Config, tt oracle.Oracle, log *zap.Logger) (*da.CompatibilityGraph, error) {
	return NewBuilder(cfg, tt, nil, log).BuildGraph(ctx, sim, sim.WaitingRequests(), sim.VehicleIndices())
}
