package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	da "github.com/lintang-b-s/ridepool/pkg/datastructure"
	"github.com/lintang-b-s/ridepool/pkg/instance"
	"github.com/lintang-b-s/ridepool/pkg/logger"
	"github.com/lintang-b-s/ridepool/pkg/metrics"
	"github.com/lintang-b-s/ridepool/pkg/oracle"
	"github.com/lintang-b-s/ridepool/pkg/pdcombinatorics"
	"github.com/lintang-b-s/ridepool/pkg/shareability"
	"github.com/lintang-b-s/ridepool/pkg/util"
	"go.uber.org/zap"
)

var (
	configPath   = flag.String("config", "", "config file (yaml), defaults are used when empty")
	instancePath = flag.String("instance", "./data/instance.yaml", "dispatch round instance (yaml, optionally .bz2)")
	matrixPath   = flag.String("matrix", "", "travel time matrix, geodesic travel times over the instance coordinates when empty")
	tablePath    = flag.String("table", "", "precomputed pickup and drop-off permutation table")
	speedKmh     = flag.Float64("speed", 30.0, "vehicle speed in km/h for geodesic travel times")
	cacheSize    = flag.Int("cache", 0, "travel time cache size, no cache when 0")
)

func main() {
	flag.Parse()
	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	metrics.RegisterDefault()

	if *configPath != "" {
		if err := util.ReadConfig(*configPath); err != nil {
			panic(err)
		}
	}
	cfg := shareability.NewConfigFromViper()
	if *tablePath != "" {
		cfg.PermutationTablePath = *tablePath
	}

	inst, err := instance.Read(*instancePath)
	if err != nil {
		panic(err)
	}

	var tt oracle.Oracle
	if *matrixPath != "" {
		tt, err = oracle.ReadMatrixOracle(*matrixPath)
		if err != nil {
			panic(err)
		}
	} else {
		tt = oracle.NewGeodesicOracle(inst.Coordinates, *speedKmh)
	}
	if *cacheSize > 0 {
		tt, err = oracle.NewCachedOracle(tt, *cacheSize)
		if err != nil {
			panic(err)
		}
	}

	source, err := pdcombinatorics.LoadSource(cfg.PermutationTablePath, log)
	if err != nil {
		panic(err)
	}

	sim, err := inst.NewContext(tt)
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	builder := shareability.NewBuilder(cfg, tt, source, log).WithLocator(inst.Locate)
	graph, err := builder.BuildGraph(ctx, sim, sim.WaitingRequests(), sim.VehicleIndices())
	if err != nil {
		log.Error("building shareability graph failed", zap.Error(err))
		os.Exit(1)
	}

	printGraph(sim, graph)
}

func printGraph(sim *da.Context, graph *da.CompatibilityGraph) {
	fmt.Println(graph)
	for _, r := range sim.WaitingRequests() {
		req := sim.Request(r)
		fmt.Printf("request %d:\n", req.GetId())
		for _, e := range graph.RVEdges(r) {
			v := sim.Vehicle(e.GetFrom().Index)
			if e.IsHiringEdge() {
				fmt.Printf("  vehicle %d delay %d (hire)\n", v.GetId(), e.GetWeight())
				continue
			}
			fmt.Printf("  vehicle %d delay %d\n", v.GetId(), e.GetWeight())
		}
		for _, e := range graph.RREdges(r) {
			other := sim.Request(e.GetTo().Index)
			fmt.Printf("  request %d delay %d\n", other.GetId(), e.GetWeight())
		}
	}
}
