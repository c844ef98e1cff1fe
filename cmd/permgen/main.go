package main

import (
	"flag"

	"github.com/lintang-b-s/ridepool/pkg/logger"
	"github.com/lintang-b-s/ridepool/pkg/pdcombinatorics"
	"go.uber.org/zap"
)

var (
	maxRequests   = flag.Int("max_requests", 3, "largest number of requests to pick up")
	maxPassengers = flag.Int("max_passengers", 3, "largest number of onboard passengers")
	out           = flag.String("out", "./data/permutations.txt", "output table, compressed when it ends in .bz2")
)

func main() {
	flag.Parse()
	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	blocks := pdcombinatorics.EnumerateBlocks(*maxRequests, *maxPassengers)
	total := 0
	for key, perms := range blocks {
		total += len(perms)
		log.Debug("enumerated block", zap.Int("requests", key.Requests), zap.Int("passengers", key.Passengers),
			zap.Int("permutations", len(perms)))
	}

	if err := pdcombinatorics.WritePermutationTable(*out, blocks); err != nil {
		panic(err)
	}
	log.Info("permutation table written", zap.String("path", *out), zap.Int("blocks", len(blocks)),
		zap.Int("permutations", total))
}
