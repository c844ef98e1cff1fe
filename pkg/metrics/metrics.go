package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry of the dispatcher
	Registry = prometheus.NewRegistry()

	// CheckerCalls counts sequences sent through the feasibility checker by outcome
	CheckerCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "ridepool_checker_calls_total", Help: "Sequences checked, by result."},
		[]string{"result"},
	)
	// GraphEdges counts the edges kept after pruning by kind (rv, rr, hiring)
	GraphEdges = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "ridepool_graph_edges_total", Help: "Shareability graph edges kept, by kind."},
		[]string{"kind"},
	)
	// GraphBuildSeconds records the duration of a dispatch round
	GraphBuildSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "ridepool_graph_build_seconds", Help: "Shareability graph build duration in seconds.",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30}},
	)
)

const (
	ResultFeasible   = "feasible"
	ResultInfeasible = "infeasible"

	KindRV     = "rv"
	KindRR     = "rr"
	KindHiring = "hiring"
)

// RegisterDefault registers the collectors to Registry once.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(CheckerCalls)
		Registry.MustRegister(GraphEdges)
		Registry.MustRegister(GraphBuildSeconds)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

var regOnce sync.Once

// ObserveChecks adds the outcome of checked sequences.
func ObserveChecks(checked, feasible int) {
	CheckerCalls.WithLabelValues(ResultFeasible).Add(float64(feasible))
	CheckerCalls.WithLabelValues(ResultInfeasible).Add(float64(checked - feasible))
}

func ObserveEdges(kind string, n int) {
	GraphEdges.WithLabelValues(kind).Add(float64(n))
}
