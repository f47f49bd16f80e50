// Package metrics exposes solver run statistics as Prometheus collectors on
// a dedicated registry, written out in the node-exporter textfile format.
package metrics

import (
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/katalvlaran/sumsolve/report"
	"github.com/katalvlaran/sumsolve/ssp"
)

// Recorder owns a registry and the solver collectors registered on it.
// All methods are safe for concurrent use.
type Recorder struct {
	Registry *prometheus.Registry

	// Solves counts runs by algorithm label and outcome.
	Solves *prometheus.CounterVec
	// Duration records wall-clock run time in seconds.
	Duration *prometheus.HistogramVec
	// Ratio records sum/target of the final selection.
	Ratio *prometheus.HistogramVec
	// Items is the size of the most recently observed instance.
	Items prometheus.Gauge

	runtimeOnce sync.Once
}

// NewRecorder builds a Recorder with all solver collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		Registry: prometheus.NewRegistry(),
		Solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "sumsolve_solves_total", Help: "Solver runs by algorithm and outcome."},
			[]string{"algorithm", "outcome"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Name: "sumsolve_solve_duration_seconds", Help: "Solver run duration in seconds.", Buckets: prometheus.DefBuckets},
			[]string{"algorithm"},
		),
		Ratio: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Name: "sumsolve_solution_ratio", Help: "Selected sum divided by target.", Buckets: []float64{0.5, 0.9, 0.99, 0.999, 0.9999, 1}},
			[]string{"algorithm"},
		),
		Items: prometheus.NewGauge(
			prometheus.GaugeOpts{Name: "sumsolve_instance_items", Help: "Item count of the last solved instance."},
		),
	}
	r.Registry.MustRegister(r.Solves, r.Duration, r.Ratio, r.Items)

	return r
}

// RegisterRuntime adds the Go and process collectors; repeated calls are no-ops.
func (r *Recorder) RegisterRuntime() {
	r.runtimeOnce.Do(func() {
		r.Registry.MustRegister(collectors.NewGoCollector())
		r.Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

// Observe records one finished run. A nil Recorder ignores the call.
func (r *Recorder) Observe(algo string, res ssp.Result, target uint64, size int) {
	if r == nil {
		return
	}
	r.Solves.WithLabelValues(algo, OutcomeLabel(res.Outcome)).Inc()
	r.Duration.WithLabelValues(algo).Observe(res.Elapsed.Seconds())
	r.Ratio.WithLabelValues(algo).Observe(report.Ratio(res.Sum, target))
	r.Items.Set(float64(size))
}

// WriteTextfile writes every registered metric to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.Registry)
}

// OutcomeLabel turns an Outcome into a label value ("timed out" -> "timed_out").
func OutcomeLabel(o ssp.Outcome) string {
	return strings.ReplaceAll(o.String(), " ", "_")
}
