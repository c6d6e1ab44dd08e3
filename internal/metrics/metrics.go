// Package metrics exports split session activity as Prometheus metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/billsplit/internal/split"
)

var _ split.Recorder = (*Recorder)(nil)

// Recorder implements split.Recorder with Prometheus collectors.
type Recorder struct {
	mutations   *prometheus.CounterVec
	allocations prometheus.Histogram
}

// NewRecorder creates a Recorder and registers its collectors with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "billsplit",
			Name:      "mutations_total",
			Help:      "Session mutations by operation and whether they were applied or rejected.",
		}, []string{"op", "result"}),
		allocations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "billsplit",
			Name:      "allocation_seconds",
			Help:      "Time spent computing allocations.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
	}

	for _, c := range []prometheus.Collector{r.mutations, r.allocations} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Mutation counts one mutating call.
func (r *Recorder) Mutation(op string, applied bool) {
	result := "applied"
	if !applied {
		result = "rejected"
	}
	r.mutations.WithLabelValues(op, result).Inc()
}

// Allocation observes how long one allocation run took.
func (r *Recorder) Allocation(_ int, elapsed time.Duration) {
	r.allocations.Observe(elapsed.Seconds())
}

// Rejected sums the rejected mutations gathered from g, by operation.
func Rejected(g prometheus.Gatherer) (map[string]float64, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64)
	for _, mf := range families {
		if mf.GetName() != "billsplit_mutations_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["result"] == "rejected" {
				out[labels["op"]] += m.GetCounter().GetValue()
			}
		}
	}
	return out, nil
}
