package metrics

import (
	"time"

	"candidate-assistance/internal/domain/resource"
	"candidate-assistance/internal/usecase/allocation"

	"github.com/prometheus/client_golang/prometheus"
)

const defaultNamespace = "casi"

// Prometheus implements allocation.Recorder.
type Prometheus struct {
	assignments   *prometheus.CounterVec
	reassignments *prometheus.CounterVec
	expired       *prometheus.CounterVec
	assignLatency *prometheus.HistogramVec
}

var _ allocation.Recorder = (*Prometheus)(nil)

// NewPrometheus registers the collectors on reg (prometheus.DefaultRegisterer if nil).
// Registering twice on the same registerer panics.
func NewPrometheus(reg prometheus.Registerer, namespace string) *Prometheus {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = defaultNamespace
	}

	labels := []string{"provider", "service"}
	p := &Prometheus{
		assignments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assignments_total",
			Help:      "Assign attempts by outcome (success, conflict, failed).",
		}, append(labels, "result")),
		reassignments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reassignments_total",
			Help:      "Reassign attempts by outcome (success, conflict, failed).",
		}, append(labels, "result")),
		expired: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resources_expired_total",
			Help:      "Resources moved to EXPIRED by the expiry sweep.",
		}, labels),
		assignLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "assign_duration_seconds",
			Help:      "Latency of assign operations in seconds, including the transaction.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms .. ~2.5s
		}, labels),
	}

	reg.MustRegister(p.assignments, p.reassignments, p.expired, p.assignLatency)
	return p
}

func (p *Prometheus) ObserveAssign(key resource.Key, result string, elapsed time.Duration) {
	p.assignments.WithLabelValues(key.Provider.String(), key.ServiceCode.String(), result).Inc()
	p.assignLatency.WithLabelValues(key.Provider.String(), key.ServiceCode.String()).Observe(elapsed.Seconds())
}

func (p *Prometheus) ObserveReassign(key resource.Key, result string) {
	p.reassignments.WithLabelValues(key.Provider.String(), key.ServiceCode.String(), result).Inc()
}

func (p *Prometheus) ObserveExpired(key resource.Key, count int) {
	if count <= 0 {
		return
	}
	p.expired.WithLabelValues(key.Provider.String(), key.ServiceCode.String()).Add(float64(count))
}
