package bootstrap

import (
	"candidate-assistance/internal/infra/metrics"
	"candidate-assistance/internal/usecase/allocation"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewMetricsRegistry,
		func(reg *prometheus.Registry) prometheus.Gatherer { return reg },
		fx.Annotate(
			func(reg *prometheus.Registry) *metrics.Prometheus {
				return metrics.NewPrometheus(reg, "")
			},
			fx.As(new(allocation.Recorder)),
		),
	),
)

func NewMetricsRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
