package bootstrap

import (
	"context"
	"log/slog"

	"candidate-assistance/internal/infra/events"
	"candidate-assistance/internal/pkg/clock"
	"candidate-assistance/internal/pkg/config"
	"candidate-assistance/internal/usecase/allocation"
	"candidate-assistance/internal/usecase/shared"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		fx.Annotate(
			NewDispatcher,
			fx.As(new(allocation.EventSink)),
		),
	),
)

// NewDispatcher always writes notification jobs and adds Kafka when brokers are configured.
func NewDispatcher(lc fx.Lifecycle, cfg config.Config, uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) (*events.Dispatcher, error) {
	handlers := []events.Handler{events.NewNotificationJobSink(uow, clk)}

	var kafkaSink *events.KafkaSink
	if cfg.Kafka.Enabled() {
		var err error
		kafkaSink, err = events.NewKafkaSink(events.KafkaConfig{
			Brokers:      cfg.Kafka.Brokers,
			Topic:        cfg.Kafka.Topic,
			MaxAttempts:  cfg.Kafka.MaxAttempts,
			WriteTimeout: cfg.Kafka.WriteTimeout,
		})
		if err != nil {
			return nil, err
		}
		handlers = append(handlers, kafkaSink)
	} else {
		logger.Info("Kafka publishing disabled: KAFKA_BROKERS not set")
	}

	d := events.NewDispatcher(cfg.Kafka.QueueSize, logger, handlers...)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			d.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			err := d.Stop(ctx)
			if kafkaSink != nil {
				if cerr := kafkaSink.Close(); cerr != nil {
					logger.Error("failed to close kafka writer", "error", cerr)
				}
			}
			return err
		},
	})
	return d, nil
}
