package components

import (
	"context"
	"log/slog"
	"time"

	"candidate-assistance/internal/domain/resource"
	"candidate-assistance/internal/infra/importer"
	"candidate-assistance/internal/pkg/clock"
	"candidate-assistance/internal/pkg/config"
	"candidate-assistance/internal/pkg/errs"
	"candidate-assistance/internal/usecase/allocation"
	"candidate-assistance/internal/usecase/assistance"
	"candidate-assistance/internal/usecase/auth"
	"candidate-assistance/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseAssistanceModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	allocation.NewEngine,
)

var usecaseAssistanceModule = fx.Module("usecase/assistance",
	fx.Provide(
		NewInventorySource,
		NewRegistry,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		auth.NewTokenValidator,
	),
)

// NewInventorySource returns nil when no inventory bucket is configured.
func NewInventorySource(cfg config.Config) (assistance.ObjectSource, error) {
	if !cfg.S3.Enabled() {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	src, err := importer.NewS3Source(ctx, cfg.S3.Bucket, cfg.S3.Prefix, cfg.S3.Endpoint)
	if err != nil {
		return nil, err
	}
	return src, nil
}

// NewRegistry builds one service per configured PROVIDER:SERVICE_CODE pair.
func NewRegistry(
	cfg config.Config,
	engine *allocation.Engine,
	uow shared.UnitOfWork,
	clk clock.Clock,
	bucket assistance.ObjectSource,
	logger *slog.Logger,
) (*assistance.Registry, error) {
	pairs, err := cfg.Assistance.Pairs()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrConfiguration)
	}
	loc, err := time.LoadLocation(cfg.Assistance.ImportTimeZone)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "ASSISTANCE_IMPORT_TIMEZONE %q", cfg.Assistance.ImportTimeZone), errs.ErrConfiguration)
	}

	importers := map[resource.Provider]assistance.Importer{
		importer.ProviderDuolingo: importer.NewDuolingoImporter(uow, loc, logger),
	}

	services := make([]*assistance.Service, 0, len(pairs))
	for _, p := range pairs {
		key, err := resource.NewKey(p.Provider, p.ServiceCode)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrConfiguration)
		}
		opts := []assistance.Option{assistance.WithLogger(logger)}
		if bucket != nil {
			opts = append(opts, assistance.WithBucket(bucket))
		}
		svc, err := assistance.NewService(assistance.Strategy{
			Provider:    key.Provider,
			ServiceCode: key.ServiceCode,
			Allocator:   allocation.NewOldestExpiryFirst(key, clk),
			Importer:    importers[key.Provider],
		}, engine, uow, opts...)
		if err != nil {
			return nil, err
		}
		services = append(services, svc)
	}
	return assistance.NewRegistry(services...)
}
