//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"nli/internal"
	"nli/internal/controllers"
	"nli/internal/dataset"
	"nli/internal/providers"
	"nli/internal/services"
	"nli/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		dataset.NewZstdCompressor,
		dataset.NewStore,
		dataset.NewLoader,
		dataset.NewScheduler,
		services.NewInsightsService,
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
