// Command gadgetshop serves the shop REST API.
package main

import (
	"context"

	"gadgetshop/config"
	"gadgetshop/internal/delivery"
	"gadgetshop/internal/delivery/api"
	"gadgetshop/internal/delivery/api/middleware"
	"gadgetshop/internal/delivery/api/router/handler"
	"gadgetshop/internal/infra/auth"
	logs "gadgetshop/internal/infra/log"
	"gadgetshop/internal/infra/persistence"
	"gadgetshop/internal/infra/pubsub"
	"gadgetshop/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.Provide(config.New, logs.New, context.Background),
		persistence.Module,
		pubsub.Module,
		fx.Provide(auth.NewJWTService),
		injectUsecase(),
		injectHandler(),
		fx.Provide(
			fx.Annotate(api.NewServer, fx.ResultTags(`group:"deliveries"`)),
		),
		fx.Invoke(delivery.Start),
	).Run()
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewAuthService,
		impl.NewUserService,
		impl.NewCatalogService,
		impl.NewProductService,
		impl.NewCollectionService,
		impl.NewOrderService,
		impl.NewFlashSaleService,
	)
}

func injectHandler() fx.Option {
	return fx.Provide(
		middleware.NewAuthMiddleware,
		handler.NewCatalogHandler,
		handler.NewProductHandler,
		handler.NewUserHandler,
		handler.NewCollectionHandler,
		handler.NewOrderHandler,
		handler.NewFlashSaleHandler,
	)
}
