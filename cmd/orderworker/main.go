// Command orderworker receives order.placed push messages and clears the
// purchased products from the buyer's cart.
package main

import (
	"context"

	"gadgetshop/config"
	"gadgetshop/internal/delivery"
	"gadgetshop/internal/delivery/worker"
	"gadgetshop/internal/delivery/worker/handler"
	logs "gadgetshop/internal/infra/log"
	"gadgetshop/internal/infra/persistence"
	"gadgetshop/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.Provide(config.New, logs.New, context.Background),
		persistence.Module,
		fx.Provide(
			impl.NewFulfillmentService,
			handler.NewPushHandler,
			fx.Annotate(worker.NewServer, fx.ResultTags(`group:"deliveries"`)),
		),
		fx.Invoke(delivery.Start),
	).Run()
}
