// Package delivery defines the contract shared by every inbound transport.
package delivery

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"
)

// Delivery is a long-running inbound transport started by the fx invoke in cmd/.
type Delivery interface {
	// Serve blocks until the transport stops. A graceful shutdown returns nil.
	Serve(ctx context.Context) error
}

// StartParams collects every Delivery provided into the "deliveries" group.
type StartParams struct {
	fx.In
	fx.Shutdowner

	Logger     *slog.Logger
	Deliveries []Delivery `group:"deliveries"`
}

// Start runs each delivery in its own goroutine. The first one to fail shuts
// the whole app down so fx still runs every stop hook.
func Start(ctx context.Context, params StartParams) {
	for _, d := range params.Deliveries {
		go func() {
			err := d.Serve(ctx)
			if err == nil {
				return
			}
			params.Logger.Error("Delivery stopped unexpectedly", slog.Any("error", err))

			if err := params.Shutdown(fx.ExitCode(1)); err != nil {
				params.Logger.Error("Failed to shutdown gracefully", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
