package pubsub

import (
	"context"
	"log/slog"

	"gadgetshop/config"
	"gadgetshop/internal/domain/constants"
	"gadgetshop/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the order event transport from the pubsub config.
// A missing config yields a publisher that only logs.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	pubsubCfg := params.Config.PubSub
	if pubsubCfg == nil || pubsubCfg.Provider == "" {
		params.Logger.Info("Order events disabled, no pubsub provider configured")

		return &noopPublisher{logger: params.Logger}, nil
	}

	publisher, err := newPublisher(params.Ctx, pubsubCfg, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.StopHook(func() error {
		params.Logger.Info("Closing order event publisher", slog.String("provider", pubsubCfg.Provider))

		return publisher.Close()
	}))

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub: local endpoint is required for local provider")
		}
		logger.Info("Order events pushed over HTTP", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		switch {
		case cfg.ProjectID == "":
			return nil, errors.New("pubsub: project ID is required for google provider")
		case cfg.TopicID == "":
			return nil, errors.New("pubsub: topic ID is required for google provider")
		}
		logger.Info("Order events published to Google Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	}

	return nil, errors.Errorf("pubsub: unknown pubsub provider %q", cfg.Provider)
}

// noopPublisher drops order events when no provider is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishOrderPlaced(_ context.Context, event *service.OrderPlacedEvent) error {
	p.logger.Debug("Order event dropped, publishing disabled",
		slog.String("order_id", event.OrderID),
		slog.Int("products", len(event.ProductIDs)),
	)

	return nil
}

func (p *noopPublisher) Close() error { return nil }

// Module provides the order event publisher.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
