package pubsub

import (
	"context"
	"log/slog"

	"stampcard/config"
	"stampcard/internal/domain/constants"
	"stampcard/internal/domain/entity"
	"stampcard/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ErrPublisherConfig is returned when the configured provider cannot be built.
var ErrPublisherConfig = errors.New("invalid pubsub configuration")

// noopPublisher is a no-op implementation when Pub/Sub is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishSyncTrigger(ctx context.Context, trigger *entity.SyncTrigger) error {
	p.logger.DebugContext(ctx, "[NoopPubSub] Trigger publishing disabled, skipping",
		slog.String("card_id", trigger.CardID.String()),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates the trigger publisher selected by pubsub.provider.
// Without a provider, triggers are dropped and only the synchronous sync
// endpoints update passes.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing sync trigger publisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, sync triggers will be dropped")

		return &noopPublisher{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.Wrap(ErrPublisherConfig, "local endpoint is required for local provider")
		}
		logger.Info("Publishing sync triggers over local HTTP", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.Wrap(ErrPublisherConfig, "project ID and topic ID are required for google provider")
		}
		logger.Info("Publishing sync triggers to Google Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Wrapf(ErrPublisherConfig, "unknown pubsub provider %q", cfg.Provider)
	}
}
