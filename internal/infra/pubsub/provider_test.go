package pubsub

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"stampcard/config"
	"stampcard/internal/domain/constants"
	"stampcard/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublisher(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("unconfigured drops triggers", func(t *testing.T) {
		p, err := newPublisher(context.Background(), nil, logger)
		require.NoError(t, err)
		assert.IsType(t, &noopPublisher{}, p)
		assert.NoError(t, p.PublishSyncTrigger(context.Background(), &entity.SyncTrigger{CardID: uuid.New(), Kind: entity.TriggerCardCreated}))
		assert.NoError(t, p.Close())
	})

	t.Run("local", func(t *testing.T) {
		p, err := newPublisher(context.Background(), &config.PubSubConfig{
			Provider:      constants.PubSubProviderLocal,
			LocalEndpoint: "http://localhost:8081/push",
		}, logger)
		require.NoError(t, err)
		assert.NotNil(t, p)
	})

	invalid := []struct {
		name string
		cfg  *config.PubSubConfig
	}{
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newPublisher(context.Background(), tt.cfg, logger)
			assert.True(t, errors.Is(err, ErrPublisherConfig))
		})
	}
}
