package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"stampcard/internal/domain/entity"
	"stampcard/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher implements EventPublisher using Google Cloud Pub/Sub
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher creates a new Google Pub/Sub publisher
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Check if topic exists using TopicAdminClient
	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)
	// triggers of one card are delivered in publish order
	publisher.EnableMessageOrdering = true

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishSyncTrigger publishes a trigger to Google Pub/Sub, ordered by card
func (p *googlePubSubPublisher) PublishSyncTrigger(ctx context.Context, trigger *entity.SyncTrigger) error {
	data, err := json.Marshal(trigger)
	if err != nil {
		return errors.WithStack(err)
	}

	msg := &pubsub.Message{
		Data:        data,
		Attributes:  triggerAttributes(trigger),
		OrderingKey: trigger.CardID.String(),
	}

	p.logger.Info("[GooglePubSub] Publishing sync trigger",
		slog.String("card_id", trigger.CardID.String()),
		slog.String("kind", string(trigger.Kind)),
	)

	result := p.publisher.Publish(ctx, msg)

	serverID, err := result.Get(ctx)
	if err != nil {
		// a failed ordered publish pauses the key until resumed
		p.publisher.ResumePublish(msg.OrderingKey)

		return errors.WithStack(err)
	}

	p.logger.Info("[GooglePubSub] Sync trigger published",
		slog.String("card_id", trigger.CardID.String()),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}

// triggerAttributes carries the routing fields outside the payload for
// subscription filters and tracing.
func triggerAttributes(trigger *entity.SyncTrigger) map[string]string {
	attributes := map[string]string{
		"card_id": trigger.CardID.String(),
		"kind":    string(trigger.Kind),
	}
	if trigger.RequestID != "" {
		attributes["request_id"] = trigger.RequestID
	}

	return attributes
}
