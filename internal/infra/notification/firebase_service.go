package notification

import (
	"context"
	"fmt"
	"log/slog"

	"stampcard/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// CardTopic is the FCM topic a holder's devices subscribe to for a card.
func CardTopic(cardID uuid.UUID) string {
	return "card_" + cardID.String()
}

type firebaseService struct {
	client *messaging.Client
	logger *slog.Logger
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, credentialsPath string, logger *slog.Logger) (service.NotificationService, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client: client,
		logger: logger,
	}, nil
}

// NotifyCardUpdated sends a silent data message to the card topic
func (s *firebaseService) NotifyCardUpdated(ctx context.Context, cardID uuid.UUID, data map[string]string) error {
	message := buildCardMessage(cardID, data)

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send card notification: %w", err)
	}

	s.logger.DebugContext(ctx, "Card notification sent",
		slog.String("topic", message.Topic),
		slog.String("message_id", messageID),
	)

	return nil
}

func buildCardMessage(cardID uuid.UUID, data map[string]string) *messaging.Message {
	payload := make(map[string]string, len(data)+1)
	for k, v := range data {
		payload[k] = v
	}
	payload["card_id"] = cardID.String()

	return &messaging.Message{
		Topic: CardTopic(cardID),
		Data:  payload,
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{ContentAvailable: true},
			},
		},
	}
}

// noopService is used when Firebase is not configured
type noopService struct {
	logger *slog.Logger
}

// NewNoopService returns a NotificationService that only logs.
func NewNoopService(logger *slog.Logger) service.NotificationService {
	return &noopService{logger: logger}
}

func (s *noopService) NotifyCardUpdated(ctx context.Context, cardID uuid.UUID, _ map[string]string) error {
	s.logger.DebugContext(ctx, "[NoopNotification] Firebase disabled, skipping",
		slog.String("card_id", cardID.String()),
	)

	return nil
}
