package service

import (
	"context"

	"github.com/google/uuid"
)

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// NotifyCardUpdated sends a data message to every device following the card's topic
	NotifyCardUpdated(ctx context.Context, cardID uuid.UUID, data map[string]string) error
}
