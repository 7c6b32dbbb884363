package service

import (
	"context"

	"stampcard/internal/domain/entity"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishSyncTrigger publishes a wallet sync trigger for async processing
	PublishSyncTrigger(ctx context.Context, trigger *entity.SyncTrigger) error

	// Close releases any resources held by the publisher
	Close() error
}
