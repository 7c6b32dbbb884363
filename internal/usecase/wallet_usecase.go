package usecase

import (
	"context"

	"stampcard/internal/domain/entity"
	"stampcard/internal/domain/service"

	"github.com/google/uuid"
)

// WalletUsecase issues and synchronizes wallet passes for loyalty cards.
type WalletUsecase interface {
	// SyncGoogle creates or updates the card's Google Wallet class and object
	// and returns a save URL. The linkage is stored on the first link only.
	SyncGoogle(ctx context.Context, cardID uuid.UUID) (*entity.GoogleSaveResult, error)

	// GoogleSaveQR syncs the card and encodes its save URL as a QR code PNG.
	GoogleSaveQR(ctx context.Context, cardID uuid.UUID) ([]byte, error)

	// PackageApple builds the Apple pass of a card and stores its serial number.
	PackageApple(ctx context.Context, cardID uuid.UUID) (*service.ApplePass, error)

	// BundleApple packages the Apple pass and zips it.
	BundleApple(ctx context.Context, cardID uuid.UUID) (*service.ApplePass, []byte, error)

	// PublishTrigger queues a sync trigger for the worker.
	PublishTrigger(ctx context.Context, trigger *entity.SyncTrigger) error

	// HandleTrigger runs the sync a trigger asks for and notifies holders.
	HandleTrigger(ctx context.Context, trigger *entity.SyncTrigger) error
}
