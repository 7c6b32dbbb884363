// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"stampcard/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for card persistence.
var (
	// ErrCardNotFound is returned when a card is missing.
	ErrCardNotFound = errors.New("loyalty card not found")
	// ErrBusinessNotFound is returned when a card references a missing business.
	ErrBusinessNotFound = errors.New("business not found")
	// ErrAlreadyLinked is returned when a first-link write finds linkage already stored.
	ErrAlreadyLinked = errors.New("loyalty card already linked")
)

// CardRepository reads card snapshots and writes the wallet linkage columns.
// It never touches the balance, which belongs to the ledger.
type CardRepository interface {
	// FindSnapshot loads the card with its business and holder.
	FindSnapshot(ctx context.Context, cardID uuid.UUID) (*entity.CardSnapshot, error)

	// SaveGoogleLinkage stores the provider ids only if the card has none.
	// Returns ErrAlreadyLinked when another sync stored them first.
	SaveGoogleLinkage(ctx context.Context, cardID uuid.UUID, linkage entity.GoogleLinkage) error

	// TouchGoogleUpdated records a later successful sync of a linked card.
	TouchGoogleUpdated(ctx context.Context, cardID uuid.UUID, at time.Time) error

	// SaveAppleLinkage stores the serial number and pass type of a packaged pass.
	SaveAppleLinkage(ctx context.Context, cardID uuid.UUID, linkage entity.AppleLinkage) error
}
