// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"

	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// loadSnapshot reads a card snapshot and maps repository errors onto the
// error taxonomy returned to callers.
func loadSnapshot(ctx context.Context, repo repository.CardRepository, cardID uuid.UUID) (*entity.CardSnapshot, error) {
	if cardID == uuid.Nil {
		return nil, domainerrors.ErrValidation.WithDetails("card id is required")
	}

	snap, err := repo.FindSnapshot(ctx, cardID)
	switch {
	case errors.Is(err, repository.ErrCardNotFound):
		return nil, domainerrors.ErrCardNotFound.WithDetails(cardID.String())
	case errors.Is(err, repository.ErrBusinessNotFound):
		return nil, domainerrors.ErrBusinessNotFound.WithDetails(cardID.String())
	case err != nil:
		return nil, errors.Wrap(err, "failed to load card snapshot")
	}

	if snap.Business.Rules.TargetStamps < 1 {
		return nil, domainerrors.ErrValidation.WithDetails("target_stamps must be at least 1")
	}

	return snap, nil
}
