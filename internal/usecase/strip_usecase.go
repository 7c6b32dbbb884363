package usecase

import (
	"context"

	"stampcard/internal/domain/entity"
	"stampcard/internal/domain/strip"

	"github.com/google/uuid"
)

// PreviewInput is an unsaved design rendered by the design wizard.
type PreviewInput struct {
	BusinessName string
	Branding     entity.BrandingConfig
	Rules        entity.RulesConfig
	Progress     int
	Width        int
	Height       int
}

// StripUsecase renders the stamp strip of a card.
type StripUsecase interface {
	// Scene builds the declarative strip scene of a card.
	Scene(ctx context.Context, cardID uuid.UUID) (*strip.Scene, error)

	// Render rasterizes the strip of a card to a PNG.
	Render(ctx context.Context, cardID uuid.UUID) ([]byte, error)

	// Preview builds a scene from a design that is not saved yet.
	Preview(ctx context.Context, in *PreviewInput) (*strip.Scene, error)

	// Hosted returns a previously hosted strip by its file name.
	Hosted(ctx context.Context, name string) ([]byte, error)

	// HeroURL resolves the image wallet providers show as hero or strip.
	// Iconic grid programs get their rendered strip hosted and its URL
	// returned. An empty URL means the pass has no hero image.
	HeroURL(ctx context.Context, snap *entity.CardSnapshot) (string, error)
}
