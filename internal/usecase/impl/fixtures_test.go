package impl

import (
	"io"
	"log/slog"

	"stampcard/config"
	"stampcard/internal/domain/entity"

	"github.com/google/uuid"
)

const testIssuerID = "3388000000022"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Wallet.Google.Enabled = true
	cfg.Wallet.Google.IssuerID = testIssuerID
	cfg.Assets.FallbackAvatarBaseURL = "https://avatars.example.com/api/"

	return cfg
}

type snapshotOption func(*entity.CardSnapshot)

func withStrategy(s entity.VisualStrategy) snapshotOption {
	return func(snap *entity.CardSnapshot) { snap.Business.Branding.Strategy = s }
}

func withBalance(balance int) snapshotOption {
	return func(snap *entity.CardSnapshot) { snap.Card.CurrentBalance = balance }
}

func withGoogleLinkage(objectID, classID string) snapshotOption {
	return func(snap *entity.CardSnapshot) {
		snap.Card.GoogleObjectID = objectID
		snap.Card.GoogleClassID = classID
	}
}

func newSnapshot(opts ...snapshotOption) *entity.CardSnapshot {
	businessID := uuid.MustParse("5b0e1c7a-4d1b-4a55-9f39-6a4f2f0d8c11")
	snap := &entity.CardSnapshot{
		Business: &entity.Business{
			ID:          businessID,
			Name:        "Bean There Café",
			Slug:        "bean-there",
			ProgramType: entity.ProgramTypeStamps,
			Branding: entity.BrandingConfig{
				Strategy: entity.StrategyHeroMinimalist,
				Colors:   entity.Colors{Background: "#336699", Foreground: "#ffffff"},
				Assets: entity.Assets{
					Logo:           "https://cdn.example.com/logo.png",
					Strip:          "https://cdn.example.com/strip.png",
					StripCompleted: "https://cdn.example.com/strip-done.png",
				},
				Icon: entity.IconCoffee,
			},
			Rules: entity.RulesConfig{TargetStamps: 10, RewardName: "Free flat white"},
		},
		Card: &entity.LoyaltyCard{
			ID:             uuid.MustParse("9a7c3e0e-2b7f-4c55-8d0e-3f1f6b9b2a10"),
			BusinessID:     businessID,
			ClientID:       uuid.MustParse("0c1d2e3f-4a5b-4c6d-8e7f-8091a2b3c4d5"),
			CurrentBalance: 4,
		},
		Client: &entity.Client{Name: "Ada Lovelace", Email: "ada@example.com"},
	}
	for _, opt := range opts {
		opt(snap)
	}

	return snap
}
