package service

import (
	"context"

	"google.golang.org/api/walletobjects/v1"
)

// UpsertOutcome tells which branch of a create-or-update was taken.
type UpsertOutcome string

const (
	UpsertCreated UpsertOutcome = "created"
	UpsertUpdated UpsertOutcome = "updated"
)

// GoogleWalletGateway performs idempotent create-or-update calls against the
// Google Wallet REST API. The outcome is reported even when the call fails,
// so callers can tell a failed create from a failed update.
type GoogleWalletGateway interface {
	UpsertLoyaltyClass(ctx context.Context, class *walletobjects.LoyaltyClass) (UpsertOutcome, error)
	UpsertLoyaltyObject(ctx context.Context, object *walletobjects.LoyaltyObject) (UpsertOutcome, error)

	// SaveURL signs a save-to-wallet JWT for objectID.
	SaveURL(objectID string) (string, error)
}
