package entity

import (
	"time"

	"github.com/google/uuid"
)

// LinkState is the Google Wallet linkage state of a card.
type LinkState string

const (
	// LinkUnlinked means no provider object id has been stored yet.
	LinkUnlinked LinkState = "unlinked"
	// LinkLinking is the in-flight upsert of a first sync.
	LinkLinking LinkState = "linking"
	// LinkLinked means both the class id and object id are stored.
	LinkLinked LinkState = "linked"
)

// LoyaltyCard is owned by the external ledger. The provider linkage fields
// are the only columns this service writes.
type LoyaltyCard struct {
	ID             uuid.UUID `json:"id"`
	BusinessID     uuid.UUID `json:"business_id"`
	ClientID       uuid.UUID `json:"client_id"`
	CurrentBalance int       `json:"current_balance"`

	GoogleObjectID    string     `json:"google_object_id,omitempty"`
	GoogleClassID     string     `json:"google_class_id,omitempty"`
	GoogleLastUpdated *time.Time `json:"google_last_updated,omitempty"`

	AppleSerialNumber       string     `json:"apple_serial_number,omitempty"`
	ApplePassTypeIdentifier string     `json:"apple_pass_type_identifier,omitempty"`
	AppleLastUpdated        *time.Time `json:"apple_last_updated,omitempty"`
}

// GoogleLinkState reports the persisted linkage state. LinkLinking is never
// persisted, so it is not returned here. A card holding only one of the two
// ids is unlinked and its next sync backfills the other.
func (c *LoyaltyCard) GoogleLinkState() LinkState {
	if c.GoogleObjectID != "" && c.GoogleClassID != "" {
		return LinkLinked
	}

	return LinkUnlinked
}

// GoogleLinkage is written back after the first successful Google sync.
type GoogleLinkage struct {
	ObjectID  string
	ClassID   string
	UpdatedAt time.Time
}

// AppleLinkage is written back after an Apple pass is packaged.
type AppleLinkage struct {
	SerialNumber       string
	PassTypeIdentifier string
	UpdatedAt          time.Time
}

// CardSnapshot is the read-only input of a sync or render.
type CardSnapshot struct {
	Business *Business    `json:"business"`
	Card     *LoyaltyCard `json:"card"`
	Client   *Client      `json:"client,omitempty"`
}

// Progress is the card balance clamped to [0, target] for stamp visuals.
func (s *CardSnapshot) Progress() int {
	target := s.Business.Rules.TargetStamps
	balance := s.Card.CurrentBalance
	if balance < 0 {
		return 0
	}
	if balance > target {
		return target
	}

	return balance
}
