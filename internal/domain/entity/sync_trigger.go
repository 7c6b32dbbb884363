package entity

import (
	"github.com/google/uuid"
)

// TriggerKind names the event that asked for a pass to be synced.
type TriggerKind string

const (
	TriggerCardCreated    TriggerKind = "card_created"
	TriggerBalanceChanged TriggerKind = "balance_changed"
	TriggerDesignSaved    TriggerKind = "design_saved"
)

// Valid reports whether k is a known trigger.
func (k TriggerKind) Valid() bool {
	switch k {
	case TriggerCardCreated, TriggerBalanceChanged, TriggerDesignSaved:
		return true
	default:
		return false
	}
}

// SyncTrigger is the unit of work carried on the sync topic.
type SyncTrigger struct {
	RequestID string      `json:"request_id,omitempty"`
	CardID    uuid.UUID   `json:"card_id"`
	Kind      TriggerKind `json:"kind"`
}

// GoogleSaveResult is returned to the caller of a Google sync.
type GoogleSaveResult struct {
	SaveURL  string `json:"saveUrl"`
	ObjectID string `json:"objectId"`
	ClassID  string `json:"classId"`
	// FirstLink is true when this sync created the linkage.
	FirstLink bool `json:"-"`
	// Degraded is true when an update of an existing resource failed and
	// the provider still shows older data.
	Degraded bool `json:"-"`
}
