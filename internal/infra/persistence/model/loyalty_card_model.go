package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// BusinessModel is the GORM-specific struct for the 'businesses' table.
// Branding is the design wizard's JSON document, stored as-is.
type BusinessModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key"`
	Name         string         `gorm:"type:varchar(255);not null"`
	Slug         string         `gorm:"type:varchar(255)"`
	ProgramType  string         `gorm:"type:varchar(32);not null;default:stamps"`
	Branding     datatypes.JSON `gorm:"type:jsonb"`
	TargetStamps int            `gorm:"not null;default:10"`
	RewardName   string         `gorm:"type:varchar(255)"`
	Terms        string         `gorm:"type:text"`
	ContactEmail string         `gorm:"type:varchar(255)"`
	ContactPhone string         `gorm:"type:varchar(64)"`
	Website      string         `gorm:"type:varchar(512)"`
	Latitude     *float64
	Longitude    *float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}

// ClientModel is the GORM-specific struct for the 'clients' table.
type ClientModel struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key"`
	Name  string    `gorm:"type:varchar(255)"`
	Email string    `gorm:"type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (ClientModel) TableName() string {
	return "clients"
}

// LoyaltyCardModel is the GORM-specific struct for the 'loyalty_cards' table.
// The ledger owns the row; this service only writes the wallet columns.
type LoyaltyCardModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	BusinessID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ClientID       uuid.UUID `gorm:"type:uuid;not null;index"`
	CurrentBalance int       `gorm:"not null;default:0"`

	GoogleObjectID    *string `gorm:"type:varchar(255)"`
	GoogleClassID     *string `gorm:"type:varchar(255)"`
	GoogleLastUpdated *time.Time

	AppleSerialNumber       *string `gorm:"type:varchar(255)"`
	ApplePassTypeIdentifier *string `gorm:"type:varchar(255)"`
	AppleLastUpdated        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LoyaltyCardModel) TableName() string {
	return "loyalty_cards"
}
