package entity

import (
	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Business owns a loyalty program.
type Business struct {
	ID           uuid.UUID      `json:"id"`
	Name         string         `json:"name"`
	Slug         string         `json:"slug"`
	ProgramType  ProgramType    `json:"program_type"`
	Branding     BrandingConfig `json:"branding"`
	Rules        RulesConfig    `json:"rules"`
	Terms        string         `json:"terms"`
	ContactEmail string         `json:"contact_email"`
	ContactPhone string         `json:"contact_phone"`
	Website      string         `json:"website"`
	Location     *orb.Point     `json:"location,omitempty"` // [lng, lat]
}

// Client is the card holder.
type Client struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}
