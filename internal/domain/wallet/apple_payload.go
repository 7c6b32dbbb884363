package wallet

import (
	"fmt"

	"stampcard/internal/domain/entity"
	"stampcard/internal/domain/strip"
)

// Apple pass constants.
const (
	PassFormatVersion  = 1
	BarcodeFormatQR    = "PKBarcodeFormatQR"
	barcodeEncoding    = "iso-8859-1"
	locationRelevantFn = "You're near %s. Show your card!"
)

// AppleIdentity is the issuer side of an Apple pass.
type AppleIdentity struct {
	PassTypeIdentifier string
	TeamIdentifier     string
	OrganizationName   string
}

// PassField is one labelled value on a pass.
type PassField struct {
	Key   string `json:"key"`
	Label string `json:"label,omitempty"`
	Value string `json:"value"`
}

// PassStructure holds the field groups of a generic pass.
type PassStructure struct {
	PrimaryFields   []PassField `json:"primaryFields,omitempty"`
	SecondaryFields []PassField `json:"secondaryFields,omitempty"`
	AuxiliaryFields []PassField `json:"auxiliaryFields,omitempty"`
	BackFields      []PassField `json:"backFields,omitempty"`
}

// PassBarcode is a barcode entry of pass.json.
type PassBarcode struct {
	Format          string `json:"format"`
	Message         string `json:"message"`
	MessageEncoding string `json:"messageEncoding"`
	AltText         string `json:"altText,omitempty"`
}

// PassLocation makes the pass relevant near a business.
type PassLocation struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RelevantText string  `json:"relevantText,omitempty"`
}

// PassJSON is the pass.json document of a generic-style pass.
type PassJSON struct {
	FormatVersion      int            `json:"formatVersion"`
	PassTypeIdentifier string         `json:"passTypeIdentifier"`
	SerialNumber       string         `json:"serialNumber"`
	TeamIdentifier     string         `json:"teamIdentifier"`
	OrganizationName   string         `json:"organizationName"`
	Description        string         `json:"description"`
	LogoText           string         `json:"logoText,omitempty"`
	BackgroundColor    string         `json:"backgroundColor,omitempty"`
	ForegroundColor    string         `json:"foregroundColor,omitempty"`
	LabelColor         string         `json:"labelColor,omitempty"`
	Generic            PassStructure  `json:"generic"`
	Barcodes           []PassBarcode  `json:"barcodes"`
	Locations          []PassLocation `json:"locations,omitempty"`
}

// AppleSerialNumber is the stored serial, or the card id on first package.
func AppleSerialNumber(card *entity.LoyaltyCard) string {
	if card.AppleSerialNumber != "" {
		return card.AppleSerialNumber
	}

	return card.ID.String()
}

// BuildPassJSON maps a card snapshot to pass.json.
func BuildPassJSON(snap *entity.CardSnapshot, id AppleIdentity) *PassJSON {
	b := snap.Business
	card := snap.Card
	target := max(b.Rules.TargetStamps, 1)
	colors := b.Branding.Colors

	org := id.OrganizationName
	if org == "" {
		org = b.Name
	}

	pass := &PassJSON{
		FormatVersion:      PassFormatVersion,
		PassTypeIdentifier: id.PassTypeIdentifier,
		SerialNumber:       AppleSerialNumber(card),
		TeamIdentifier:     id.TeamIdentifier,
		OrganizationName:   org,
		Description:        b.Name + " loyalty card",
		LogoText:           b.Name,
		BackgroundColor:    rgb(colors.Background, strip.DefaultBackground),
		ForegroundColor:    rgb(colors.Foreground, strip.DefaultForeground),
		LabelColor:         rgb(colors.Label, strip.DefaultForeground),
		Generic: PassStructure{
			PrimaryFields: []PassField{{
				Key:   "balance",
				Label: BalanceLabel(b.ProgramType),
				Value: FormatBalance(b.ProgramType, card.CurrentBalance, target),
			}},
		},
		Barcodes: []PassBarcode{{
			Format:          BarcodeFormatQR,
			Message:         card.ID.String(),
			MessageEncoding: barcodeEncoding,
			AltText:         shortID(card.ID.String()),
		}},
	}

	if b.Rules.RewardName != "" {
		pass.Generic.SecondaryFields = append(pass.Generic.SecondaryFields, PassField{
			Key: "reward", Label: "Reward", Value: b.Rules.RewardName,
		})
	}
	if snap.Client != nil && snap.Client.Name != "" {
		pass.Generic.AuxiliaryFields = append(pass.Generic.AuxiliaryFields, PassField{
			Key: "member", Label: "Member", Value: snap.Client.Name,
		})
	}

	pass.Generic.BackFields = backFields(b, card)

	if b.Location != nil {
		pass.Locations = []PassLocation{{
			Latitude:     b.Location.Lat(),
			Longitude:    b.Location.Lon(),
			RelevantText: fmt.Sprintf(locationRelevantFn, b.Name),
		}}
	}

	return pass
}

func backFields(b *entity.Business, card *entity.LoyaltyCard) []PassField {
	var fields []PassField
	if b.Terms != "" {
		fields = append(fields, PassField{Key: "terms", Label: "Terms & Conditions", Value: b.Terms})
	}

	contact := b.ContactEmail
	if b.ContactPhone != "" {
		if contact != "" {
			contact += "\n"
		}
		contact += b.ContactPhone
	}
	if b.Website != "" {
		if contact != "" {
			contact += "\n"
		}
		contact += b.Website
	}
	if contact != "" {
		fields = append(fields, PassField{Key: "contact", Label: "Contact", Value: contact})
	}

	return append(fields, PassField{Key: "cardId", Label: "Card ID", Value: card.ID.String()})
}

// rgb formats a hex color as the "rgb(r, g, b)" form Apple expects.
func rgb(hex, fallback string) string {
	c, err := strip.ParseHexColor(hex)
	if err != nil {
		c, _ = strip.ParseHexColor(fallback)
	}

	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}
