// Package wallet builds the provider payloads of a loyalty card: Google
// Wallet class and object resources, Apple pass.json, and the claim sets
// signed for Google. It performs no I/O.
package wallet

import (
	"strings"

	"stampcard/internal/domain/entity"
)

// Slugify lowercases s and turns every run of characters outside [a-z0-9]
// into a single underscore, trimming underscores at both ends.
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	pending := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(r)

			continue
		}
		pending = true
	}

	return b.String()
}

// ClassID is the deterministic Google loyalty class id of a business. A slug
// that slugifies to nothing falls back to the business id.
func ClassID(issuerID string, business *entity.Business) string {
	slug := Slugify(business.Slug)
	if slug == "" {
		slug = Slugify(business.Name)
	}
	if slug == "" {
		slug = compactUUID(business.ID.String())
	}

	return issuerID + "." + slug + "_loyalty"
}

// ObjectID is the Google loyalty object id of a card. A stored id always
// wins so re-syncs address the object created on first link.
func ObjectID(issuerID string, card *entity.LoyaltyCard) string {
	if card.GoogleObjectID != "" {
		return card.GoogleObjectID
	}

	return issuerID + ".card_" + compactUUID(card.ID.String())
}

func compactUUID(id string) string {
	return strings.ReplaceAll(id, "-", "")
}
