package wallet

import (
	"fmt"

	"stampcard/internal/domain/entity"
	"stampcard/internal/domain/strip"

	"google.golang.org/api/walletobjects/v1"
)

const (
	reviewStatusUnderReview = "UNDER_REVIEW"
	objectStateActive       = "ACTIVE"
	barcodeTypeQR           = "QR_CODE"

	moduleReward   = "reward"
	moduleProgress = "progress"
)

// GoogleInput is what a Google class/object pair is built from. HeroURL is
// the already-resolved strip image; it is passed through the durability
// filter again here because it leaves the service.
type GoogleInput struct {
	IssuerID string
	Snapshot *entity.CardSnapshot
	HeroURL  string
	Avatar   strip.AvatarFallback
}

// BuildLoyaltyClass maps a business to its Google loyalty class.
func BuildLoyaltyClass(in GoogleInput) *walletobjects.LoyaltyClass {
	b := in.Snapshot.Business
	bg := strip.HexOr(b.Branding.Colors.Background, strip.DefaultBackground)

	class := &walletobjects.LoyaltyClass{
		Id:                 ClassID(in.IssuerID, b),
		IssuerName:         b.Name,
		ProgramName:        programName(b),
		ProgramLogo:        image(in.Avatar.Durable(b.Branding.Assets.Logo, b.Name, bg)),
		HexBackgroundColor: bg,
		ReviewStatus:       reviewStatusUnderReview,
	}
	if strip.IsValidImageURL(in.HeroURL) {
		class.HeroImage = image(in.HeroURL)
	}
	if b.Website != "" {
		class.HomepageUri = &walletobjects.Uri{Uri: b.Website, Description: b.Name}
	}

	return class
}

// BuildLoyaltyObject maps a card to its Google loyalty object.
func BuildLoyaltyObject(in GoogleInput) *walletobjects.LoyaltyObject {
	snap := in.Snapshot
	b := snap.Business
	card := snap.Card
	target := max(b.Rules.TargetStamps, 1)

	obj := &walletobjects.LoyaltyObject{
		Id:      ObjectID(in.IssuerID, card),
		ClassId: ClassID(in.IssuerID, b),
		State:   objectStateActive,
		LoyaltyPoints: &walletobjects.LoyaltyPoints{
			Label: BalanceLabel(b.ProgramType),
			Balance: &walletobjects.LoyaltyPointsBalance{
				String: FormatBalance(b.ProgramType, card.CurrentBalance, target),
			},
		},
		Barcode: &walletobjects.Barcode{
			Type:          barcodeTypeQR,
			Value:         card.ID.String(),
			AlternateText: shortID(card.ID.String()),
		},
		AccountId: card.ID.String(),
	}
	if snap.Client != nil {
		obj.AccountName = snap.Client.Name
	}
	if strip.IsValidImageURL(in.HeroURL) {
		obj.HeroImage = image(in.HeroURL)
	}

	if b.Rules.RewardName != "" {
		obj.TextModulesData = append(obj.TextModulesData, &walletobjects.TextModuleData{
			Id:     moduleReward,
			Header: "Reward",
			Body:   b.Rules.RewardName,
		})
	}
	if b.ProgramType == entity.ProgramTypeStamps || b.ProgramType == "" {
		obj.TextModulesData = append(obj.TextModulesData, &walletobjects.TextModuleData{
			Id:     moduleProgress,
			Header: "Progress",
			Body:   fmt.Sprintf("%d / %d", snap.Progress(), target),
		})
	}

	return obj
}

func programName(b *entity.Business) string {
	if b.Rules.RewardName != "" {
		return b.Name + " Rewards"
	}

	return b.Name
}

func image(uri string) *walletobjects.Image {
	return &walletobjects.Image{
		SourceUri: &walletobjects.ImageUri{Uri: uri},
	}
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}

	return id[:8]
}
