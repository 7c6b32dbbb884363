// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"time"

	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"
	"stampcard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// cardRepository implements the repository.CardRepository interface.
type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository is the constructor for cardRepository.
func NewCardRepository(db *gorm.DB) repository.CardRepository {
	return &cardRepository{
		db: db,
	}
}

// FindSnapshot loads a card, its business and, when present, its holder.
func (repo *cardRepository) FindSnapshot(ctx context.Context, cardID uuid.UUID) (*entity.CardSnapshot, error) {
	var cardM model.LoyaltyCardModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", cardID).
		First(&cardM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCardNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find loyalty card")
	}

	var businessM model.BusinessModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", cardM.BusinessID).
		First(&businessM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find business")
	}

	business, err := toBusinessDomain(&businessM)
	if err != nil {
		return nil, err
	}

	snap := &entity.CardSnapshot{
		Business: business,
		Card:     toCardDomain(&cardM),
	}

	var clientM model.ClientModel
	err = repo.db.WithContext(ctx).
		Where("id = ?", cardM.ClientID).
		First(&clientM).Error
	switch {
	case err == nil:
		snap.Client = toClientDomain(&clientM)
	case errors.Is(err, gorm.ErrRecordNotFound):
		// the holder is optional on a pass
	default:
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find client")
	}

	return snap, nil
}

// SaveGoogleLinkage fills in whichever provider id the card is missing. A
// half-linked row (object id without class id) is backfilled; a fully
// linked row is left alone, so two concurrent first links cannot both win.
func (repo *cardRepository) SaveGoogleLinkage(ctx context.Context, cardID uuid.UUID, linkage entity.GoogleLinkage) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LoyaltyCardModel{}).
		Where("id = ? AND "+googleUnlinkedClause, cardID).
		Updates(map[string]any{
			"google_object_id":    gorm.Expr("COALESCE(NULLIF(google_object_id, ''), ?)", linkage.ObjectID),
			"google_class_id":     gorm.Expr("COALESCE(NULLIF(google_class_id, ''), ?)", linkage.ClassID),
			"google_last_updated": linkage.UpdatedAt,
		})

	if result.Error != nil {
		return linkageWriteError(result.Error, "failed to save google linkage")
	}

	if result.RowsAffected == 0 {
		return repo.missingOrLinked(ctx, cardID)
	}

	return nil
}

// googleUnlinkedClause matches cards missing either Google id, the same
// rule as entity.LoyaltyCard.GoogleLinkState.
const googleUnlinkedClause = "(google_object_id IS NULL OR google_object_id = '' OR " +
	"google_class_id IS NULL OR google_class_id = '')"

// TouchGoogleUpdated records the time of a later successful sync.
func (repo *cardRepository) TouchGoogleUpdated(ctx context.Context, cardID uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LoyaltyCardModel{}).
		Where("id = ?", cardID).
		Update("google_last_updated", at)

	if result.Error != nil {
		return linkageWriteError(result.Error, "failed to update google sync time")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCardNotFound
	}

	return nil
}

// SaveAppleLinkage stores the serial and pass type of a packaged pass.
func (repo *cardRepository) SaveAppleLinkage(ctx context.Context, cardID uuid.UUID, linkage entity.AppleLinkage) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LoyaltyCardModel{}).
		Where("id = ?", cardID).
		Updates(map[string]any{
			"apple_serial_number":        linkage.SerialNumber,
			"apple_pass_type_identifier": linkage.PassTypeIdentifier,
			"apple_last_updated":         linkage.UpdatedAt,
		})

	if result.Error != nil {
		return linkageWriteError(result.Error, "failed to save apple linkage")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCardNotFound
	}

	return nil
}

func (repo *cardRepository) missingOrLinked(ctx context.Context, cardID uuid.UUID) error {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.LoyaltyCardModel{}).
		Where("id = ?", cardID).
		Count(&count).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to check loyalty card")
	}

	if count == 0 {
		return repository.ErrCardNotFound
	}

	return repository.ErrAlreadyLinked
}

// --- Mapper Functions ---

// toBusinessDomain converts a GORM BusinessModel to a domain Business entity.
func toBusinessDomain(data *model.BusinessModel) (*entity.Business, error) {
	if data == nil {
		return nil, nil
	}

	programType, err := entity.ParseProgramType(data.ProgramType)
	if err != nil {
		return nil, domainerrors.ErrValidation.WrapMessage(err.Error())
	}

	var branding entity.BrandingConfig
	if len(data.Branding) > 0 {
		if err := json.Unmarshal(data.Branding, &branding); err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode business branding")
		}
	}

	business := &entity.Business{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		ProgramType: programType,
		Branding:    branding,
		Rules: entity.RulesConfig{
			TargetStamps: data.TargetStamps,
			RewardName:   data.RewardName,
		},
		Terms:        data.Terms,
		ContactEmail: data.ContactEmail,
		ContactPhone: data.ContactPhone,
		Website:      data.Website,
	}

	if data.Latitude != nil && data.Longitude != nil {
		business.Location = &orb.Point{*data.Longitude, *data.Latitude}
	}

	return business, nil
}

// toCardDomain converts a GORM LoyaltyCardModel to a domain LoyaltyCard entity.
func toCardDomain(data *model.LoyaltyCardModel) *entity.LoyaltyCard {
	if data == nil {
		return nil
	}

	return &entity.LoyaltyCard{
		ID:                      data.ID,
		BusinessID:              data.BusinessID,
		ClientID:                data.ClientID,
		CurrentBalance:          data.CurrentBalance,
		GoogleObjectID:          deref(data.GoogleObjectID),
		GoogleClassID:           deref(data.GoogleClassID),
		GoogleLastUpdated:       data.GoogleLastUpdated,
		AppleSerialNumber:       deref(data.AppleSerialNumber),
		ApplePassTypeIdentifier: deref(data.ApplePassTypeIdentifier),
		AppleLastUpdated:        data.AppleLastUpdated,
	}
}

// toClientDomain converts a GORM ClientModel to a domain Client entity.
func toClientDomain(data *model.ClientModel) *entity.Client {
	if data == nil {
		return nil
	}

	return &entity.Client{
		ID:    data.ID,
		Name:  data.Name,
		Email: data.Email,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
