package postgres

import (
	"context"
	"testing"
	"time"

	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"
	"stampcard/internal/errors"
	"stampcard/internal/infra/persistence/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestToBusinessDomain(t *testing.T) {
	lat, lng := 25.033, 121.565
	businessM := &model.BusinessModel{
		ID:           uuid.MustParse("0b6f3e1c-58a4-4bd5-a4e0-9c9d4b1f0a11"),
		Name:         "Acme Coffee",
		ProgramType:  "POINTS",
		Branding:     datatypes.JSON(`{"visual_strategy":"hero_minimalist","colors":{"background":"#336699"},"assets":{"hero":"https://cdn.test/hero.png"},"grid":{"cols":4,"rows":2}}`),
		TargetStamps: 8,
		RewardName:   "Free latte",
		Latitude:     &lat,
		Longitude:    &lng,
	}

	business, err := toBusinessDomain(businessM)
	require.NoError(t, err)

	assert.Equal(t, entity.ProgramTypePoints, business.ProgramType)
	assert.Equal(t, entity.StrategyHeroMinimalist, business.Branding.Strategy)
	assert.Equal(t, "#336699", business.Branding.Colors.Background)
	assert.Equal(t, "https://cdn.test/hero.png", business.Branding.Assets.Hero)
	require.NotNil(t, business.Branding.Grid)
	assert.Equal(t, entity.RulesConfig{TargetStamps: 8, RewardName: "Free latte"}, business.Rules)

	require.NotNil(t, business.Location)
	assert.InDelta(t, lat, business.Location.Lat(), 1e-9)
	assert.InDelta(t, lng, business.Location.Lon(), 1e-9)
}

func TestToBusinessDomain_Errors(t *testing.T) {
	_, err := toBusinessDomain(&model.BusinessModel{ProgramType: "miles"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidation))

	_, err = toBusinessDomain(&model.BusinessModel{Branding: datatypes.JSON(`{not json`)})
	var dbErr *domainerrors.DatabaseExecuteError
	assert.True(t, errors.As(err, &dbErr))
}

func TestToBusinessDomain_NoLocation(t *testing.T) {
	lat := 1.0
	business, err := toBusinessDomain(&model.BusinessModel{Latitude: &lat})
	require.NoError(t, err)
	assert.Nil(t, business.Location)
	assert.Equal(t, entity.ProgramTypeStamps, business.ProgramType)
}

func TestToCardDomain(t *testing.T) {
	objectID := "3388000000022.card_1"
	classID := "3388000000022.acme_loyalty"
	updated := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	card := toCardDomain(&model.LoyaltyCardModel{
		ID:                uuid.New(),
		CurrentBalance:    7,
		GoogleObjectID:    &objectID,
		GoogleClassID:     &classID,
		GoogleLastUpdated: &updated,
	})

	assert.Equal(t, 7, card.CurrentBalance)
	assert.Equal(t, objectID, card.GoogleObjectID)
	assert.Equal(t, classID, card.GoogleClassID)
	assert.Equal(t, entity.LinkLinked, card.GoogleLinkState())
	assert.Empty(t, card.AppleSerialNumber)

	unlinked := toCardDomain(&model.LoyaltyCardModel{ID: uuid.New()})
	assert.Equal(t, entity.LinkUnlinked, unlinked.GoogleLinkState())
}

func TestToCardDomain_HalfLinked(t *testing.T) {
	objectID := "3388000000022.card_1"

	card := toCardDomain(&model.LoyaltyCardModel{ID: uuid.New(), GoogleObjectID: &objectID})
	assert.Equal(t, entity.LinkUnlinked, card.GoogleLinkState())
}

func newMockCardRepository(t *testing.T) (repository.CardRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	require.NoError(t, err)

	return NewCardRepository(db), mock
}

func TestCardRepository_SaveGoogleLinkage(t *testing.T) {
	cardID := uuid.New()
	linkage := entity.GoogleLinkage{
		ObjectID:  "3388000000022.card_1",
		ClassID:   "3388000000022.acme_loyalty",
		UpdatedAt: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	updateSQL := `UPDATE "loyalty_cards" SET "google_class_id"=COALESCE\(NULLIF\(google_class_id, ''\), \$1\),` +
		`"google_last_updated"=\$2,"google_object_id"=COALESCE\(NULLIF\(google_object_id, ''\), \$3\).*` +
		`WHERE id = \$5 AND \(google_object_id IS NULL .* google_class_id = ''\)`
	countSQL := `SELECT count\(\*\) FROM "loyalty_cards" WHERE id = \$1`

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "first link or half-linked backfill",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(updateSQL).
					WithArgs(linkage.ClassID, linkage.UpdatedAt, linkage.ObjectID, sqlmock.AnyArg(), cardID).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "already fully linked",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(updateSQL).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(countSQL).
					WithArgs(cardID).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
			},
			wantErr: repository.ErrAlreadyLinked,
		},
		{
			name: "card missing",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(updateSQL).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(countSQL).
					WithArgs(cardID).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
			},
			wantErr: repository.ErrCardNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockCardRepository(t)
			tt.setup(mock)

			err := repo.SaveGoogleLinkage(context.Background(), cardID, linkage)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
