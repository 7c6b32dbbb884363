package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"stampcard/config"
	"stampcard/internal/domain/constants"
	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"
	"stampcard/internal/domain/service"
	mockRepo "stampcard/internal/mocks/repository"
	mockSvc "stampcard/internal/mocks/service"
	mockUsecase "stampcard/internal/mocks/usecase"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/walletobjects/v1"
)

type walletMocks struct {
	cardRepo  *mockRepo.MockCardRepository
	strips    *mockUsecase.MockStripUsecase
	google    *mockSvc.MockGoogleWalletGateway
	apple     *mockSvc.MockApplePassPackager
	locker    *mockSvc.MockLinkLocker
	publisher *mockSvc.MockEventPublisher
	notifier  *mockSvc.MockNotificationService
	qrcode    *mockSvc.MockQRCodeService
	metrics   *mockSvc.MockMetricsRecorder
}

var fixedNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func createTestWalletService(t *testing.T, cfg *config.Config) (usecase.WalletUsecase, *walletMocks) {
	m := &walletMocks{
		cardRepo:  mockRepo.NewMockCardRepository(t),
		strips:    mockUsecase.NewMockStripUsecase(t),
		google:    mockSvc.NewMockGoogleWalletGateway(t),
		apple:     mockSvc.NewMockApplePassPackager(t),
		locker:    mockSvc.NewMockLinkLocker(t),
		publisher: mockSvc.NewMockEventPublisher(t),
		notifier:  mockSvc.NewMockNotificationService(t),
		qrcode:    mockSvc.NewMockQRCodeService(t),
		metrics:   mockSvc.NewMockMetricsRecorder(t),
	}

	srv := NewWalletService(WalletServiceParams{
		CardRepo:  m.cardRepo,
		Strips:    m.strips,
		Google:    m.google,
		Apple:     m.apple,
		Locker:    m.locker,
		Publisher: m.publisher,
		Notifier:  m.notifier,
		QRCode:    m.qrcode,
		Metrics:   m.metrics,
		Config:    cfg,
		Logger:    discardLogger(),
	})
	srv.(*walletService).now = func() time.Time { return fixedNow }

	return srv, m
}

func expectLease(m *walletMocks, cardID uuid.UUID, released *bool) {
	m.locker.EXPECT().Acquire(mock.Anything, linkLeasePrefix+cardID.String()).
		Return(func() { *released = true }, nil)
}

func TestWalletService_SyncGoogle_FirstLink(t *testing.T) {
	srv, m := createTestWalletService(t, testConfig())
	ctx := context.Background()
	snap := newSnapshot()
	cardID := snap.Card.ID
	wantObjectID := testIssuerID + ".card_9a7c3e0e2b7f4c558d0e3f1f6b9b2a10"
	wantClassID := testIssuerID + ".bean_there_loyalty"
	released := false

	m.cardRepo.EXPECT().FindSnapshot(ctx, cardID).Return(snap, nil).Times(2)
	expectLease(m, cardID, &released)
	m.strips.EXPECT().HeroURL(ctx, snap).Return("https://cdn.example.com/strip.png", nil)
	m.google.EXPECT().UpsertLoyaltyClass(ctx, mock.MatchedBy(func(c *walletobjects.LoyaltyClass) bool {
		return c.Id == wantClassID && c.HeroImage.SourceUri.Uri == "https://cdn.example.com/strip.png"
	})).Return(service.UpsertCreated, nil)
	m.google.EXPECT().UpsertLoyaltyObject(ctx, mock.MatchedBy(func(o *walletobjects.LoyaltyObject) bool {
		return o.Id == wantObjectID && o.ClassId == wantClassID
	})).Return(service.UpsertCreated, nil)
	m.cardRepo.EXPECT().SaveGoogleLinkage(ctx, cardID, entity.GoogleLinkage{
		ObjectID:  wantObjectID,
		ClassID:   wantClassID,
		UpdatedAt: fixedNow,
	}).Return(nil)
	m.google.EXPECT().SaveURL(wantObjectID).Return("https://pay.google.com/gp/v/save/jwt", nil)
	m.metrics.EXPECT().ObserveSync(constants.ProviderGoogle, constants.OutcomeLinked).Return()

	result, err := srv.SyncGoogle(ctx, cardID)

	require.NoError(t, err)
	assert.Equal(t, wantObjectID, result.ObjectID)
	assert.Equal(t, wantClassID, result.ClassID)
	assert.Equal(t, "https://pay.google.com/gp/v/save/jwt", result.SaveURL)
	assert.True(t, result.FirstLink)
	assert.True(t, released)
}

func TestWalletService_SyncGoogle_LinkedCardSkipsLease(t *testing.T) {
	srv, m := createTestWalletService(t, testConfig())
	ctx := context.Background()
	snap := newSnapshot(withGoogleLinkage("3388000000022.legacy_object", "3388000000022.bean_there_loyalty"))
	cardID := snap.Card.ID

	m.cardRepo.EXPECT().FindSnapshot(ctx, cardID).Return(snap, nil).Once()
	m.strips.EXPECT().HeroURL(ctx, snap).Return("", nil)
	m.google.EXPECT().UpsertLoyaltyClass(ctx, mock.Anything).Return(service.UpsertUpdated, nil)
	m.google.EXPECT().UpsertLoyaltyObject(ctx, mock.MatchedBy(func(o *walletobjects.LoyaltyObject) bool {
		return o.Id == "3388000000022.legacy_object"
	})).Return(service.UpsertUpdated, nil)
	m.cardRepo.EXPECT().TouchGoogleUpdated(ctx, cardID, fixedNow).Return(nil)
	m.google.EXPECT().SaveURL("3388000000022.legacy_object").Return("https://pay.google.com/gp/v/save/jwt", nil)
	m.metrics.EXPECT().ObserveSync(constants.ProviderGoogle, constants.OutcomeUpdated).Return()

	result, err := srv.SyncGoogle(ctx, cardID)

	require.NoError(t, err)
	assert.False(t, result.FirstLink)
	assert.False(t, result.Degraded)
	m.cardRepo.AssertNotCalled(t, "SaveGoogleLinkage", mock.Anything, mock.Anything, mock.Anything)
}

func TestWalletService_SyncGoogle_HalfLinkedBackfillsClass(t *testing.T) {
	srv, m := createTestWalletService(t, testConfig())
	ctx := context.Background()
	snap := newSnapshot(withGoogleLinkage("3388000000022.legacy_object", ""))
	cardID := snap.Card.ID
	wantClassID := testIssuerID + ".bean_there_loyalty"
	released := false

	m.cardRepo.EXPECT().FindSnapshot(ctx, cardID).Return(snap, nil).Times(2)
	expectLease(m, cardID, &released)
	m.strips.EXPECT().HeroURL(ctx, snap).Return("", nil)
	m.google.EXPECT().UpsertLoyaltyClass(ctx, mock.Anything).Return(service.UpsertCreated, nil)
	m.google.EXPECT().UpsertLoyaltyObject(ctx, mock.Anything).Return(service.UpsertUpdated, nil)
	m.cardRepo.EXPECT().SaveGoogleLinkage(ctx, cardID, mock.MatchedBy(func(l entity.GoogleLinkage) bool {
		return l.ObjectID == "3388000000022.legacy_object" && l.ClassID == wantClassID
	})).Return(nil)
	m.google.EXPECT().SaveURL("3388000000022.legacy_object").Return("https://pay.google.com/gp/v/save/jwt", nil)
	m.metrics.EXPECT().ObserveSync(constants.ProviderGoogle, constants.OutcomeLinked).Return()

	result, err := srv.SyncGoogle(ctx, cardID)

	require.NoError(t, err)
	assert.True(t, result.FirstLink)
	assert.Equal(t, wantClassID, result.ClassID)
	assert.True(t, released)
}

func TestWalletService_SyncGoogle_UpdateFailureIsLogged(t *testing.T) {
	srv, m := createTestWalletService(t, testConfig())
	ctx := context.Background()
	snap := newSnapshot(withGoogleLinkage("3388000000022.obj", "3388000000022.bean_there_loyalty"))
	providerErr := &domainerrors.ProviderError{Provider: constants.ProviderGoogle, Operation: "update loyaltyObject", StatusCode: 400}

	m.cardRepo.EXPECT().FindSnapshot(ctx, snap.Card.ID).Return(snap, nil)
	m.strips.EXPECT().HeroURL(ctx, snap).Return("", nil)
	m.google.EXPECT().UpsertLoyaltyClass(ctx, mock.Anything).Return(service.UpsertUpdated, nil)
	m.google.EXPECT().UpsertLoyaltyObject(ctx, mock.Anything).Return(service.UpsertUpdated, providerErr)
	m.google.EXPECT().SaveURL("3388000000022.obj").Return("https://pay.google.com/gp/v/save/jwt", nil)
	m.metrics.EXPECT().ObserveSync(constants.ProviderGoogle, constants.OutcomeDegraded).Return()

	result, err := srv.SyncGoogle(ctx, snap.Card.ID)

	require.NoError(t, err)
	assert.True(t, result.Degraded)
	m.cardRepo.AssertNotCalled(t, "TouchGoogleUpdated", mock.Anything, mock.Anything, mock.Anything)
}

func TestWalletService_SyncGoogle_CreateFailureIsFatal(t *testing.T) {
	tests := []struct {
		name        string
		classResult service.UpsertOutcome
		classErr    error
		objectCall  bool
	}{
		{name: "class create rejected", classResult: service.UpsertCreated, classErr: &domainerrors.ProviderError{StatusCode: 400, Body: `{"error":{"message":"bad class"}}`}},
		{name: "class lookup failed", classResult: "", classErr: errors.New("connection refused")},
		{name: "object create rejected", classResult: service.UpsertCreated, objectCall: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := createTestWalletService(t, testConfig())
			ctx := context.Background()
			snap := newSnapshot()
			released := false
			objectErr := &domainerrors.ProviderError{StatusCode: 400, Body: `{"error":{"message":"bad object"}}`}

			m.cardRepo.EXPECT().FindSnapshot(ctx, snap.Card.ID).Return(snap, nil)
			expectLease(m, snap.Card.ID, &released)
			m.strips.EXPECT().HeroURL(ctx, snap).Return("", nil)
			m.google.EXPECT().UpsertLoyaltyClass(ctx, mock.Anything).Return(tt.classResult, tt.classErr)
			if tt.objectCall {
				m.google.EXPECT().UpsertLoyaltyObject(ctx, mock.Anything).Return(service.UpsertCreated, objectErr)
			}
			m.metrics.EXPECT().ObserveSync(constants.ProviderGoogle, constants.OutcomeFailed).Return()

			result, err := srv.SyncGoogle(ctx, snap.Card.ID)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, released)
			if tt.objectCall {
				var pe *domainerrors.ProviderError
				require.ErrorAs(t, err, &pe)
				assert.Contains(t, pe.Body, "bad object")
			}
			m.cardRepo.AssertNotCalled(t, "SaveGoogleLinkage", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestWalletService_SyncGoogle_LeaseHeld(t *testing.T) {
	srv, m := createTestWalletService(t, testConfig())
	ctx := context.Background()
	snap := newSnapshot()

	m.cardRepo.EXPECT().FindSnapshot(ctx, snap.Card.ID).Return(snap, nil)
	m.locker.EXPECT().Acquire(ctx, mock.Anything).Return(nil, service.ErrLockHeld)
	m.metrics.EXPECT().ObserveSync(constants.ProviderGoogle, constants.OutcomeFailed).Return()

	_, err := srv.SyncGoogle(ctx, snap.Card.ID)

	assert.ErrorIs(t, err, domainerrors.ErrLinkInProgress)
}

func TestWalletService_SyncGoogle_LinkedWhileWaiting(t *testing.T) {
	srv, m := createTestWalletService(t, testConfig())
	ctx := context.Background()
	unlinked := newSnapshot()
	linked := newSnapshot(withGoogleLinkage("3388000000022.winner", "3388000000022.bean_there_loyalty"))
	released := false

	m.cardRepo.EXPECT().FindSnapshot(ctx, unlinked.Card.ID).Return(unlinked, nil).Once()
	m.cardRepo.EXPECT().FindSnapshot(ctx, unlinked.Card.ID).Return(linked, nil).Once()
	expectLease(m, unlinked.Card.ID, &released)
	m.strips.EXPECT().HeroURL(ctx, linked).Return("", nil)
	m.google.EXPECT().UpsertLoyaltyClass(ctx, mock.Anything).Return(service.UpsertUpdated, nil)
	m.google.EXPECT().UpsertLoyaltyObject(ctx, mock.Anything).Return(service.UpsertUpdated, nil)
	m.cardRepo.EXPECT().TouchGoogleUpdated(ctx, unlinked.Card.ID, fixedNow).Return(nil)
	m.google.EXPECT().SaveURL("3388000000022.winner").Return("https://pay.google.com/gp/v/save/jwt", nil)
	m.metrics.EXPECT().ObserveSync(constants.ProviderGoogle, constants.OutcomeUpdated).Return()

	result, err := srv.SyncGoogle(ctx, unlinked.Card.ID)

	require.NoError(t, err)
	assert.Equal(t, "3388000000022.winner", result.ObjectID)
	assert.False(t, result.FirstLink)
}

func TestWalletService_SyncGoogle_AlreadyLinkedOnSave(t *testing.T) {
	srv, m := createTestWalletService(t, testConfig())
	ctx := context.Background()
	snap := newSnapshot()
	released := false

	m.cardRepo.EXPECT().FindSnapshot(ctx, snap.Card.ID).Return(snap, nil)
	expectLease(m, snap.Card.ID, &released)
	m.strips.EXPECT().HeroURL(ctx, snap).Return("", nil)
	m.google.EXPECT().UpsertLoyaltyClass(ctx, mock.Anything).Return(service.UpsertUpdated, nil)
	m.google.EXPECT().UpsertLoyaltyObject(ctx, mock.Anything).Return(service.UpsertUpdated, nil)
	m.cardRepo.EXPECT().SaveGoogleLinkage(ctx, snap.Card.ID, mock.Anything).Return(repository.ErrAlreadyLinked)
	m.google.EXPECT().SaveURL(mock.Anything).Return("https://pay.google.com/gp/v/save/jwt", nil)
	m.metrics.EXPECT().ObserveSync(constants.ProviderGoogle, constants.OutcomeUpdated).Return()

	result, err := srv.SyncGoogle(ctx, snap.Card.ID)

	require.NoError(t, err)
	assert.False(t, result.FirstLink)
}

func TestWalletService_SyncGoogle_Disabled(t *testing.T) {
	cfg := testConfig()
	cfg.Wallet.Google.Enabled = false
	srv, m := createTestWalletService(t, cfg)

	m.metrics.EXPECT().ObserveSync(constants.ProviderGoogle, constants.OutcomeFailed).Return()

	_, err := srv.SyncGoogle(context.Background(), uuid.New())

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusServiceUnavailable, appErr.HTTPCode())
	assert.ErrorIs(t, err, domainerrors.ErrConfiguration)
}

func TestWalletService_SyncGoogle_CardNotFound(t *testing.T) {
	srv, m := createTestWalletService(t, testConfig())
	ctx := context.Background()
	cardID := uuid.New()

	m.cardRepo.EXPECT().FindSnapshot(ctx, cardID).Return(nil, repository.ErrCardNotFound)
	m.metrics.EXPECT().ObserveSync(constants.ProviderGoogle, constants.OutcomeFailed).Return()

	_, err := srv.SyncGoogle(ctx, cardID)

	assert.ErrorIs(t, err, domainerrors.ErrCardNotFound)
}

func TestWalletService_GoogleSaveQR(t *testing.T) {
	srv, m := createTestWalletService(t, testConfig())
	ctx := context.Background()
	snap := newSnapshot(withGoogleLinkage("3388000000022.obj", "3388000000022.bean_there_loyalty"))

	m.cardRepo.EXPECT().FindSnapshot(ctx, snap.Card.ID).Return(snap, nil)
	m.strips.EXPECT().HeroURL(ctx, snap).Return("", nil)
	m.google.EXPECT().UpsertLoyaltyClass(ctx, mock.Anything).Return(service.UpsertUpdated, nil)
	m.google.EXPECT().UpsertLoyaltyObject(ctx, mock.Anything).Return(service.UpsertUpdated, nil)
	m.cardRepo.EXPECT().TouchGoogleUpdated(ctx, snap.Card.ID, fixedNow).Return(nil)
	m.google.EXPECT().SaveURL("3388000000022.obj").Return("https://pay.google.com/gp/v/save/jwt", nil)
	m.metrics.EXPECT().ObserveSync(constants.ProviderGoogle, constants.OutcomeUpdated).Return()
	m.qrcode.EXPECT().GeneratePNG("https://pay.google.com/gp/v/save/jwt").Return([]byte("qr"), nil)

	png, err := srv.GoogleSaveQR(ctx, snap.Card.ID)

	require.NoError(t, err)
	assert.Equal(t, []byte("qr"), png)
}

func TestWalletService_PackageApple(t *testing.T) {
	tests := []struct {
		name    string
		omitted []string
		outcome string
	}{
		{name: "all assets", outcome: constants.OutcomePackaged},
		{name: "missing strip", omitted: []string{"strip.png"}, outcome: constants.OutcomeDegraded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := createTestWalletService(t, testConfig())
			ctx := context.Background()
			snap := newSnapshot()
			pass := &service.ApplePass{
				SerialNumber:       snap.Card.ID.String(),
				PassTypeIdentifier: "pass.com.stampcard.loyalty",
				Signature:          service.Unsigned{Reason: "no certificate"},
				Omitted:            tt.omitted,
			}

			m.cardRepo.EXPECT().FindSnapshot(ctx, snap.Card.ID).Return(snap, nil)
			m.strips.EXPECT().HeroURL(ctx, snap).Return("https://cdn.example.com/strip.png", nil)
			m.apple.EXPECT().Package(ctx, snap, "https://cdn.example.com/strip.png").Return(pass, nil)
			m.cardRepo.EXPECT().SaveAppleLinkage(ctx, snap.Card.ID, entity.AppleLinkage{
				SerialNumber:       pass.SerialNumber,
				PassTypeIdentifier: pass.PassTypeIdentifier,
				UpdatedAt:          fixedNow,
			}).Return(nil)
			m.metrics.EXPECT().ObserveSync(constants.ProviderApple, tt.outcome).Return()

			got, err := srv.PackageApple(ctx, snap.Card.ID)

			require.NoError(t, err)
			assert.Same(t, pass, got)
			assert.False(t, got.Signed())
		})
	}
}

func TestWalletService_PackageApple_NotConfigured(t *testing.T) {
	srv, m := createTestWalletService(t, testConfig())
	ctx := context.Background()
	snap := newSnapshot()

	m.cardRepo.EXPECT().FindSnapshot(ctx, snap.Card.ID).Return(snap, nil)
	m.strips.EXPECT().HeroURL(ctx, snap).Return("", errors.New("render failed"))
	m.apple.EXPECT().Package(ctx, snap, "").Return(nil, domainerrors.ErrConfiguration.WithDetails("pass type identifier is required"))
	m.metrics.EXPECT().ObserveSync(constants.ProviderApple, constants.OutcomeFailed).Return()

	_, err := srv.PackageApple(ctx, snap.Card.ID)

	assert.ErrorIs(t, err, domainerrors.ErrConfiguration)
}

func TestWalletService_BundleApple(t *testing.T) {
	srv, m := createTestWalletService(t, testConfig())
	ctx := context.Background()
	snap := newSnapshot()
	pass := &service.ApplePass{SerialNumber: "serial", PassTypeIdentifier: "pass.test"}

	m.cardRepo.EXPECT().FindSnapshot(ctx, snap.Card.ID).Return(snap, nil)
	m.strips.EXPECT().HeroURL(ctx, snap).Return("", nil)
	m.apple.EXPECT().Package(ctx, snap, "").Return(pass, nil)
	m.cardRepo.EXPECT().SaveAppleLinkage(ctx, snap.Card.ID, mock.Anything).Return(nil)
	m.metrics.EXPECT().ObserveSync(constants.ProviderApple, constants.OutcomePackaged).Return()
	m.apple.EXPECT().Bundle(pass).Return([]byte("zip"), nil)

	got, bundle, err := srv.BundleApple(ctx, snap.Card.ID)

	require.NoError(t, err)
	assert.Same(t, pass, got)
	assert.Equal(t, []byte("zip"), bundle)
}

func TestWalletService_PublishTrigger(t *testing.T) {
	srv, m := createTestWalletService(t, testConfig())
	ctx := context.Background()
	trigger := &entity.SyncTrigger{CardID: uuid.New(), Kind: entity.TriggerBalanceChanged}

	m.publisher.EXPECT().PublishSyncTrigger(ctx, trigger).Return(nil)

	require.NoError(t, srv.PublishTrigger(ctx, trigger))
}

func TestWalletService_PublishTrigger_Invalid(t *testing.T) {
	srv, _ := createTestWalletService(t, testConfig())

	tests := []struct {
		name    string
		trigger *entity.SyncTrigger
	}{
		{name: "nil trigger"},
		{name: "missing card", trigger: &entity.SyncTrigger{Kind: entity.TriggerCardCreated}},
		{name: "unknown kind", trigger: &entity.SyncTrigger{CardID: uuid.New(), Kind: "card_deleted"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := srv.PublishTrigger(context.Background(), tt.trigger)

			assert.ErrorIs(t, err, domainerrors.ErrValidation)
		})
	}
}

func TestWalletService_HandleTrigger(t *testing.T) {
	tests := []struct {
		name   string
		kind   entity.TriggerKind
		notify bool
	}{
		{name: "card created does not notify", kind: entity.TriggerCardCreated},
		{name: "balance changed notifies", kind: entity.TriggerBalanceChanged, notify: true},
		{name: "design saved notifies", kind: entity.TriggerDesignSaved, notify: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, m := createTestWalletService(t, testConfig())
			ctx := context.Background()
			snap := newSnapshot(withGoogleLinkage("3388000000022.obj", "3388000000022.bean_there_loyalty"))

			m.cardRepo.EXPECT().FindSnapshot(ctx, snap.Card.ID).Return(snap, nil)
			m.strips.EXPECT().HeroURL(ctx, snap).Return("", nil)
			m.google.EXPECT().UpsertLoyaltyClass(ctx, mock.Anything).Return(service.UpsertUpdated, nil)
			m.google.EXPECT().UpsertLoyaltyObject(ctx, mock.Anything).Return(service.UpsertUpdated, nil)
			m.cardRepo.EXPECT().TouchGoogleUpdated(ctx, snap.Card.ID, fixedNow).Return(nil)
			m.google.EXPECT().SaveURL(mock.Anything).Return("https://pay.google.com/gp/v/save/jwt", nil)
			m.metrics.EXPECT().ObserveSync(constants.ProviderGoogle, constants.OutcomeUpdated).Return()
			if tt.notify {
				m.notifier.EXPECT().NotifyCardUpdated(ctx, snap.Card.ID, map[string]string{
					"kind":      string(tt.kind),
					"object_id": "3388000000022.obj",
					"degraded":  "false",
				}).Return(errors.New("fcm unavailable"))
			}

			err := srv.HandleTrigger(ctx, &entity.SyncTrigger{CardID: snap.Card.ID, Kind: tt.kind})

			require.NoError(t, err)
		})
	}
}
