package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"stampcard/config"
	deliverycontext "stampcard/internal/delivery/context"
	"stampcard/internal/domain/constants"
	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"
	"stampcard/internal/domain/service"
	"stampcard/internal/domain/strip"
	"stampcard/internal/domain/wallet"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const linkLeasePrefix = "wallet:google:link:"

// walletService implements the WalletUsecase interface.
type walletService struct {
	cardRepo  repository.CardRepository
	strips    usecase.StripUsecase
	google    service.GoogleWalletGateway
	apple     service.ApplePassPackager
	locker    service.LinkLocker
	publisher service.EventPublisher
	notifier  service.NotificationService
	qrcode    service.QRCodeService
	metrics   service.MetricsRecorder

	googleEnabled bool
	issuerID      string
	avatar        strip.AvatarFallback
	now           func() time.Time
	logger        *slog.Logger
}

// WalletServiceParams holds dependencies for WalletService, injected by Fx.
type WalletServiceParams struct {
	fx.In

	CardRepo  repository.CardRepository
	Strips    usecase.StripUsecase
	Google    service.GoogleWalletGateway
	Apple     service.ApplePassPackager
	Locker    service.LinkLocker
	Publisher service.EventPublisher
	Notifier  service.NotificationService
	QRCode    service.QRCodeService
	Metrics   service.MetricsRecorder
	Config    *config.Config
	Logger    *slog.Logger
}

// NewWalletService is the constructor for walletService.
func NewWalletService(params WalletServiceParams) usecase.WalletUsecase {
	srv := &walletService{
		cardRepo:  params.CardRepo,
		strips:    params.Strips,
		google:    params.Google,
		apple:     params.Apple,
		locker:    params.Locker,
		publisher: params.Publisher,
		notifier:  params.Notifier,
		qrcode:    params.QRCode,
		metrics:   params.Metrics,
		avatar:    avatarFallback(params.Config),
		now:       time.Now,
		logger:    params.Logger,
	}
	if params.Config != nil {
		srv.googleEnabled = params.Config.Wallet.Google.Enabled
		srv.issuerID = params.Config.Wallet.Google.IssuerID
	}

	return srv
}

func (srv *walletService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SyncGoogle runs the Unlinked -> Linking -> Linked transition of a card.
// A linked card skips the lease since its ids never change.
func (srv *walletService) SyncGoogle(ctx context.Context, cardID uuid.UUID) (*entity.GoogleSaveResult, error) {
	ctx = deliverycontext.WithCard(ctx, cardID, srv.logger)

	result, err := srv.syncGoogle(ctx, cardID)
	switch {
	case err != nil:
		srv.metrics.ObserveSync(constants.ProviderGoogle, constants.OutcomeFailed)
		srv.log(ctx).Error("Google wallet sync failed", slog.Any("error", err))
	case result.FirstLink:
		srv.metrics.ObserveSync(constants.ProviderGoogle, constants.OutcomeLinked)
	case result.Degraded:
		srv.metrics.ObserveSync(constants.ProviderGoogle, constants.OutcomeDegraded)
	default:
		srv.metrics.ObserveSync(constants.ProviderGoogle, constants.OutcomeUpdated)
	}

	return result, err
}

func (srv *walletService) syncGoogle(ctx context.Context, cardID uuid.UUID) (*entity.GoogleSaveResult, error) {
	if !srv.googleEnabled {
		return nil, domainerrors.ErrConfiguration.WithDetails("google wallet is disabled")
	}

	snap, err := loadSnapshot(ctx, srv.cardRepo, cardID)
	if err != nil {
		return nil, err
	}
	if snap.Card.GoogleLinkState() == entity.LinkLinked {
		return srv.upsertGoogle(ctx, snap)
	}

	release, err := srv.locker.Acquire(ctx, linkLeasePrefix+cardID.String())
	if errors.Is(err, service.ErrLockHeld) {
		return nil, domainerrors.ErrLinkInProgress.WithDetails(cardID.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to acquire link lease")
	}
	defer release()

	// Another sync may have linked the card while we waited.
	snap, err = loadSnapshot(ctx, srv.cardRepo, cardID)
	if err != nil {
		return nil, err
	}

	return srv.upsertGoogle(ctx, snap)
}

// upsertGoogle pushes the class then the object. A failed create aborts the
// sync; a failed update is logged and the sync continues, since the stored
// linkage is still correct and the next trigger sends current data.
func (srv *walletService) upsertGoogle(ctx context.Context, snap *entity.CardSnapshot) (*entity.GoogleSaveResult, error) {
	logger := srv.log(ctx)

	hero, err := srv.strips.HeroURL(ctx, snap)
	if err != nil {
		logger.Warn("Hero image unavailable, syncing without it", slog.Any("error", err))
		hero = ""
	}

	in := wallet.GoogleInput{IssuerID: srv.issuerID, Snapshot: snap, HeroURL: hero, Avatar: srv.avatar}
	class := wallet.BuildLoyaltyClass(in)
	object := wallet.BuildLoyaltyObject(in)
	result := &entity.GoogleSaveResult{
		ObjectID:  object.Id,
		ClassID:   class.Id,
		FirstLink: snap.Card.GoogleLinkState() == entity.LinkUnlinked,
	}

	outcome, err := srv.google.UpsertLoyaltyClass(ctx, class)
	if err != nil {
		if outcome != service.UpsertUpdated {
			return nil, errors.Wrap(err, "failed to create loyalty class")
		}
		logger.Warn("Loyalty class update failed", slog.Any("error", err), slog.String("class_id", class.Id))
		result.Degraded = true
	}

	outcome, err = srv.google.UpsertLoyaltyObject(ctx, object)
	if err != nil {
		if outcome != service.UpsertUpdated {
			return nil, errors.Wrap(err, "failed to create loyalty object")
		}
		logger.Warn("Loyalty object update failed", slog.Any("error", err), slog.String("object_id", object.Id))
		result.Degraded = true
	}

	if err := srv.persistGoogleLinkage(ctx, snap, result); err != nil {
		return nil, err
	}

	saveURL, err := srv.google.SaveURL(object.Id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign save url")
	}
	result.SaveURL = saveURL

	logger.Info("Google wallet sync completed",
		slog.String("object_id", result.ObjectID),
		slog.Bool("first_link", result.FirstLink),
		slog.Bool("degraded", result.Degraded))

	return result, nil
}

// persistGoogleLinkage stores the ids on first link and only touches the
// timestamp afterwards. A degraded update leaves the timestamp alone.
func (srv *walletService) persistGoogleLinkage(ctx context.Context, snap *entity.CardSnapshot, result *entity.GoogleSaveResult) error {
	now := srv.now().UTC()

	if result.FirstLink {
		err := srv.cardRepo.SaveGoogleLinkage(ctx, snap.Card.ID, entity.GoogleLinkage{
			ObjectID:  result.ObjectID,
			ClassID:   result.ClassID,
			UpdatedAt: now,
		})
		if errors.Is(err, repository.ErrAlreadyLinked) {
			srv.log(ctx).Info("Card was linked concurrently, keeping stored ids")
			result.FirstLink = false

			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to save google linkage")
		}

		return nil
	}

	if result.Degraded {
		return nil
	}
	if err := srv.cardRepo.TouchGoogleUpdated(ctx, snap.Card.ID, now); err != nil {
		return errors.Wrap(err, "failed to update google sync time")
	}

	return nil
}

// GoogleSaveQR syncs the card and encodes its save URL as a QR code PNG.
func (srv *walletService) GoogleSaveQR(ctx context.Context, cardID uuid.UUID) ([]byte, error) {
	result, err := srv.SyncGoogle(ctx, cardID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GeneratePNG(result.SaveURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate save url qr code")
	}

	return png, nil
}

// PackageApple builds the Apple pass of a card. Assets that fail to
// download are left out and the pass counts as degraded.
func (srv *walletService) PackageApple(ctx context.Context, cardID uuid.UUID) (*service.ApplePass, error) {
	ctx = deliverycontext.WithCard(ctx, cardID, srv.logger)

	pass, err := srv.packageApple(ctx, cardID)
	switch {
	case err != nil:
		srv.metrics.ObserveSync(constants.ProviderApple, constants.OutcomeFailed)
		srv.log(ctx).Error("Apple pass packaging failed", slog.Any("error", err))
	case len(pass.Omitted) > 0:
		srv.metrics.ObserveSync(constants.ProviderApple, constants.OutcomeDegraded)
	default:
		srv.metrics.ObserveSync(constants.ProviderApple, constants.OutcomePackaged)
	}

	return pass, err
}

func (srv *walletService) packageApple(ctx context.Context, cardID uuid.UUID) (*service.ApplePass, error) {
	snap, err := loadSnapshot(ctx, srv.cardRepo, cardID)
	if err != nil {
		return nil, err
	}

	stripURL, err := srv.strips.HeroURL(ctx, snap)
	if err != nil {
		srv.log(ctx).Warn("Strip image unavailable, packaging without it", slog.Any("error", err))
		stripURL = ""
	}

	pass, err := srv.apple.Package(ctx, snap, stripURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to package apple pass")
	}

	if err := srv.cardRepo.SaveAppleLinkage(ctx, cardID, entity.AppleLinkage{
		SerialNumber:       pass.SerialNumber,
		PassTypeIdentifier: pass.PassTypeIdentifier,
		UpdatedAt:          srv.now().UTC(),
	}); err != nil {
		return nil, errors.Wrap(err, "failed to save apple linkage")
	}

	return pass, nil
}

// BundleApple packages the Apple pass and zips it.
func (srv *walletService) BundleApple(ctx context.Context, cardID uuid.UUID) (*service.ApplePass, []byte, error) {
	pass, err := srv.PackageApple(ctx, cardID)
	if err != nil {
		return nil, nil, err
	}

	bundle, err := srv.apple.Bundle(pass)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to bundle apple pass")
	}

	return pass, bundle, nil
}

// PublishTrigger queues a sync trigger for the worker.
func (srv *walletService) PublishTrigger(ctx context.Context, trigger *entity.SyncTrigger) error {
	if err := validateTrigger(trigger); err != nil {
		return err
	}
	if trigger.RequestID == "" {
		trigger.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	}

	if err := srv.publisher.PublishSyncTrigger(ctx, trigger); err != nil {
		srv.log(ctx).Error("Failed to publish sync trigger",
			slog.Any("error", err), slog.String("card_id", trigger.CardID.String()), slog.String("kind", string(trigger.Kind)))

		return errors.Wrap(err, "failed to publish sync trigger")
	}

	return nil
}

// HandleTrigger syncs the card and, for balance and design changes, tells
// the holder's devices to refresh.
func (srv *walletService) HandleTrigger(ctx context.Context, trigger *entity.SyncTrigger) error {
	if err := validateTrigger(trigger); err != nil {
		return err
	}
	ctx = deliverycontext.WithCard(ctx, trigger.CardID, srv.logger)

	srv.log(ctx).Info("Handling sync trigger",
		slog.String("kind", string(trigger.Kind)),
		slog.String("trigger_request_id", trigger.RequestID))

	result, err := srv.SyncGoogle(ctx, trigger.CardID)
	if err != nil {
		return err
	}

	if trigger.Kind == entity.TriggerCardCreated {
		return nil
	}

	data := map[string]string{
		"kind":      string(trigger.Kind),
		"object_id": result.ObjectID,
		"degraded":  strconv.FormatBool(result.Degraded),
	}
	if err := srv.notifier.NotifyCardUpdated(ctx, trigger.CardID, data); err != nil {
		srv.log(ctx).Warn("Failed to notify card holder", slog.Any("error", err))
	}

	return nil
}

func validateTrigger(trigger *entity.SyncTrigger) error {
	switch {
	case trigger == nil:
		return domainerrors.ErrValidation.WithDetails("trigger is required")
	case trigger.CardID == uuid.Nil:
		return domainerrors.ErrValidation.WithDetails("card id is required")
	case !trigger.Kind.Valid():
		return domainerrors.ErrValidation.WithDetails("unknown trigger kind " + strconv.Quote(string(trigger.Kind)))
	}

	return nil
}
