package impl

import (
	"context"
	"log/slog"
	"time"

	"stampcard/config"
	deliverycontext "stampcard/internal/delivery/context"
	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"
	"stampcard/internal/domain/service"
	"stampcard/internal/domain/strip"
	"stampcard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// stripService implements the StripUsecase interface.
type stripService struct {
	cardRepo   repository.CardRepository
	rasterizer service.StripRasterizer
	store      service.StripStore
	metrics    service.MetricsRecorder
	avatar     strip.AvatarFallback
	logger     *slog.Logger
}

// StripServiceParams holds dependencies for StripService, injected by Fx.
type StripServiceParams struct {
	fx.In

	CardRepo   repository.CardRepository
	Rasterizer service.StripRasterizer
	Store      service.StripStore
	Metrics    service.MetricsRecorder
	Config     *config.Config
	Logger     *slog.Logger
}

// NewStripService is the constructor for stripService.
func NewStripService(params StripServiceParams) usecase.StripUsecase {
	return &stripService{
		cardRepo:   params.CardRepo,
		rasterizer: params.Rasterizer,
		store:      params.Store,
		metrics:    params.Metrics,
		avatar:     avatarFallback(params.Config),
		logger:     params.Logger,
	}
}

func avatarFallback(cfg *config.Config) strip.AvatarFallback {
	if cfg == nil {
		return strip.AvatarFallback{}
	}

	return strip.AvatarFallback{BaseURL: cfg.Assets.FallbackAvatarBaseURL}
}

func (srv *stripService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Scene builds the declarative strip scene of a card.
func (srv *stripService) Scene(ctx context.Context, cardID uuid.UUID) (*strip.Scene, error) {
	ctx = deliverycontext.WithCard(ctx, cardID, srv.logger)

	snap, err := loadSnapshot(ctx, srv.cardRepo, cardID)
	if err != nil {
		return nil, err
	}

	return srv.buildScene(strip.SceneInputFrom(snap, srv.avatar))
}

// Render rasterizes the strip of a card to a PNG.
func (srv *stripService) Render(ctx context.Context, cardID uuid.UUID) ([]byte, error) {
	ctx = deliverycontext.WithCard(ctx, cardID, srv.logger)

	scene, err := srv.Scene(ctx, cardID)
	if err != nil {
		return nil, err
	}

	return srv.rasterize(ctx, scene)
}

// Preview builds a scene from a design that is not saved yet. Progress is
// clamped to the target here since there is no card to clamp it.
func (srv *stripService) Preview(ctx context.Context, in *usecase.PreviewInput) (*strip.Scene, error) {
	if in == nil {
		return nil, domainerrors.ErrValidation.WithDetails("preview input is required")
	}
	if in.Rules.TargetStamps < 1 {
		return nil, domainerrors.ErrValidation.WithDetails("target_stamps must be at least 1")
	}

	srv.log(ctx).Debug("Building strip preview",
		slog.String("strategy", string(in.Branding.Strategy)),
		slog.Int("target_stamps", in.Rules.TargetStamps))

	return srv.buildScene(strip.SceneInput{
		BusinessName: in.BusinessName,
		Branding:     in.Branding,
		Rules:        in.Rules,
		Progress:     min(max(in.Progress, 0), in.Rules.TargetStamps),
		Width:        in.Width,
		Height:       in.Height,
		Avatar:       srv.avatar,
	})
}

// Hosted returns a previously hosted strip by its file name.
func (srv *stripService) Hosted(ctx context.Context, name string) ([]byte, error) {
	data, err := srv.store.Get(ctx, name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read hosted strip")
	}

	return data, nil
}

// HeroURL resolves the provider hero image of a snapshot. When the rendered
// strip cannot be hosted, the uploaded branding strip is used if durable.
func (srv *stripService) HeroURL(ctx context.Context, snap *entity.CardSnapshot) (string, error) {
	ctx = deliverycontext.WithCard(ctx, snap.Card.ID, srv.logger)

	scene, err := srv.buildScene(strip.SceneInputFrom(snap, srv.avatar))
	if err != nil {
		return "", err
	}
	if scene.Strategy != entity.StrategyIconicGrid {
		return scene.HeroImage, nil
	}

	fallback := ""
	if strip.IsValidImageURL(snap.Business.Branding.Assets.Strip) {
		fallback = snap.Business.Branding.Assets.Strip
	}

	png, err := srv.rasterize(ctx, scene)
	if err != nil {
		srv.log(ctx).Warn("Strip render failed, using branding strip", slog.Any("error", err))

		return fallback, nil
	}

	url, err := srv.store.Put(ctx, png)
	if err != nil {
		srv.log(ctx).Warn("Strip upload failed, using branding strip", slog.Any("error", err))

		return fallback, nil
	}
	if url == "" {
		return fallback, nil
	}

	return url, nil
}

func (srv *stripService) buildScene(in strip.SceneInput) (*strip.Scene, error) {
	scene, err := strip.BuildScene(in)
	if err != nil {
		return nil, domainerrors.ErrValidation.WithDetails(err.Error())
	}

	return scene, nil
}

func (srv *stripService) rasterize(ctx context.Context, scene *strip.Scene) ([]byte, error) {
	start := time.Now()
	png, err := srv.rasterizer.Rasterize(scene)
	srv.metrics.ObserveRender(time.Since(start))
	if err != nil {
		srv.log(ctx).Error("Failed to rasterize strip", slog.Any("error", err))

		return nil, domainerrors.ErrRenderFailed.WithDetails(err.Error())
	}

	return png, nil
}
