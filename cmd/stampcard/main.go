package main

import (
	"context"
	"log/slog"
	"os"

	"stampcard/config"
	"stampcard/internal/delivery"
	"stampcard/internal/delivery/api"
	"stampcard/internal/delivery/api/router/handler"
	"stampcard/internal/domain/service"
	"stampcard/internal/infra/asset"
	"stampcard/internal/infra/auth"
	"stampcard/internal/infra/lock"
	logs "stampcard/internal/infra/log"
	"stampcard/internal/infra/metrics"
	"stampcard/internal/infra/notification"
	"stampcard/internal/infra/persistence/postgres"
	"stampcard/internal/infra/pubsub"
	"stampcard/internal/infra/qrcode"
	"stampcard/internal/infra/raster"
	"stampcard/internal/infra/storage"
	"stampcard/internal/infra/wallet/apple"
	"stampcard/internal/infra/wallet/google"
	"stampcard/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		metrics.NewRecorder,
		metrics.NewMetricsRecorder,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewCardRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewRS256Signer,
			google.NewGateway,
			asset.NewFetcher,
			apple.NewUnsignedSigner,
			apple.NewPackager,
			raster.NewRasterizer,
			storage.NewStripStore,
			lock.NewLinkLocker,
			pubsub.NewEventPublisher,
			newFirebaseService,
			newQRCodeService,
		),
	)
}

// newFirebaseService creates a Firebase service, or a logging no-op when
// Firebase is not configured
func newFirebaseService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		logger.Info("Firebase not configured, card update notifications disabled")

		return notification.NewNoopService(logger), nil
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath, logger)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase service")
	}

	return svc, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewStripService,
			impl.NewWalletService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewWalletHandler,
			handler.NewStripHandler,
			func(r *metrics.Recorder) *handler.MetricsHandler {
				return handler.NewMetricsHandler(r.Handler())
			},
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
