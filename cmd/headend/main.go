package main

import (
	"context"
	"log/slog"
	"os"

	"headend/config"
	"headend/internal/delivery"
	"headend/internal/delivery/http"
	"headend/internal/delivery/http/middleware"
	"headend/internal/delivery/http/router/handler"
	"headend/internal/domain/service"
	"headend/internal/infra/auth"
	logs "headend/internal/infra/log"
	"headend/internal/infra/persistence/firestore"
	"headend/internal/infra/pubsub"
	"headend/internal/infra/qrcode"
	"headend/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
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
		firestore.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewSubscriberRepository,
			firestore.NewDeviceRequestRepository,
			firestore.NewCategoryRepository,
			firestore.NewBouquetRepository,
			firestore.NewChannelRepository,
			firestore.NewPackageRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProvisioningService,
			impl.NewSubscriberService,
			impl.NewCatalogService,
			impl.NewPackageService,
			impl.NewConsoleFeed,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewRequestHandler,
			handler.NewSubscriberHandler,
			handler.NewCatalogHandler,
			handler.NewPackageHandler,
			handler.NewConsoleHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
				os.Exit(1)
			}
		}()
	}
}
