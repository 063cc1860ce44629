package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/api"
	apimiddleware "storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	remote "storefront/internal/infra/api"
	"storefront/internal/infra/auth"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/notice"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/infra/qrcode"
	"storefront/internal/infra/storage"
	"storefront/internal/infra/supabase"
	"storefront/internal/infra/upload"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRemote(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			restoreSession,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		storage.New,
	)
}

// uploadClient is the api.Client aimed at the media upload function rather than the REST API.
type uploadClient struct {
	*remote.Client
}

func injectRemote() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewTokenStore,
			newTokenSource,
			newRemoteClient,
			newUploadClient,
			fx.Annotate(remote.NewAuthClient, fx.As(new(service.AuthAPI))),
			fx.Annotate(remote.NewProductClient, fx.As(new(service.ProductAPI))),
			fx.Annotate(remote.NewOrderClient, fx.As(new(service.OrderAPI))),
			fx.Annotate(remote.NewReviewClient, fx.As(new(service.ReviewAPI))),
			fx.Annotate(remote.NewUserClient, fx.As(new(service.UserAPI))),
			fx.Annotate(remote.NewMetricsClient, fx.As(new(service.MetricsAPI))),
			fx.Annotate(remote.NewWishlistClient, fx.As(new(repository.WishlistRepository))),
		),
	)
}

// newTokenSource exposes the session's token slot read-only to the remote clients.
func newTokenSource(tokens service.TokenStore) service.TokenSource {
	return tokens
}

// newRemoteClient creates the REST API client with dependency injection
func newRemoteClient(cfg *config.Config, tokens service.TokenSource, logger *slog.Logger) (*remote.Client, error) {
	return remote.NewClient(remote.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
	}, tokens, logger)
}

// newUploadClient points a second client at the upload function. A separately hosted
// function gets media.apiKey as its bearer instead of the shopper's token.
func newUploadClient(cfg *config.Config, tokens service.TokenSource, logger *slog.Logger) (uploadClient, error) {
	client, err := upload.NewClient(upload.Config{
		URL:        cfg.Media.UploadURL,
		APIKey:     cfg.Media.APIKey,
		APIBaseURL: cfg.API.BaseURL,
		Timeout:    cfg.API.Timeout,
	}, tokens, logger)
	if err != nil {
		return uploadClient{}, err
	}

	return uploadClient{Client: client}, nil
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newTables,
		),
	)
}

type tablesParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	Tokens service.TokenSource
}

type tablesResult struct {
	fx.Out

	Cart  repository.CartRepository
	Admin repository.AdminRepository
}

// newTables picks the backend of the cart and back-office tables from dataSource.provider.
func newTables(params tablesParams) (tablesResult, error) {
	if params.Config.DataSource.Provider == config.DataSourcePostgres {
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return tablesResult{}, err
		}

		return postgresTables(db), nil
	}

	client, err := supabase.NewClient(supabase.Config{
		URL:     params.Config.DataSource.URL,
		AnonKey: params.Config.DataSource.AnonKey,
		Timeout: params.Config.API.Timeout,
	}, params.Tokens, params.Logger)
	if err != nil {
		return tablesResult{}, err
	}

	return tablesResult{
		Cart:  supabase.NewCartRepository(client),
		Admin: supabase.NewAdminRepository(client),
	}, nil
}

func postgresTables(db *gorm.DB) tablesResult {
	return tablesResult{
		Cart:  postgres.NewCartRepository(db),
		Admin: postgres.NewAdminRepository(db),
	}
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTInspector,
			notice.NewBoard,
			newNotifier,
			newNoticeSource,
			newMediaUploader,
			newQRCodeService,
			newLoginGate,
			newInvoiceSettings,
		),
	)
}

func newNotifier(board *notice.Board) service.Notifier {
	return board
}

func newNoticeSource(board *notice.Board) handler.NoticeSource {
	return board
}

func newMediaUploader(client uploadClient, logger *slog.Logger) service.MediaUploader {
	return upload.NewMediaUploader(client.Client, logger)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func newLoginGate(cfg *config.Config) service.LoginGate {
	return impl.NewLoginGate(cfg.Wishlist.AllowGuest)
}

func newInvoiceSettings(cfg *config.Config) impl.InvoiceSettings {
	return impl.InvoiceSettings{
		CurrencySymbol:  cfg.Invoice.CurrencySymbol,
		BankName:        cfg.Invoice.BankName,
		AccountName:     cfg.Invoice.AccountName,
		AccountNumber:   cfg.Invoice.AccountNumber,
		ReferencePrefix: cfg.Invoice.ReferencePrefix,
	}
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewCartService,
			impl.NewWishlistService,
			impl.NewCheckoutService,
			impl.NewOrderService,
			impl.NewReviewService,
			impl.NewCatalogService,
			newAdminService,
		),
	)
}

type adminServiceParams struct {
	fx.In

	Products service.ProductAPI
	Orders   service.OrderAPI
	Users    service.UserAPI
	Metrics  service.MetricsAPI
	Tables   repository.AdminRepository
	Uploader service.MediaUploader
	Session  usecase.SessionUsecase
	Notifier service.Notifier
	Logger   *slog.Logger
}

func newAdminService(params adminServiceParams) usecase.AdminUsecase {
	return impl.NewAdminService(
		impl.AdminAPIs{
			Products: params.Products,
			Orders:   params.Orders,
			Users:    params.Users,
			Metrics:  params.Metrics,
		},
		params.Tables,
		params.Uploader,
		params.Session,
		params.Notifier,
		params.Logger,
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewWishlistHandler,
			handler.NewCheckoutHandler,
			handler.NewOrderHandler,
			handler.NewNoticeHandler,
			handler.NewAdminHandler,
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

// restoreSession loads the persisted session before the first request is served.
// The cart and wishlist follow through their identity subscriptions.
func restoreSession(ctx context.Context, session usecase.SessionUsecase, _ usecase.CartUsecase, _ usecase.WishlistUsecase) {
	session.Restore(ctx)
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
