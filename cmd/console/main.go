package main

import (
	"context"
	"log/slog"
	"os"

	"backoffice/config"
	"backoffice/internal/delivery"
	"backoffice/internal/delivery/http"
	"backoffice/internal/delivery/http/middleware"
	"backoffice/internal/delivery/http/router/handler"
	sharedmiddleware "backoffice/internal/delivery/middleware"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	"backoffice/internal/infra/auth"
	"backoffice/internal/infra/functions"
	logs "backoffice/internal/infra/log"
	"backoffice/internal/infra/persistence/postgres"
	"backoffice/internal/infra/pubsub"
	"backoffice/internal/infra/storage"
	"backoffice/internal/usecase"
	"backoffice/internal/usecase/impl"

	"go.uber.org/fx"
)

// Fallback attachment caps used when storage config omits them.
const (
	defaultMaxFilesPerEntity = 3
	defaultMaxFileSizeBytes  = 10 << 20
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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAddressRepository,
			postgres.NewIdentityRepository,
			postgres.NewUserRoleRepository,
			postgres.NewOperatorRepository,
			postgres.NewFieldOperatorRepository,
			postgres.NewServiceProviderRepository,
			postgres.NewStoreRepository,
			postgres.NewTaxonomyRepository,
			postgres.NewWorkingAreaRepository,
			postgres.NewCountryRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			functions.NewClient,
			storage.New,
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAddressResolver,
			impl.NewTaxonomyUsecase,
			impl.NewUserRoleUsecase,
			newSessionUsecase,
			newOperatorUsecase,
			newFieldOperatorUsecase,
			newProviderUsecase,
			newStoreUsecase,
			newAttachmentUsecase,
		),
	)
}

// newSessionUsecase wires the refresh secret from config.
func newSessionUsecase(
	identityRepo repository.IdentityRepository,
	userRoleRepo repository.UserRoleRepository,
	hasher service.PasswordHasher,
	tokenSvc service.TokenService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return impl.NewSessionUsecase(identityRepo, userRoleRepo, hasher, tokenSvc, cfg.SecretKey.Refresh, logger)
}

// newOperatorUsecase wires the listing page size from config.
func newOperatorUsecase(
	resolver usecase.AddressResolver,
	addressRepo repository.AddressRepository,
	operatorRepo repository.OperatorRepository,
	mutator service.EntityMutator,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.OperatorUsecase {
	return impl.NewOperatorUsecase(resolver, addressRepo, operatorRepo, mutator, publisher, cfg.PageSize(), logger)
}

// newFieldOperatorUsecase wires the listing page size from config.
func newFieldOperatorUsecase(
	resolver usecase.AddressResolver,
	addressRepo repository.AddressRepository,
	fieldOperatorRepo repository.FieldOperatorRepository,
	mutator service.EntityMutator,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.FieldOperatorUsecase {
	return impl.NewFieldOperatorUsecase(resolver, addressRepo, fieldOperatorRepo, mutator, publisher, cfg.PageSize(), logger)
}

// newProviderUsecase wires the listing page size from config.
func newProviderUsecase(
	resolver usecase.AddressResolver,
	addressRepo repository.AddressRepository,
	providerRepo repository.ServiceProviderRepository,
	mutator service.EntityMutator,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ProviderUsecase {
	return impl.NewProviderUsecase(resolver, addressRepo, providerRepo, mutator, publisher, cfg.PageSize(), logger)
}

// newStoreUsecase wires the listing page size from config.
func newStoreUsecase(
	resolver usecase.AddressResolver,
	addressRepo repository.AddressRepository,
	storeRepo repository.StoreRepository,
	mutator service.EntityMutator,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.StoreUsecase {
	return impl.NewStoreUsecase(resolver, addressRepo, storeRepo, mutator, publisher, cfg.PageSize(), logger)
}

// newAttachmentUsecase wires the attachment caps from config.
func newAttachmentUsecase(
	documentStorage service.DocumentStorage,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AttachmentUsecase {
	maxFiles := defaultMaxFilesPerEntity
	maxSize := int64(defaultMaxFileSizeBytes)
	if cfg.Storage != nil {
		if cfg.Storage.MaxFilesPerEntity > 0 {
			maxFiles = cfg.Storage.MaxFilesPerEntity
		}
		if cfg.Storage.MaxFileSizeBytes > 0 {
			maxSize = cfg.Storage.MaxFileSizeBytes
		}
	}

	return impl.NewAttachmentUsecase(documentStorage, maxFiles, maxSize, logger)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			sharedmiddleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewOperatorHandler,
			handler.NewFieldOperatorHandler,
			handler.NewProviderHandler,
			handler.NewStoreHandler,
			handler.NewTaxonomyHandler,
			handler.NewUserRoleHandler,
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
