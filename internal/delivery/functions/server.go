// Package functions hosts the privileged functions service. It is the only
// process allowed to touch identities; the console reaches it over HTTP with
// the acting administrator's bearer token.
package functions

import (
	"context"
	"log/slog"
	"net"
	"strconv"

	"backoffice/config"
	"backoffice/internal/delivery"
	"backoffice/internal/delivery/http/validator"
	sharedmiddleware "backoffice/internal/delivery/middleware"
	"backoffice/internal/domain/lifecycle"
	"backoffice/internal/domain/service"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

type FunctionsParams struct {
	fx.In
	fx.Lifecycle

	Config    *config.Config
	Logger    *slog.Logger
	Handler   *Handler
	TokenSvc  service.TokenService
	RequestID *sharedmiddleware.RequestIDMiddleware
}

type functionsServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

func NewServer(params FunctionsParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Validator = validator.New()
	echoServer.Use(params.RequestID.Process)
	echoServer.Use(slogecho.New(params.Logger))
	echoServer.Use(echomiddleware.Recover())

	guard := newAuthGuard(params.TokenSvc, params.Config)

	group := echoServer.Group("/functions/v1", guard.Authenticate)
	{
		group.POST("/create-operator", params.Handler.CreateOperator)
		group.POST("/update-operator", params.Handler.UpdateOperator)
		group.POST("/delete-operator", params.Handler.DeleteOperator)

		group.POST("/create-field-operator", params.Handler.CreateFieldOperator)
		group.POST("/update-field-operator", params.Handler.UpdateFieldOperator)
		group.POST("/delete-field-operator", params.Handler.DeleteFieldOperator)

		group.POST("/create-service-provider", params.Handler.CreateServiceProvider)
		group.POST("/update-service-provider", params.Handler.UpdateServiceProvider)
		group.POST("/delete-service-provider", params.Handler.DeleteServiceProvider)

		group.POST("/create-store", params.Handler.CreateStore)
		group.POST("/update-store", params.Handler.UpdateStore)
		group.POST("/delete-store", params.Handler.DeleteStore)
	}

	delivery := &functionsServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: delivery.stop,
	})

	return delivery, nil
}

func (s *functionsServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.Functions.Server.Port))
	s.logger.Info("Starting functions server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil {
		return errors.Wrap(err, "failed to serve functions")
	}

	return nil
}

func (s *functionsServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down functions server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
