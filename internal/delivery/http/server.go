package http

import (
	"context"
	"log/slog"
	"net"
	nethttp "net/http"
	"strconv"

	"meuapp/config"
	"meuapp/internal/delivery"
	"meuapp/internal/delivery/http/middleware"
	"meuapp/internal/delivery/http/router"
	"meuapp/internal/delivery/http/view"
	deliverymiddleware "meuapp/internal/delivery/middleware"
	"meuapp/internal/domain/lifecycle"
	"meuapp/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// CSRFField is the hidden form field carrying the CSRF token.
const CSRFField = "csrf_token"

const csrfCookieName = "_csrf"

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config          *config.Config
	Logger          *slog.Logger
	Renderer        *view.Renderer
	RequestID       *deliverymiddleware.RequestIDMiddleware
	RequestLogger   *deliverymiddleware.LoggerMiddleware
	ErrorMiddleware *middleware.ErrorMiddleware
	RouterParams    router.RouterParams
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *nethttp.Server
}

func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer := newEcho(params)

	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(params.Config.HTTP.Port))
	timeouts := params.Config.HTTP.Timeouts

	delivery := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: &nethttp.Server{
			Addr:              hostPort,
			Handler:           echoServer,
			ReadTimeout:       timeouts.ReadTimeout,
			ReadHeaderTimeout: timeouts.ReadHeaderTimeout,
			WriteTimeout:      timeouts.WriteTimeout,
			IdleTimeout:       timeouts.IdleTimeout,
		},
	}

	params.Append(fx.Hook{
		OnStop: delivery.stop,
	})

	return delivery, nil
}

// newEcho assembles the middleware chain and routes.
func newEcho(params HTTPParams) *echo.Echo {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Renderer = params.Renderer
	echoServer.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError

	echoServer.Use(params.RequestID.Process)
	echoServer.Use(params.RequestLogger.Handle)
	echoServer.Use(echomiddleware.Recover())
	echoServer.Use(echomiddleware.BodyLimit(params.Config.HTTP.MaxRequestBodySize))
	echoServer.Use(echomiddleware.Secure())
	echoServer.Use(echomiddleware.CSRFWithConfig(echomiddleware.CSRFConfig{
		TokenLookup:    "form:" + CSRFField,
		CookieName:     csrfCookieName,
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSecure:   params.Config.HTTP.SecureCookies,
		CookieSameSite: nethttp.SameSiteLaxMode,
	}))

	router.NewRouter(params.RouterParams).RegisterRoutes(echoServer)

	return echoServer
}

func (s *httpServer) Serve(ctx context.Context) error {
	s.logger.Info("Starting HTTP server", slog.String("hostPort", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
