package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/ferremax/inventory-service/config"
	_ "github.com/ferremax/inventory-service/docs"
	"github.com/ferremax/inventory-service/internal/controller"
	custommiddleware "github.com/ferremax/inventory-service/internal/middleware"
	"github.com/ferremax/inventory-service/internal/infrastructure/tracing"
	"github.com/ferremax/inventory-service/internal/repository"
	"github.com/ferremax/inventory-service/internal/service"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"
)

type App struct {
	DB        *mongo.Database
	Config    *config.Config
	Publisher service.EventPublisher
	Server    *echo.Echo
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()
	app.Server = e

	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize tracing")
	}

	defer func() {
		if traceProvider == nil {
			return
		}
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			logger.Error().Err(err).Msg("Failed to shutdown tracing")
		}
	}()

	if traceProvider != nil {
		tracer := traceProvider.Tracer("inventory-service")

		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
				defer span.End()

				req := c.Request()
				c.SetRequest(req.WithContext(ctx))

				return next(c)
			}
		})
	}

	e.Use(echoprometheus.NewMiddleware(""))

	if app.Config.MetricsPort != "" {
		go func() {
			metrics := echo.New()
			metrics.GET("/metrics", echoprometheus.NewHandler())
			if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal().Err(err).Msg("Failed to start metrics server")
			}
		}()
	}

	e.Use(custommiddleware.Logger)

	g := e.Group("/api")

	g.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogMethod:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info().
				Str("method", v.Method).
				Str("URI", v.URI).
				Int("status", v.Status).
				Int64("latency", v.Latency.Microseconds()).
				Str("remote IP", v.RemoteIP).
				Msg("Request")

			return nil
		},
	}))

	productRepo := repository.CreateNewProductRepository(app.DB)
	userRepo := repository.CreateNewUserRepository(app.DB)

	productSvc := service.CreateProductService(productRepo, *app.Config, app.Publisher)
	userSvc := service.CreateUserService(userRepo, *app.Config)

	controller.CreateProductController(g, productSvc)
	controller.CreateUserController(g, userSvc)

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Hello World!")
	})
	e.GET("/api-docs/*", echoSwagger.WrapHandler)

	if err := e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
