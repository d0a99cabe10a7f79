// Package classification Pick a Date Service.
//
// Find the date that suits most participants of an event
//
// Terms Of Service:
//
// there are no TOS at this moment, use at your own risk we take no responsibility
//
//    Version: 0.1.0
//    Contact: <info@dhis2.org> https://github.com/dhis2-sre/pick-a-date
//
//    Consumes:
//      - application/json
//
//    Produces:
//      - application/json
//
//    SecurityDefinitions:
//      token:
//        type: apiKey
//        in: header
//        name: Authorization
//
// swagger:meta
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dhis2-sre/pick-a-date/internal/handler"
	"github.com/dhis2-sre/pick-a-date/internal/log"
	"github.com/dhis2-sre/pick-a-date/internal/middleware"
	"github.com/dhis2-sre/pick-a-date/internal/server"
	"github.com/dhis2-sre/pick-a-date/internal/tracing"
	"github.com/dhis2-sre/pick-a-date/pkg/availability"
	"github.com/dhis2-sre/pick-a-date/pkg/config"
	"github.com/dhis2-sre/pick-a-date/pkg/event"
	"github.com/dhis2-sre/pick-a-date/pkg/participant"
	"github.com/dhis2-sre/pick-a-date/pkg/storage"
	"github.com/dhis2-sre/pick-a-date/pkg/token"
	"github.com/lmittmann/tint"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	shutdownTracing, err := tracing.Setup(cfg.JaegerEndpoint, cfg.Environment)
	if err != nil {
		return fmt.Errorf("failed to setup tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("Failed to shutdown tracing", "error", err)
		}
	}()

	db, err := storage.NewDatabase(logger, cfg.Postgresql)
	if err != nil {
		return err
	}

	redis, err := storage.NewRedis(cfg.Redis)
	if err != nil {
		return err
	}
	if redis == nil {
		logger.Info("Redis is not configured, access tokens are resolved from the database only")
	} else {
		defer redis.Close()
	}

	transactor := storage.NewTransactor(db)

	tokenService := token.NewService(logger, token.NewRepository(db), redis, cfg.Redis.TokenTTL)
	eventService := event.NewService(logger, transactor, event.NewRepository(db), tokenService)
	participantService := participant.NewService(logger, transactor, participant.NewRepository(db), eventService)
	availabilityService := availability.NewService(logger, transactor, availability.NewRepository(db), eventService, participantService)

	authentication := middleware.NewAuthentication(logger, tokenService)

	if err := handler.RegisterValidation(); err != nil {
		return err
	}

	engine := server.GetEngine(logger, cfg.BasePath, cfg.AllowedOrigins...)
	api := engine.Group(cfg.BasePath)
	event.Routes(api, authentication, event.NewHandler(eventService))
	participant.Routes(api, authentication, participant.NewHandler(participantService))
	availability.Routes(api, authentication, availability.NewHandler(availabilityService))

	srv := &http.Server{
		Addr:              cfg.ListenAddress(),
		Handler:           engine.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Listening", "address", srv.Addr, "environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newLogger(cfg config.Config) *slog.Logger {
	options := slog.HandlerOptions{Level: cfg.LogLevel}

	var h slog.Handler
	switch cfg.LogFormat {
	case "text":
		h = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      cfg.LogLevel,
			TimeFormat: time.RFC3339,
		})
	case "pretty":
		h = log.NewPrettyJSONHandler(os.Stdout, &log.PrettyJSONHandlerOptions{HandlerOptions: options, PrettyPrint: true})
	default:
		h = slog.NewJSONHandler(os.Stdout, &options)
	}

	return slog.New(log.New(h))
}
