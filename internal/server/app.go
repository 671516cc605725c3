// Package server initializes and runs the user service: it wires the
// credential store, the authentication service, and the HTTP endpoint, and
// handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/groovestream/users/internal/logging"
	"github.com/groovestream/users/internal/server/auth"
	"github.com/groovestream/users/internal/server/config"
	"github.com/groovestream/users/internal/server/repositories/storemanager"
	"github.com/groovestream/users/internal/server/rest"
	"github.com/groovestream/users/internal/server/services"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	store   storemanager.Manager
	service *services.Service
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	store, err := storemanager.New(ctx, cfg.DatabaseDSN, cfg.MongoDBName)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	// The signing secret is injected once here; nothing reads the
	// environment past this point.
	service := services.NewService(
		store.Users(),
		auth.NewBcryptHasher(cfg.BcryptCost),
		auth.NewTokenService([]byte(cfg.SecretKey), cfg.TokenValidity),
		logger,
	)

	return &App{config: cfg, logger: logger, store: store, service: service}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := rest.NewServer(app.config.EndpointAddr, app.logger, app.service)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.store.Close(context.Background()); err != nil {
		app.logger.Error(ctx, "store close error", "error", err)
	}
}
