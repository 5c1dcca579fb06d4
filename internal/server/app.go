// Package server wires configuration, storage, services, and the HTTP
// surface into a runnable application with graceful shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/photohub/photohub/internal/logging"
	"github.com/photohub/photohub/internal/server/config"
	"github.com/photohub/photohub/internal/server/httpapi"
	"github.com/photohub/photohub/internal/server/photos"
	"github.com/photohub/photohub/internal/server/storage"
	"github.com/photohub/photohub/internal/server/users"
)

type App struct {
	config *config.Config
	logger logging.Logger
	client *mongo.Client
	server *httpapi.Server
}

// NewApp builds the full application from an explicit configuration. It
// connects to storage and ensures the uniqueness indexes before any request
// can be served.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewDefault()

	client, err := storage.Connect(ctx, cfg.DatabaseURI)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	db := client.Database(cfg.DatabaseName)
	if err := storage.EnsureIndexes(ctx, db); err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	userRepo := users.NewMongoRepository(db)
	photoRepo := photos.NewMongoRepository(db)

	us := users.NewService(userRepo, photoRepo, cfg, logger)
	ps := photos.NewService(photoRepo, userRepo, cfg)

	srv := httpapi.NewServer(cfg.EndpointAddrHTTP, logger, us, ps, cfg.SecretKey, cfg.TokenValidityDuration)

	return &App{config: cfg, logger: logger, client: client, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// releases the storage connection.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.Stop(context.Background()); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}

// Stop releases resources held by the app. Run calls it on the way out; it
// is exported so tests can tear the app down without signals.
func (app *App) Stop(ctx context.Context) error {
	return app.client.Disconnect(ctx)
}
