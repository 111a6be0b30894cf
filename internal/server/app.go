// Package server runs the menu server: a small HTTP service that publishes
// the structured menu description the Aroma client loads on start.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/aroma/internal/client/models"
	"github.com/dmitrijs2005/aroma/internal/client/services"
	"github.com/dmitrijs2005/aroma/internal/logging"
	"github.com/dmitrijs2005/aroma/internal/server/config"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	menu    models.Menu
	metrics *Metrics
}

// NewApp loads the menu to serve. Unlike the client, the server refuses to
// start with a menu file it cannot read.
func NewApp(c *config.Config) (*App, error) {
	logger, err := logging.New(c.Logger, c.LogLevel, os.Stdout)
	if err != nil {
		return nil, err
	}

	menu := services.BuiltinMenu()
	if c.MenuFile != "" {
		menu, err = services.FetchMenu(context.Background(), http.DefaultClient, c.MenuFile)
		if err != nil {
			return nil, fmt.Errorf("menu init error: %w", err)
		}
	}

	return &App{
		config:  c,
		logger:  logger.With("module", "menu_server"),
		menu:    menu,
		metrics: NewMetrics("aroma_menu"),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// serve handles requests on ln until ctx is done, then shuts down gracefully.
func (app *App) serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{Handler: NewRouter(app.menu, app.logger, app.metrics)}

	go func() {
		<-ctx.Done()
		app.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(ctx, "shutdown", "error", err)
		}
	}()

	app.logger.Info(ctx, "Starting HTTP server", "address", ln.Addr().String(), "items", app.menu.Len())
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	ln, err := net.Listen("tcp", app.config.ListenAddr)
	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := app.serve(ctx, ln); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until SIGINT/SIGTERM/SIGQUIT or ctx cancellation.
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
}
