package app

import (
	"context"
	"fmt"
	"io"

	handlers "github.com/kasarab/user_directory_service/internal/adapter/handler/http"
	"github.com/kasarab/user_directory_service/internal/core/ports"
)

// App owns the HTTP server and the storage handle it must release on exit.
type App struct {
	log     ports.LoggerPort
	router  *handlers.Router
	storage io.Closer
}

// New wires an App. storage may be nil when nothing needs closing.
func New(log ports.LoggerPort, router *handlers.Router, storage io.Closer) *App {
	return &App{
		log:     log,
		router:  router,
		storage: storage,
	}
}

// MustRun runs the HTTP server and panics if it fails to start.
func (a *App) MustRun() {
	if err := a.Run(); err != nil {
		panic(err)
	}
}

// Run serves HTTP until Stop is called.
func (a *App) Run() error {
	const op = "app.Run"

	a.log.Info("Starting the HTTP server", map[string]interface{}{
		"addr": a.router.Addr(),
	})

	if err := a.router.Serve(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Stop drains in-flight requests, then closes storage.
func (a *App) Stop(ctx context.Context) error {
	const op = "app.Stop"

	a.log.Info("Stopping the HTTP server", map[string]interface{}{
		"op":   op,
		"addr": a.router.Addr(),
	})

	if err := a.router.Shutdown(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if a.storage != nil {
		if err := a.storage.Close(); err != nil {
			return fmt.Errorf("%s: close storage: %w", op, err)
		}
	}
	return nil
}
