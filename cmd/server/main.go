// Command server runs both functions behind a plain HTTP server for local development.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"CapIot.timestream/internal/bootstrap"
	"CapIot.timestream/internal/routes"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.Load(ctx)
	if err != nil {
		slog.Error("Error starting server", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	router := routes.NewRouter(routes.Handlers{
		Recent:      app.Controller.HandleRecent,
		DeviceQuery: app.Controller.HandleDeviceQuery,
	})

	srv := &http.Server{
		Addr:              app.Config.Addr(),
		Handler:           routes.WithCORS(router, app.Config.CORSAllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.Logger.Error("Error shutting down server", "error", err)
		}
	}()

	app.Logger.Info("Server is running", "url", "http://localhost"+app.Config.Addr(), "backend", app.Config.Backend)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.Logger.Error("Error starting server", "error", err)
		os.Exit(1)
	}
}
