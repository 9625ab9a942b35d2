package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/arcade-backend/internal/config"
	"github.com/rocketscienceinc/arcade-backend/transport/rest"
	"github.com/rocketscienceinc/arcade-backend/transport/websocket"
)

// NewHandler wires the socket server into the HTTP router.
func NewHandler(logger *slog.Logger, conf *config.Config) (http.Handler, *websocket.Server) {
	wsServer := websocket.New(logger, websocket.OptionsFromConfig(conf))

	return rest.NewRouter(logger, wsServer), wsServer
}

// RunApp - runs the application until SIGINT or SIGTERM.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	handler, wsServer := NewHandler(logger, conf)

	errg, ctx := errgroup.WithContext(ctx)

	errg.Go(func() error {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if err := rest.Start(ctx, conf.HTTPPort, handler); err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	errg.Go(func() error {
		<-ctx.Done()
		log.Info("Application context canceled, shutting down", "sessions", wsServer.Sessions())
		wsServer.CloseAll()
		return nil
	})

	return errg.Wait()
}
