package bootstrap

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

	"golang.org/x/sync/errgroup"

	"github.com/danielwinstonmandela/ScalableArchitecturesCS/config"
	httpx "github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/http"
)

// serverSpec pairs a service name with its bind address and router.
type serverSpec struct {
	name    string
	addr    string
	handler http.Handler
}

// buildServerSpecs materializes one HTTP server spec per enabled service.
func buildServerSpecs(cfg *config.AppConfig, services ServiceContainer, logger *slog.Logger) ([]serverSpec, error) {
	enabled, err := cfg.GetEnabledServices()
	if err != nil {
		return nil, fmt.Errorf("determine enabled services: %w", err)
	}

	routerServices := httpx.RouterServices{
		Users:     services.Users,
		Tracks:    services.Tracks,
		Playbacks: services.Playbacks,
		Cache:     services.Cache,
		Guard:     services.Auth.Guard,
		Logger:    logger,
	}

	var specs []serverSpec
	if enabled[config.ServiceModeUser] {
		specs = append(specs, serverSpec{
			name:    string(config.ServiceModeUser),
			addr:    cfg.HTTP.UserAddr,
			handler: httpx.NewUserRouter(routerServices),
		})
	}
	if enabled[config.ServiceModeCatalog] {
		specs = append(specs, serverSpec{
			name:    string(config.ServiceModeCatalog),
			addr:    cfg.HTTP.CatalogAddr,
			handler: httpx.NewCatalogRouter(routerServices),
		})
	}
	if enabled[config.ServiceModePlayback] {
		specs = append(specs, serverSpec{
			name:    string(config.ServiceModePlayback),
			addr:    cfg.HTTP.PlaybackAddr,
			handler: httpx.NewPlaybackRouter(routerServices),
		})
	}
	return specs, nil
}

func newServer(spec serverSpec) *http.Server {
	return &http.Server{
		Addr:         spec.addr,
		Handler:      spec.handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}

// RunServicesWithShutdown starts one HTTP server per enabled service and
// blocks until a shutdown signal arrives or a server fails. On either event
// all servers are drained within the configured shutdown timeout.
func RunServicesWithShutdown(cfg *config.AppConfig, services ServiceContainer, logger *slog.Logger) error {
	if cfg == nil {
		return errors.New("app config is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	specs, err := buildServerSpecs(cfg, services, logger)
	if err != nil {
		return err
	}
	if len(specs) == 0 {
		return errors.New("no services enabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)
	servers := make([]*http.Server, 0, len(specs))

	for _, spec := range specs {
		server := newServer(spec)
		servers = append(servers, server)

		group.Go(func() error {
			logger.Info("starting HTTP server", "service", spec.name, "addr", server.Addr)
			if serveErr := server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
				return fmt.Errorf("%s server: %w", spec.name, serveErr)
			}
			return nil
		})
	}

	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info("shutting down services...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()

		var shutdownErr error
		for _, server := range servers {
			if err := server.Shutdown(shutdownCtx); err != nil {
				shutdownErr = errors.Join(shutdownErr, err)
			}
		}
		return shutdownErr
	})

	if err := group.Wait(); err != nil {
		return err
	}

	logger.Info("all services stopped")
	return nil
}
