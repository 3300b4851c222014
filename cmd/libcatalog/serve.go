package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"libcatalog/internal/catalog"
	"libcatalog/internal/httpx"
	"libcatalog/internal/platform/source"
	"libcatalog/internal/render"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog page, its JSON view and the site directory",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default from APP_ADDR)")
}

func newRenderer() *render.Renderer {
	client := source.NewClient(cfg.UserAgent, cfg.SiteDir)
	return render.NewRenderer(client, logger, render.Options{
		Strict:     cfg.Strict,
		SourceName: sourceName(cfg.Source),
	})
}

func runServe(cmd *cobra.Command, args []string) error {
	limiter := httpx.NewRateLimitMiddleware(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst, cfg.HTTP.TrustProxy)
	defer limiter.Stop()

	svc := catalog.NewService(newRenderer(), cfg.Source, cfg.PageTitle)
	router := catalog.NewRouter(catalog.RouterConfig{
		Handler:     catalog.NewHTTPHandler(svc, logger),
		SiteDir:     cfg.SiteDir,
		Logger:      logger,
		RateLimiter: limiter,
		EnableHSTS:  cfg.HTTP.EnableHSTS,
	})

	httpServer := &http.Server{
		Addr:        cfg.Addr,
		Handler:     router,
		ReadTimeout: 5 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			zap.String("addr", cfg.Addr),
			zap.String("source", cfg.Source),
			zap.String("site_dir", cfg.SiteDir),
			zap.Bool("strict", cfg.Strict),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
