package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/andresmatiasescobar/pokedex/internal/clients/pokeapi"
	"github.com/andresmatiasescobar/pokedex/internal/config"
	"github.com/andresmatiasescobar/pokedex/internal/errors"
	"github.com/andresmatiasescobar/pokedex/internal/handlers/web"
	"github.com/andresmatiasescobar/pokedex/internal/orchestrators/catalog"
	"github.com/andresmatiasescobar/pokedex/internal/orchestrators/sampler"
	"github.com/andresmatiasescobar/pokedex/internal/pkg/clock"
	"github.com/andresmatiasescobar/pokedex/internal/pkg/idgen"
	"github.com/andresmatiasescobar/pokedex/internal/services/browser"
)

const shutdownTimeout = 30 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Start the Pokémon browser web server. Settings come from flags, POKEDEX_* environment
variables and .env files, in that order of precedence.`,
	RunE: runServe,
}

func init() {
	f := serveCmd.Flags()
	f.Int("port", 8080, "HTTP listen port")
	f.String("base-url", pokeapi.DefaultBaseURL, "PokeAPI base URL")
	f.Duration("http-timeout", pokeapi.DefaultHTTPTimeout, "timeout for each PokeAPI request")
	f.Int("detail-concurrency", 0, "max in-flight detail requests when listing a type, 0 for no limit")
	f.Int("sample-size", sampler.DefaultSampleSize, "size of the random sample")
	f.Int("id-space", sampler.DefaultIDSpace, "random ids are drawn from [1, id-space]")
	f.Int("type-cap", sampler.DefaultTypeCap, "max Pokémon listed for a type")
	f.String("log-level", "info", "debug, info, warn or error")
	f.String("log-format", "text", "text or json")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	router, browserSvc, err := buildApp(cfg, logger)
	if err != nil {
		return err
	}

	// The page shows the loading state until the first cycle lands
	go func() {
		if _, err := browserSvc.Mount(ctx); err != nil {
			logger.Error("failed to mount browser", "error", err)
		}
	}()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("web server starting", "port", cfg.Port, "base_url", cfg.BaseURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- errors.Wrap(err, "failed to serve")
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down web server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("graceful shutdown timeout exceeded, forcing stop", "error", err)
			return srv.Close()
		}
		logger.Info("server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

// buildApp wires the client, orchestrators, browser and router
func buildApp(cfg *config.Config, logger *slog.Logger) (http.Handler, browser.Service, error) {
	client, err := pokeapi.New(&pokeapi.Config{
		BaseURL:     cfg.BaseURL,
		HTTPTimeout: cfg.HTTPTimeout,
		Logger:      logger,
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create pokeapi client")
	}

	catalogSvc, err := catalog.NewOrchestrator(&catalog.Config{Client: client, Logger: logger})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create catalog orchestrator")
	}

	samplerSvc, err := sampler.NewOrchestrator(&sampler.Config{
		Client:            client,
		Drawer:            idgen.NewDice(),
		DetailConcurrency: cfg.DetailConcurrency,
		Logger:            logger,
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create sampler orchestrator")
	}

	browserSvc, err := browser.NewService(&browser.Config{
		Catalog:     catalogSvc,
		Sampler:     samplerSvc,
		IDGenerator: idgen.NewUUID("cycle"),
		Clock:       clock.New(),
		Logger:      logger,
		SampleSize:  cfg.SampleSize,
		IDSpace:     cfg.IDSpace,
		TypeCap:     cfg.TypeCap,
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create browser service")
	}

	handler, err := web.NewHandler(&web.HandlerConfig{
		Browser: browserSvc,
		Sampler: samplerSvc,
		Logger:  logger,
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create web handler")
	}

	router, err := web.NewRouter(handler)
	if err != nil {
		return nil, nil, err
	}
	return router, browserSvc, nil
}
