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

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/roommapper/internal/config"
	"github.com/MrJamesThe3rd/roommapper/internal/fuzzy"
	roomHttp "github.com/MrJamesThe3rd/roommapper/internal/http"
	matchingHandler "github.com/MrJamesThe3rd/roommapper/internal/http/matching"
	"github.com/MrJamesThe3rd/roommapper/internal/matching"
	"github.com/MrJamesThe3rd/roommapper/internal/normalize"
	"github.com/MrJamesThe3rd/roommapper/internal/reference"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	scorer, err := fuzzy.ScorerByName(cfg.Match.Scorer)
	if err != nil {
		slog.Error("failed to resolve scorer", "error", err)
		os.Exit(1)
	}

	normalizer, err := normalize.Default()
	if err != nil {
		slog.Error("failed to build normalizer", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src := reference.Source{
		Driver: cfg.Reference.Driver,
		Path:   cfg.Reference.Path,
		Table:  cfg.Reference.Table,
	}
	if src.Driver == reference.DriverPostgres {
		src.DSN = cfg.ConnectionString()
	}

	table, err := reference.Load(ctx, src, normalizer)
	if err != nil {
		slog.Error("failed to load reference rooms", "error", err)
		os.Exit(1)
	}

	matchingService := matching.NewService(table, normalizer, matching.Config{
		Threshold:       cfg.Match.Threshold,
		Scorer:          scorer,
		BulkConcurrency: cfg.Match.BulkConcurrency,
	})

	router := roomHttp.New(matchingHandler.NewHandler(matchingService, normalizer), roomHttp.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Timeout:        cfg.Server.Timeout,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown failed", "error", err)
		}
	}()

	slog.Info("starting server", "app", cfg.App.Name, "port", srv.Addr, "threshold", cfg.Match.Threshold)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
