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

	"moviehub/catalog"
	"moviehub/comment"
	"moviehub/httpserver"
	"moviehub/movie"
	"moviehub/pkg/config"
	"moviehub/pkg/sentry"
	"moviehub/pkg/storage"

	sentrygo "github.com/getsentry/sentry-go"
	_ "github.com/lib/pq"
)

const shutdownTimeout = 10 * time.Second

// @title moviehub API
// @version 1.0
// @description Movie catalog browsing and comments.
// @BasePath /
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Cannot load config", "error", err)
		os.Exit(1)
	}

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		slog.Error("Cannot init sentry", "error", err)
		os.Exit(1)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	movies, err := catalog.NewClient(catalog.Options{
		URL:         cfg.Catalog.URL,
		Timeout:     cfg.Catalog.Timeout,
		MaxFailures: cfg.Catalog.BreakerThreshold,
	})
	if err != nil {
		slog.Error("Cannot create catalog client", "error", err)
		sentry.Fatalf("create catalog client: %w", err)
		os.Exit(1)
	}

	comments, closeStore, err := storage.NewCommentRepository(ctx, cfg)
	if err != nil {
		slog.Error("Cannot open comment store", "driver", cfg.DB.Driver, "error", err)
		sentry.WithTags(map[string]string{"driver": cfg.DB.Driver}).Fatal(err)
		os.Exit(1)
	}
	defer closeStore()

	server := httpserver.Default(cfg)
	server.MovieService = movie.NewUsecase(movies)
	server.CommentService = comment.NewUsecase(comments)

	go func() {
		slog.Info("server started!", "addr", server.Addr, "driver", cfg.DB.Driver)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped with error", "error", err)
			sentry.Fatal(err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("cannot shutdown server", "error", err)
	}
	slog.Info("server stopped")
}
