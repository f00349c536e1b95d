package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"moviehub/comment"
	"moviehub/pkg/config"
	"moviehub/pkg/storage"

	_ "github.com/lib/pq"
)

func main() {
	var (
		csvPath string
		csvURL  string
		limit   int
	)

	flag.StringVar(&csvPath, "csv", "", "Path to a comments CSV with title and comment columns")
	flag.StringVar(&csvURL, "url", "", "URL of a comments CSV (used when -csv is empty)")
	flag.IntVar(&limit, "limit", 0, "Limit number of rows to import (0 = all)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("load config failed", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	repo, closeStore, err := storage.NewCommentRepository(ctx, cfg)
	if err != nil {
		slog.Error("cannot open comment store", "driver", cfg.DB.Driver, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	src, err := openSource(ctx, csvPath, csvURL)
	if err != nil {
		slog.Error("cannot open comments source", "error", err)
		os.Exit(1)
	}
	defer src.Close()

	count, err := importComments(ctx, comment.NewUsecase(repo), src, limit)
	if err != nil {
		slog.Error("import failed", "rows", count, "error", err)
		os.Exit(1)
	}

	slog.Info("import completed", "rows", count, "driver", cfg.DB.Driver)
}

func openSource(ctx context.Context, csvPath, csvURL string) (io.ReadCloser, error) {
	if csvPath != "" {
		return os.Open(csvPath)
	}
	if csvURL == "" {
		return nil, errors.New("either -csv or -url is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, csvURL, nil)
	if err != nil {
		return nil, err
	}

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	return resp.Body, nil
}
