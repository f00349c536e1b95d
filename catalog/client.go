package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"moviehub/errs"
	"moviehub/movie"
	"moviehub/pkg/metrics"
	"moviehub/pkg/sentry"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
)

const (
	breakerName        = "movie-catalog"
	defaultTimeout     = 10 * time.Second
	defaultMaxFailures = 5
	defaultOpenTimeout = 30 * time.Second
)

type Options struct {
	URL string

	// Timeout bounds a single catalog fetch. Zero means defaultTimeout.
	Timeout time.Duration

	// MaxFailures is the number of consecutive failures that opens the
	// breaker. Zero means defaultMaxFailures.
	MaxFailures uint32

	// OpenTimeout is how long the breaker stays open before probing again.
	OpenTimeout time.Duration

	HTTPClient *http.Client
}

// Client fetches the full movie catalog from the upstream movies API.
// It implements movie.CatalogSource.
type Client struct {
	url  string
	http *http.Client
	cb   *gobreaker.CircuitBreaker[[]movie.Movie]
}

func NewClient(opts Options) (*Client, error) {
	url := strings.TrimSpace(opts.URL)
	if url == "" {
		return nil, errors.New("catalog: url is required")
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	maxFailures := opts.MaxFailures
	if maxFailures == 0 {
		maxFailures = defaultMaxFailures
	}
	openTimeout := opts.OpenTimeout
	if openTimeout <= 0 {
		openTimeout = defaultOpenTimeout
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(float64(gobreaker.StateClosed))

	cb := gobreaker.NewCircuitBreaker[[]movie.Movie](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("catalog circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
			metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
			if to == gobreaker.StateOpen {
				sentry.WithTags(map[string]string{"breaker": name}).
					Warningf("circuit breaker %s opened after %d consecutive failures", name, maxFailures)
			}
		},
	})

	return &Client{url: url, http: httpClient, cb: cb}, nil
}

// AllMovies returns every movie in the catalog, in upstream order.
func (c *Client) AllMovies(ctx context.Context) ([]movie.Movie, error) {
	start := time.Now()
	movies, err := c.cb.Execute(func() ([]movie.Movie, error) {
		return c.fetch(ctx)
	})
	metrics.CatalogFetchDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CatalogFetchTotal.WithLabelValues("rejected").Inc()
		} else {
			metrics.CatalogFetchTotal.WithLabelValues("failure").Inc()
		}
		slog.Error("cannot fetch movie catalog", "url", c.url, "error", err)
		return nil, errs.Wrap(errs.EUNAVAILABLE, err, "movie catalog unavailable")
	}

	metrics.CatalogFetchTotal.WithLabelValues("success").Inc()
	metrics.CatalogMovies.Set(float64(len(movies)))
	return movies, nil
}

func (c *Client) fetch(ctx context.Context) ([]movie.Movie, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog: get movies: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("catalog: unexpected status: %s", resp.Status)
	}

	var movies []movie.Movie
	if err := json.NewDecoder(resp.Body).Decode(&movies); err != nil {
		return nil, fmt.Errorf("catalog: decode movies: %w", err)
	}
	if movies == nil {
		movies = []movie.Movie{}
	}
	return movies, nil
}
