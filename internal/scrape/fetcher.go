// Package scrape implements the ingestion pipeline: fetching source pages,
// extracting candidate records and feeding them into the catalog.
package scrape

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	jobmetrics "github.com/pricescout/pricescout/internal/jobs"
)

// FetcherConfig tunes retry and politeness behaviour. Zero values fall back
// to the defaults the sources were calibrated against.
type FetcherConfig struct {
	MaxRetries     int
	RequestTimeout time.Duration
	BackoffUnit    time.Duration
	UserAgent      string
	Limiter        *rate.Limiter
	Metrics        *jobmetrics.Metrics
}

const (
	defaultMaxRetries     = 3
	defaultRequestTimeout = 10 * time.Second
	defaultBackoffUnit    = time.Second
	defaultUserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

// Fetcher retrieves source pages with bounded retries and exponential
// backoff. It never touches the catalog; a fully failed fetch surfaces as an
// error carrying the last cause.
type Fetcher struct {
	client         *http.Client
	logger         *slog.Logger
	maxRetries     int
	requestTimeout time.Duration
	backoffUnit    time.Duration
	userAgent      string
	limiter        *rate.Limiter
	metrics        *jobmetrics.Metrics
}

func NewFetcher(logger *slog.Logger, cfg FetcherConfig) *Fetcher {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}
	if cfg.BackoffUnit <= 0 {
		cfg.BackoffUnit = defaultBackoffUnit
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	return &Fetcher{
		client:         &http.Client{},
		logger:         logger,
		maxRetries:     cfg.MaxRetries,
		requestTimeout: cfg.RequestTimeout,
		backoffUnit:    cfg.BackoffUnit,
		userAgent:      cfg.UserAgent,
		limiter:        cfg.Limiter,
		metrics:        cfg.Metrics,
	}
}

// Fetch retrieves a page, retrying any transport-level failure (timeouts,
// connection errors, non-2xx statuses) up to maxRetries times. Attempt i
// sleeps 2^i backoff units before the next try; there is no sleep after the
// final failure.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	var lastErr error
	for attempt := 0; attempt < f.maxRetries; attempt++ {
		if f.limiter != nil {
			if err := f.limiter.Wait(ctx); err != nil {
				return "", err
			}
		}

		body, err := f.attempt(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err
		f.logger.Warn("fetch attempt failed",
			slog.String("url", url),
			slog.Int("attempt", attempt+1),
			slog.Any("error", err))

		if attempt < f.maxRetries-1 {
			f.metrics.AddFetchRetry()
			backoff := time.Duration(1<<attempt) * f.backoffUnit
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
	}
	f.logger.Error("fetch failed after retries",
		slog.String("url", url),
		slog.Int("attempts", f.maxRetries),
		slog.Any("error", lastErr))
	return "", fmt.Errorf("fetch %s after %d attempts: %w", url, f.maxRetries, lastErr)
}

func (f *Fetcher) attempt(ctx context.Context, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, f.requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
