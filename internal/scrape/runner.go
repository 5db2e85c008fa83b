package scrape

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pricescout/pricescout/internal/catalog"
	jobmetrics "github.com/pricescout/pricescout/internal/jobs"
)

// RunnerConfig tunes the per-source politeness delay between page fetches.
type RunnerConfig struct {
	DelayMin time.Duration
	DelayMax time.Duration
}

// Runner drives one ingestion run: every source is fetched concurrently while
// candidates within a source are ingested sequentially, in document order.
// Dedup is left entirely to the catalog's unique key; the runner just counts
// the rejections.
type Runner struct {
	fetcher  *Fetcher
	catalog  *catalog.Service
	logger   *slog.Logger
	metrics  *jobmetrics.Metrics
	delayMin time.Duration
	delayMax time.Duration
}

func NewRunner(fetcher *Fetcher, svc *catalog.Service, logger *slog.Logger, metrics *jobmetrics.Metrics, cfg RunnerConfig) *Runner {
	if cfg.DelayMax < cfg.DelayMin {
		cfg.DelayMax = cfg.DelayMin
	}
	return &Runner{
		fetcher:  fetcher,
		catalog:  svc,
		logger:   logger,
		metrics:  metrics,
		delayMin: cfg.DelayMin,
		delayMax: cfg.DelayMax,
	}
}

// Summary describes the outcome of an ingestion run. A run with failures is
// still a terminal state; nothing is rolled back.
type Summary struct {
	RunID      string `json:"run_id"`
	Fetched    int    `json:"fetched"`
	Ingested   int    `json:"ingested"`
	Duplicates int    `json:"duplicates"`
	Skipped    int    `json:"skipped"`
	Failures   int    `json:"failures"`
}

func (s *Summary) merge(other Summary) {
	s.Fetched += other.Fetched
	s.Ingested += other.Ingested
	s.Duplicates += other.Duplicates
	s.Skipped += other.Skipped
	s.Failures += other.Failures
}

// Run executes one ingestion pass over the given sources. Source failures
// never abort the run; cancellation is honoured between page fetches, leaving
// a partial run as the accepted terminal state.
func (r *Runner) Run(ctx context.Context, sources []Source) Summary {
	summary := Summary{RunID: uuid.NewString()}
	tracker := r.metrics.Track("scrape_run")
	logger := r.logger.With(slog.String("run_id", summary.RunID))
	logger.Info("ingestion run started", slog.Int("sources", len(sources)))

	results := make([]Summary, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			results[i] = r.runSource(gctx, logger, src)
			return nil
		})
	}
	// Workers only report through their summaries.
	_ = g.Wait()

	for _, res := range results {
		summary.merge(res)
	}
	var runErr error
	if summary.Failures > 0 {
		runErr = fmt.Errorf("ingestion run had %d failures", summary.Failures)
	}
	_ = tracker.End(runErr)

	logger.Info("ingestion run finished",
		slog.Int("fetched", summary.Fetched),
		slog.Int("ingested", summary.Ingested),
		slog.Int("duplicates", summary.Duplicates),
		slog.Int("skipped", summary.Skipped),
		slog.Int("failures", summary.Failures))
	return summary
}

func (r *Runner) runSource(ctx context.Context, logger *slog.Logger, src Source) Summary {
	var sum Summary
	logger = logger.With(slog.String("source", src.Kind()))

	for i, target := range src.Targets() {
		if ctx.Err() != nil {
			logger.Warn("ingestion aborted", slog.Any("error", ctx.Err()))
			return sum
		}
		if i > 0 {
			if err := r.politenessDelay(ctx); err != nil {
				return sum
			}
		}

		content, err := r.fetcher.Fetch(ctx, target.URL)
		if err != nil {
			sum.Failures++
			logger.Error("source page unavailable", slog.String("url", target.URL), slog.Any("error", err))
			continue
		}
		sum.Fetched++

		for _, item := range src.Extract(content, target.Category) {
			if item.Skipped() {
				sum.Skipped++
				r.metrics.AddItems(src.Kind(), "skipped", 1)
				logger.Debug("item skipped", slog.String("reason", item.SkipReason))
				continue
			}
			_, err := r.catalog.Ingest(ctx, item.Candidate)
			switch {
			case errors.Is(err, catalog.ErrDuplicate):
				sum.Duplicates++
				r.metrics.AddItems(src.Kind(), "duplicate", 1)
			case err != nil:
				sum.Failures++
				logger.Warn("ingest failed",
					slog.String("name", item.Candidate.Name),
					slog.Any("error", err))
			default:
				sum.Ingested++
				r.metrics.AddItems(src.Kind(), "ingested", 1)
			}
		}
	}
	return sum
}

func (r *Runner) politenessDelay(ctx context.Context) error {
	if r.delayMax <= 0 {
		return ctx.Err()
	}
	delay := r.delayMin
	if spread := r.delayMax - r.delayMin; spread > 0 {
		delay += time.Duration(rand.Int63n(int64(spread)))
	}
	select {
	case <-time.After(delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
