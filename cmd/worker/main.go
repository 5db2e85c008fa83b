package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/pricescout/pricescout/internal/app"
	"github.com/pricescout/pricescout/internal/catalog"
	jobmetrics "github.com/pricescout/pricescout/internal/jobs"
	"github.com/pricescout/pricescout/internal/platform/db"
	"github.com/pricescout/pricescout/internal/scrape"
	"github.com/pricescout/pricescout/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping worker startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.Connect(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect database", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	metrics := jobmetrics.NewMetrics(prometheus.DefaultRegisterer)

	catalogRepo := catalog.NewRepository(pool)
	catalogService := catalog.NewService(catalogRepo, nil, logger)

	// One fetch per delay-min across all sources keeps the worker polite even
	// when several cron runs overlap.
	limiter := rate.NewLimiter(rate.Every(cfg.ScrapeDelayMin), 1)
	fetcher := scrape.NewFetcher(logger, scrape.FetcherConfig{
		MaxRetries:     cfg.ScrapeMaxRetries,
		RequestTimeout: cfg.ScrapeRequestTimeout,
		BackoffUnit:    cfg.ScrapeBackoffUnit,
		UserAgent:      cfg.ScrapeUserAgent,
		Limiter:        limiter,
		Metrics:        metrics,
	})
	runner := scrape.NewRunner(fetcher, catalogService, logger, metrics, scrape.RunnerConfig{
		DelayMin: cfg.ScrapeDelayMin,
		DelayMax: cfg.ScrapeDelayMax,
	})

	sources := []scrape.Source{
		scrape.NewAmazonSource(cfg.ScrapeMaxPerPage),
		scrape.NewBestBuySource(cfg.ScrapeMaxPerPage),
	}

	scrapeTask, err := jobs.NewScrapeRunTask(jobs.ScrapeRunPayload{})
	if err != nil {
		logger.Error("build scrape task", slog.Any("error", err))
		os.Exit(1)
	}

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskTypeScrapeRun, Handler: jobs.NewScrapeRunHandler(runner, sources, logger)},
		},
		Cron: []jobs.CronRegistration{
			{Spec: cfg.ScrapeCron, Task: scrapeTask},
		},
	})
	if err != nil {
		logger.Error("init worker", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("worker started", slog.String("cron", cfg.ScrapeCron))
	if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("worker stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
