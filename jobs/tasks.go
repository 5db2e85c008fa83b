// Package jobs wires background scrape runs through Asynq.
package jobs

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/pricescout/pricescout/internal/scrape"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskTypeScrapeRun triggers one ingestion pass over the configured sources.
	TaskTypeScrapeRun = "scrape:run"
)

// ScrapeRunPayload selects which sources an ingestion run covers. An empty
// list means every registered source.
type ScrapeRunPayload struct {
	Sources []string `json:"sources"`
}

// NewScrapeRunTask constructs an Asynq task.
func NewScrapeRunTask(payload ScrapeRunPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeScrapeRun, data), nil
}

// NewScrapeRunHandler builds the Asynq handler that executes ingestion runs
// with the given runner and source registry.
func NewScrapeRunHandler(runner *scrape.Runner, sources []scrape.Source, logger *slog.Logger) asynq.HandlerFunc {
	byKind := make(map[string]scrape.Source, len(sources))
	for _, src := range sources {
		byKind[src.Kind()] = src
	}

	return func(ctx context.Context, t *asynq.Task) error {
		var payload ScrapeRunPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return asynq.SkipRetry
		}

		selected := sources
		if len(payload.Sources) > 0 {
			selected = selected[:0:0]
			for _, kind := range payload.Sources {
				if src, ok := byKind[kind]; ok {
					selected = append(selected, src)
				} else {
					logger.Warn("unknown scrape source requested", slog.String("source", kind))
				}
			}
		}
		if len(selected) == 0 {
			logger.Warn("scrape run with no matching sources")
			return nil
		}

		// Failed fetches reduce the ingested count but the run itself is
		// done; re-queueing would only re-ingest into duplicates.
		runner.Run(ctx, selected)
		return nil
	}
}
