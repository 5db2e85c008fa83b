package jobs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricescout/pricescout/internal/catalog"
	"github.com/pricescout/pricescout/internal/scrape"
)

type fakeRepository struct {
	catalog.Repository

	inserted int
}

func (f *fakeRepository) Insert(ctx context.Context, p catalog.Product) (int64, error) {
	f.inserted++
	return int64(f.inserted), nil
}

type fakeSource struct {
	kind   string
	target string
}

func (s *fakeSource) Kind() string  { return s.kind }
func (s *fakeSource) Store() string { return "FakeMart" }
func (s *fakeSource) Targets() []scrape.Target {
	return []scrape.Target{{URL: s.target, Category: "Phones"}}
}
func (s *fakeSource) Extract(content, category string) []scrape.Item {
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestHandler(t *testing.T, sources []scrape.Source) asynq.HandlerFunc {
	t.Helper()
	repo := &fakeRepository{}
	svc := catalog.NewService(repo, nil, discardLogger())
	fetcher := scrape.NewFetcher(discardLogger(), scrape.FetcherConfig{MaxRetries: 1, BackoffUnit: time.Millisecond})
	runner := scrape.NewRunner(fetcher, svc, discardLogger(), nil, scrape.RunnerConfig{})
	return NewScrapeRunHandler(runner, sources, discardLogger())
}

func TestScrapeRunTaskRoundTrip(t *testing.T) {
	task, err := NewScrapeRunTask(ScrapeRunPayload{Sources: []string{"amazon"}})
	require.NoError(t, err)
	assert.Equal(t, TaskTypeScrapeRun, task.Type())
}

func TestScrapeRunHandlerBadPayload(t *testing.T) {
	handler := newTestHandler(t, nil)

	err := handler(context.Background(), asynq.NewTask(TaskTypeScrapeRun, []byte("{not json")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestScrapeRunHandlerUnknownSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html></html>"))
	}))
	defer srv.Close()

	handler := newTestHandler(t, []scrape.Source{&fakeSource{kind: "amazon", target: srv.URL}})

	task, err := NewScrapeRunTask(ScrapeRunPayload{Sources: []string{"walmart"}})
	require.NoError(t, err)

	// No matching source: the run is a no-op, not a retryable failure.
	assert.NoError(t, handler(context.Background(), task))
}

func TestScrapeRunHandlerSelectsSources(t *testing.T) {
	var fetched int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetched++
		fmt.Fprint(w, "<html></html>")
	}))
	defer srv.Close()

	sources := []scrape.Source{
		&fakeSource{kind: "amazon", target: srv.URL + "/amazon"},
		&fakeSource{kind: "bestbuy", target: srv.URL + "/bestbuy"},
	}
	handler := newTestHandler(t, sources)

	task, err := NewScrapeRunTask(ScrapeRunPayload{Sources: []string{"amazon"}})
	require.NoError(t, err)
	require.NoError(t, handler(context.Background(), task))

	assert.Equal(t, 1, fetched)
}
