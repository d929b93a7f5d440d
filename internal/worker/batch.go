package worker

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/akorchak/patentgrab/internal/model"
	"github.com/akorchak/patentgrab/internal/pipeline"
)

// PatentScraper produces one record per identifier and never fails at the
// record level.
type PatentScraper interface {
	Scrape(ctx context.Context, rawID string) *model.PatentRecord
	BaseURL() string
}

// LookupJob scrapes one identifier. Index is its input-row position.
type LookupJob struct {
	Index   int
	RawID   string
	scraper PatentScraper
	limiter *Limiter
	delay   time.Duration
}

// Execute waits out the rate limit and scrapes. Pacing failures (a
// cancelled batch) degrade to error records like any other retrieval
// failure.
func (j *LookupJob) Execute(ctx context.Context) Result {
	if j.limiter != nil {
		if err := j.limiter.WaitWithDelay(ctx, j.scraper.BaseURL(), j.delay); err != nil {
			return &LookupResult{
				Index:  j.Index,
				Record: model.ErrorRecord(pipeline.CleanPatentID(j.RawID), fmt.Sprintf("failed to retrieve patent: %v", err)),
			}
		}
	}
	return &LookupResult{Index: j.Index, Record: j.scraper.Scrape(ctx, j.RawID)}
}

// LookupResult pairs a record with its input-row index.
type LookupResult struct {
	Index  int
	Record *model.PatentRecord
}

// GetIndex returns the input-row index.
func (r *LookupResult) GetIndex() int {
	return r.Index
}

// BatchProcessor scrapes a list of identifiers, one record per input row,
// output order matching input order.
type BatchProcessor struct {
	scraper PatentScraper
	limiter *Limiter
	workers int
	delay   time.Duration
}

// NewBatchProcessor creates a processor. workers <= 1 means strictly
// sequential fetching; with more workers the shared limiter still enforces
// pacing.
func NewBatchProcessor(scraper PatentScraper, workers int, requestsPerSecond float64, burst int, delay time.Duration) *BatchProcessor {
	return &BatchProcessor{
		scraper: scraper,
		limiter: NewLimiter(requestsPerSecond, burst),
		workers: workers,
		delay:   delay,
	}
}

// ProcessIDs scrapes every identifier and returns records in input order.
func (b *BatchProcessor) ProcessIDs(ctx context.Context, ids []string) []*model.PatentRecord {
	records := make([]*model.PatentRecord, len(ids))

	if b.workers <= 1 {
		for i, id := range ids {
			job := &LookupJob{Index: i, RawID: id, scraper: b.scraper, limiter: b.limiter, delay: b.delay}
			records[i] = job.Execute(ctx).(*LookupResult).Record
		}
		return records
	}

	pool := NewPool(b.workers)
	pool.Start(ctx)

	// Submit and drain concurrently: the pool's channels are bounded, so a
	// submit loop that runs ahead of the consumer would wedge on a full
	// results buffer.
	go func() {
		for i, id := range ids {
			pool.Submit(&LookupJob{Index: i, RawID: id, scraper: b.scraper, limiter: b.limiter, delay: b.delay})
		}
		pool.Close()
	}()
	for result := range pool.Results() {
		lr := result.(*LookupResult)
		records[lr.Index] = lr.Record
	}

	// Cancellation can stop the pool before every job produced a result;
	// the batch still emits one record per input row.
	for i, rec := range records {
		if rec == nil {
			err := ctx.Err()
			if err == nil {
				err = context.Canceled
			}
			records[i] = model.ErrorRecord(pipeline.CleanPatentID(ids[i]), fmt.Sprintf("failed to retrieve patent: %v", err))
		}
	}
	return records
}

// ProcessFile reads identifiers from a CSV file and scrapes them all.
func (b *BatchProcessor) ProcessFile(ctx context.Context, path string) ([]*model.PatentRecord, error) {
	ids, err := ReadPatentIDs(path)
	if err != nil {
		return nil, fmt.Errorf("read identifiers: %w", err)
	}
	return b.ProcessIDs(ctx, ids), nil
}

// ReadPatentIDs reads raw identifiers from a CSV file: the first field of
// every row, in file order. No deduplication - the output must stay one
// record per input row.
func ReadPatentIDs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	var ids []string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		if len(row) == 0 {
			continue
		}
		if id := strings.TrimSpace(row[0]); id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
