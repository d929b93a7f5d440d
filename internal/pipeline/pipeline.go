// Package pipeline assembles one PatentRecord per identifier: normalize,
// fetch, parse, run every field extractor, merge. Retrieval failures and
// internal faults become record-level errors so a batch always completes
// with one output row per input identifier.
package pipeline

import (
	"context"
	"fmt"

	"github.com/akorchak/patentgrab/internal/cache"
	"github.com/akorchak/patentgrab/internal/document"
	"github.com/akorchak/patentgrab/internal/extract"
	"github.com/akorchak/patentgrab/internal/model"
)

// Scraper fetches and extracts patent records.
type Scraper struct {
	fetcher *Fetcher
	cfg     *model.Config
}

// NewScraper wires a scraper from configuration, including the optional
// layered page cache.
func NewScraper(cfg *model.Config) *Scraper {
	var pageCache cache.Cache
	if cfg.Cache.Enabled {
		pageCache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}
	return &Scraper{
		fetcher: NewFetcher(cfg, pageCache),
		cfg:     cfg,
	}
}

// BaseURL exposes the configured source base for rate-limiter keying.
func (s *Scraper) BaseURL() string {
	return s.cfg.Source.BaseURL
}

// Scrape produces the record for one raw identifier. It never returns an
// error: retrieval failures and recovered faults are folded into the
// record's error field.
func (s *Scraper) Scrape(ctx context.Context, rawID string) (rec *model.PatentRecord) {
	id := CleanPatentID(rawID)
	url := PatentURL(s.cfg.Source, id)

	// An unexpected fault inside extraction must not abort the batch.
	defer func() {
		if r := recover(); r != nil {
			rec = model.ErrorRecord(id, fmt.Sprintf("extraction fault: %v", r))
		}
	}()

	result, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return model.ErrorRecord(id, fmt.Sprintf("failed to retrieve patent: %v", err))
	}

	doc, err := document.Parse(result.HTML)
	if err != nil {
		return model.ErrorRecord(id, fmt.Sprintf("parse document: %v", err))
	}

	return Assemble(id, url, doc)
}

// Assemble runs every field extractor against one parsed document. The
// extractors are independent: a miss in one yields that field's default and
// never blocks another.
func Assemble(id, url string, doc *document.Document) *model.PatentRecord {
	rec := &model.PatentRecord{
		PatentID:        id,
		URL:             url,
		Title:           extract.Title(doc),
		Abstract:        extract.Abstract(doc),
		Inventors:       extract.Inventors(doc),
		Assignees:       extract.Assignees(doc),
		FilingDate:      extract.FilingDate(doc),
		PublicationDate: extract.PublicationDate(doc),
		Classifications: extract.Classifications(doc),
		Description:     extract.Description(doc),
		Claims:          extract.Claims(doc),
		Citations:       extract.Citations(doc),
	}

	// Sequences serialize as [] rather than null.
	if rec.Inventors == nil {
		rec.Inventors = []string{}
	}
	if rec.Assignees == nil {
		rec.Assignees = []string{}
	}
	if rec.Classifications == nil {
		rec.Classifications = []string{}
	}
	if rec.Claims == nil {
		rec.Claims = []model.Claim{}
	}
	if rec.Citations == nil {
		rec.Citations = []model.Citation{}
	}
	return rec
}
