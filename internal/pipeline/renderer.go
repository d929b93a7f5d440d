package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/akorchak/patentgrab/internal/model"
)

// Renderer writes scraped records to disk or a stream.
type Renderer struct{}

// NewRenderer creates a renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// WriteJSON serializes the ordered record array to path with 2-space
// indentation.
func (r *Renderer) WriteJSON(records []*model.PatentRecord, path string) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// WriteRecord serializes a single record to a stream.
func (r *Renderer) WriteRecord(w io.Writer, rec *model.PatentRecord) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// RenderSummary prints per-batch counts to the given stream.
func (r *Renderer) RenderSummary(w io.Writer, records []*model.PatentRecord) {
	success, failed := 0, 0
	for _, rec := range records {
		if rec.Error != "" {
			failed++
		} else {
			success++
		}
	}
	fmt.Fprintf(w, "Scraped %d patents: %d ok, %d failed\n", len(records), success, failed)
}
