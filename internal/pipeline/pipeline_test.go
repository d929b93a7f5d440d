package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/akorchak/patentgrab/internal/document"
	"github.com/akorchak/patentgrab/internal/model"
)

const samplePatentPage = `<html>
<head>
<title>US7654321B2 - Adaptive Widget Coupling - Google Patents</title>
<meta name="description" content="Adaptive Widget Coupling: A coupling that adapts to load.">
</head>
<body>
<h1 itemprop="title">Adaptive Widget Coupling</h1>
<dl>
<dt>Inventors:</dt>
<dd itemprop="inventor"><span itemprop="name">Jane Doe</span></dd>
<dd itemprop="inventor"><span itemprop="name">John Roe</span></dd>
<dt>Assignee:</dt>
<dd itemprop="assignee"><span itemprop="name">Acme Corp</span></dd>
<dt>Filed:</dt>
<dd itemprop="filingDate"><time>2003-03-04</time></dd>
<dt>Published:</dt>
<dd itemprop="publicationDate"><time>2010-01-05</time></dd>
</dl>
<div class="abstract">A coupling that adapts to load.</div>
<ul>
<li itemprop="classifications"><span itemprop="Code">F16B 1/00</span></li>
<li itemprop="classifications"><span itemprop="Code">F16D 3/00</span></li>
</ul>
<section itemprop="description">
<p>First paragraph.</p>
<p>Second paragraph.</p>
</section>
<section itemprop="claims">
<div class="claim">1. A coupling comprising a hub.</div>
<div class="claim">2. The coupling of claim 1, wherein the hub is splined.</div>
</section>
<table>
<tr class="citation"><td class="patent-id">US999888A1</td><td class="patent-title">Valve assembly</td></tr>
</table>
</body>
</html>`

func scraperAgainst(srv *httptest.Server) *Scraper {
	cfg := testConfig()
	cfg.Source.BaseURL = srv.URL + "/patent/"
	return NewScraper(cfg)
}

func TestScrapeExtractsEveryField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(samplePatentPage))
	}))
	defer srv.Close()

	rec := scraperAgainst(srv).Scrape(context.Background(), "7,654,321")

	if rec.Error != "" {
		t.Fatalf("unexpected error: %s", rec.Error)
	}
	if rec.PatentID != "7654321" {
		t.Errorf("patent id = %q", rec.PatentID)
	}
	if !strings.HasSuffix(rec.URL, "/patent/US7654321B2/en") {
		t.Errorf("url = %q", rec.URL)
	}
	if rec.Title != "Adaptive Widget Coupling" {
		t.Errorf("title = %q", rec.Title)
	}
	if rec.Abstract != "A coupling that adapts to load." {
		t.Errorf("abstract = %q", rec.Abstract)
	}
	if !reflect.DeepEqual(rec.Inventors, []string{"Jane Doe", "John Roe"}) {
		t.Errorf("inventors = %v", rec.Inventors)
	}
	if !reflect.DeepEqual(rec.Assignees, []string{"Acme Corp"}) {
		t.Errorf("assignees = %v", rec.Assignees)
	}
	if rec.FilingDate != "2003-03-04" {
		t.Errorf("filing date = %q", rec.FilingDate)
	}
	if rec.PublicationDate != "2010-01-05" {
		t.Errorf("publication date = %q", rec.PublicationDate)
	}
	if !reflect.DeepEqual(rec.Classifications, []string{"F16B 1/00", "F16D 3/00"}) {
		t.Errorf("classifications = %v", rec.Classifications)
	}
	if rec.Description != "First paragraph.\n\nSecond paragraph." {
		t.Errorf("description = %q", rec.Description)
	}
	if len(rec.Claims) != 2 {
		t.Fatalf("claims = %v", rec.Claims)
	}
	if !rec.Claims[1].IsDependent || rec.Claims[1].DependsOn == nil || *rec.Claims[1].DependsOn != 1 {
		t.Errorf("claim 2 dependency = %+v", rec.Claims[1])
	}
	if len(rec.Citations) != 1 || rec.Citations[0].ID != "US999888A1" {
		t.Errorf("citations = %v", rec.Citations)
	}
}

func TestScrapeRetrievalFailureYieldsErrorRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	rec := scraperAgainst(srv).Scrape(context.Background(), "7654321")

	if rec.PatentID != "7654321" {
		t.Errorf("patent id = %q", rec.PatentID)
	}
	if !strings.Contains(rec.Error, "failed to retrieve patent") {
		t.Errorf("error = %q", rec.Error)
	}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(m) != 2 {
		t.Errorf("error record carries %d keys, expected patent_id and error only: %v", len(m), m)
	}
}

func TestScrapeSparsePageYieldsExplicitEmptiness(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body><p>nothing useful</p></body></html>"))
	}))
	defer srv.Close()

	rec := scraperAgainst(srv).Scrape(context.Background(), "7654321")

	if rec.Error != "" {
		t.Fatalf("unexpected error: %s", rec.Error)
	}
	if rec.Title != model.TitleNotFound {
		t.Errorf("title = %q", rec.Title)
	}
	if rec.Inventors == nil || rec.Assignees == nil || rec.Classifications == nil ||
		rec.Claims == nil || rec.Citations == nil {
		t.Error("sequence fields must be empty, never nil")
	}
	if rec.Abstract != "" || rec.FilingDate != "" || rec.Description != "" {
		t.Errorf("scalar misses must be empty strings: %+v", rec)
	}
}

func TestAssembleIsIdempotent(t *testing.T) {
	first, err := document.Parse(samplePatentPage)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	second, err := document.Parse(samplePatentPage)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	a, err := json.Marshal(Assemble("US7654321", "u", first))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	b, err := json.Marshal(Assemble("US7654321", "u", second))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("repeated extraction of the same page produced different records")
	}
}

func TestRendererWriteJSON(t *testing.T) {
	records := []*model.PatentRecord{
		model.ErrorRecord("US1", "failed to retrieve patent: boom"),
	}

	path := t.TempDir() + "/out.json"
	if err := NewRenderer().WriteJSON(records, path); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var out []map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out) != 1 || out[0]["patent_id"] != "US1" {
		t.Errorf("output = %v", out)
	}
}

func TestRenderSummaryCounts(t *testing.T) {
	records := []*model.PatentRecord{
		{PatentID: "US1"},
		model.ErrorRecord("US2", "boom"),
		{PatentID: "US3"},
	}

	var buf bytes.Buffer
	NewRenderer().RenderSummary(&buf, records)

	if got := buf.String(); got != "Scraped 3 patents: 2 ok, 1 failed\n" {
		t.Errorf("summary = %q", got)
	}
}
