package model

import "encoding/json"

// TitleNotFound is returned when every title-extraction tier fails. The
// title never degrades to "" so consumers can tell "attempted and absent"
// apart from a blank field.
const TitleNotFound = "Title not found"

// PatentRecord is one scraped patent. A record either failed retrieval
// (only PatentID and Error populated) or carries whatever fields could be
// extracted; fields degrade independently and a miss in one never blocks
// another.
type PatentRecord struct {
	PatentID        string     `json:"patent_id"`
	URL             string     `json:"url"`
	Title           string     `json:"title"`
	Abstract        string     `json:"abstract"`
	Inventors       []string   `json:"inventors"`
	Assignees       []string   `json:"assignees"`
	FilingDate      string     `json:"filing_date"`
	PublicationDate string     `json:"publication_date"`
	Classifications []string   `json:"classifications"`
	Description     string     `json:"description"`
	Claims          []Claim    `json:"claims"`
	Citations       []Citation `json:"citations"`
	Error           string     `json:"error,omitempty"`
}

// Claim is one numbered claim. Number comes from the claim's own leading
// "<n>. " prefix when present, otherwise from its position in the claim
// list. Numbers are best-effort: neither uniqueness nor monotonicity is
// guaranteed.
type Claim struct {
	Number      int    `json:"number"`
	Text        string `json:"text"`
	IsDependent bool   `json:"is_dependent"`
	DependsOn   *int   `json:"depends_on"`
}

// Citation is one cited reference. ID may be empty while Title is not:
// identifier recovery is a pattern match, not a guarantee.
type Citation struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ErrorRecord builds a retrieval-failure record. Error presence and
// all-other-fields-absent are mutually exclusive, which MarshalJSON
// enforces on output.
func ErrorRecord(patentID, msg string) *PatentRecord {
	return &PatentRecord{PatentID: patentID, Error: msg}
}

// MarshalJSON serializes failed records as {patent_id, error} only, and
// successful records with every field present (explicit emptiness).
func (r PatentRecord) MarshalJSON() ([]byte, error) {
	if r.Error != "" {
		return json.Marshal(struct {
			PatentID string `json:"patent_id"`
			Error    string `json:"error"`
		}{r.PatentID, r.Error})
	}
	type record PatentRecord
	return json.Marshal(record(r))
}
