package pipeline

import (
	"regexp"

	"github.com/akorchak/patentgrab/internal/model"
)

// Identifier normalization is a fixed rule: strip everything that is not
// alphanumeric, so "US-6285999-B1" and "US6285999B1" normalize alike.
var nonAlphanumericPattern = regexp.MustCompile(`[^A-Za-z0-9]`)

// CleanPatentID normalizes a raw identifier from the input list.
func CleanPatentID(raw string) string {
	return nonAlphanumericPattern.ReplaceAllString(raw, "")
}

// PatentURL builds the document URL for a cleaned identifier: base path,
// jurisdiction prefix, identifier, kind-code suffix, locale segment. This
// is the fixed convention for one jurisdiction/kind-code family, not a
// general patent-number grammar.
func PatentURL(src model.SourceConfig, cleanedID string) string {
	return src.BaseURL + src.Jurisdiction + cleanedID + src.KindCode + "/" + src.Locale
}
