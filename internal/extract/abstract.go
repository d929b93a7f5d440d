package extract

import (
	"strings"

	"github.com/akorchak/patentgrab/internal/document"
)

var abstractChain = []Strategy{
	selectorText("structural", `div.abstract`, `section[itemprop="abstract"]`, `abstract`, `[itemprop="abstract"]`),
	metaDescription(),
	headingText("heading", abstractLabelPattern, nil),
}

// Abstract extracts the abstract text; a total miss yields "".
func Abstract(doc *document.Document) string {
	v, _ := firstString(doc, abstractChain)
	return v
}

// metaDescription falls back to the page meta description. Those usually
// read "Title: Abstract", so everything after the first colon is kept when
// a colon is present.
func metaDescription() Strategy {
	meta := metaContent("meta-description", `meta[name="description"]`)
	return Strategy{Name: meta.Name, Run: func(doc *document.Document) (string, bool) {
		content, ok := meta.Run(doc)
		if !ok {
			return "", false
		}
		if i := strings.Index(content, ":"); i >= 0 {
			return strings.TrimSpace(content[i+1:]), true
		}
		return content, true
	}}
}
