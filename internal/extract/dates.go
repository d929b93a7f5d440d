package extract

import "github.com/akorchak/patentgrab/internal/document"

// Dates are opaque strings in whatever format the source renders; no
// calendar parsing or normalization happens anywhere in the engine.

var filingDateChain = []Strategy{
	selectorText("structural",
		`dd[itemprop="filingDate"] time`,
		`time[itemprop="filingDate"]`,
		`dd[itemprop="filingDate"]`,
	),
	headingText("heading", filingLabelPattern, datePattern),
}

var publicationDateChain = []Strategy{
	selectorText("structural",
		`dd[itemprop="publicationDate"] time`,
		`time[itemprop="publicationDate"]`,
		`dd[itemprop="publicationDate"]`,
	),
	metaContent("meta", `meta[name="DC.date"]`),
	headingText("heading", publicationLabelPattern, datePattern),
}

// FilingDate extracts the filing date as seen in the source; miss yields "".
func FilingDate(doc *document.Document) string {
	v, _ := firstString(doc, filingDateChain)
	return v
}

// PublicationDate extracts the publication date as seen in the source.
func PublicationDate(doc *document.Document) string {
	v, _ := firstString(doc, publicationDateChain)
	return v
}
