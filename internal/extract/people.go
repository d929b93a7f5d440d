package extract

import "github.com/akorchak/patentgrab/internal/document"

// Inventor and assignee chains share one shape: itemprop markup first (the
// nested name span on newer pages, the bare element on older ones), page
// metadata next, and label-text recovery last.

var inventorChain = []ListStrategy{
	selectorTexts("structural",
		`dd[itemprop="inventor"] span[itemprop="name"]`,
		`dd[itemprop="inventor"]`,
		`[itemprop="inventor"]`,
	),
	metaContents("meta", `meta[name="DC.contributor"]`),
	headingList("heading", inventorLabelPattern),
}

var assigneeChain = []ListStrategy{
	selectorTexts("structural",
		`dd[itemprop="assignee"] span[itemprop="name"]`,
		`dd[itemprop="assignee"]`,
		`[itemprop="assigneeCurrent"]`,
		`[itemprop="assignee"]`,
	),
	metaContents("meta", `meta[name="DC.publisher"]`),
	headingList("heading", assigneeLabelPattern),
}

// Inventors extracts inventor names in document order; a miss yields nil.
func Inventors(doc *document.Document) []string {
	names, _ := firstList(doc, inventorChain)
	return names
}

// Assignees extracts assignee names in document order; a miss yields nil.
func Assignees(doc *document.Document) []string {
	names, _ := firstList(doc, assigneeChain)
	return names
}
