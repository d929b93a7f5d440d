package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/akorchak/patentgrab/internal/document"
)

var descriptionContainerSelectors = []string{
	`section[itemprop="description"]`,
	`div.description`,
	`#description`,
	`[itemprop="description"]`,
}

// Paragraph-level children tried inside a located container, most explicit
// markup first.
var descriptionParagraphSelectors = []string{
	`div.description-paragraph`,
	`.description-line`,
	`p`,
}

// Description extracts the description with paragraphs separated by a blank
// line. Once a container is located, explicit paragraph children are
// preferred; without any, the container's whole text stands as one block.
// A total miss yields "".
func Description(doc *document.Document) string {
	if container := doc.SelectOne(descriptionContainerSelectors...); container != nil {
		return paragraphsOf(container)
	}

	// Heading recovery: the sibling blocks after a "Description" heading
	// are the paragraphs.
	label := doc.FindByText(descriptionLabelPattern)
	if label == nil {
		return ""
	}
	var parts []string
	for _, n := range document.SiblingsAfter(label) {
		if t := document.NodeText(n); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, "\n\n")
}

func paragraphsOf(container *goquery.Selection) string {
	for _, selector := range descriptionParagraphSelectors {
		var parts []string
		container.Find(selector).Each(func(_ int, s *goquery.Selection) {
			if t := document.Text(s); t != "" {
				parts = append(parts, t)
			}
		})
		if len(parts) > 0 {
			return strings.Join(parts, "\n\n")
		}
	}
	return document.Text(container)
}
