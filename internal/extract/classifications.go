package extract

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/akorchak/patentgrab/internal/document"
)

var classificationChain = []ListStrategy{
	selectorTexts("structural",
		`li[itemprop="classifications"] span[itemprop="Code"]`,
		`span[itemprop="Code"]`,
		`li.classification`,
	),
	metaContents("meta", `meta[name="DC.subject"]`),
	labelAdjacentList(),
	headingList("heading", classificationLabelPattern),
}

// Classifications extracts classification codes, discarding expander and
// label boilerplate ("View more", "Classifications", ...).
func Classifications(doc *document.Document) []string {
	values, ok := firstList(doc, classificationChain)
	if !ok {
		return nil
	}
	var kept []string
	for _, v := range values {
		if !classificationNoisePattern.MatchString(v) {
			kept = append(kept, v)
		}
	}
	return kept
}

// labelAdjacentList covers pages where no classification selector matches
// but a "Classifications:"/"CPC:" label sits next to a plain list or table.
func labelAdjacentList() ListStrategy {
	return ListStrategy{Name: "label-adjacent", Run: func(doc *document.Document) ([]string, bool) {
		label := doc.FindByText(classificationLabelPattern)
		if label == nil {
			return nil, false
		}
		for _, n := range document.SiblingsAfter(label) {
			if !document.NodeIs(n, "ul", "ol", "table") {
				continue
			}
			var values []string
			doc.FromNode(n).Find("li, td").Each(func(_ int, s *goquery.Selection) {
				if t := document.Text(s); t != "" {
					values = append(values, t)
				}
			})
			if len(values) > 0 {
				return values, true
			}
		}
		return nil, false
	}}
}
