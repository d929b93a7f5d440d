package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/akorchak/patentgrab/internal/document"
	"github.com/akorchak/patentgrab/internal/model"
)

// Citation rows read the identifier and title from class-qualified cells,
// then fixed positions. List items fall back to token pattern matching.
var citationRowSelectors = []string{
	`tr.citation`,
	`tr[itemprop="backwardReferences"]`,
	`table.citations tr`,
}

var citationItemSelectors = []string{
	`li.citation`,
	`ul.citations li`,
}

// Citations extracts cited references. A total miss yields nil.
func Citations(doc *document.Document) []model.Citation {
	for _, selector := range citationRowSelectors {
		rows := doc.SelectAll(selector)
		if rows.Length() == 0 {
			continue
		}
		var cites []model.Citation
		rows.Each(func(_ int, row *goquery.Selection) {
			if c, ok := citationFromRow(row); ok {
				cites = append(cites, c)
			}
		})
		if len(cites) > 0 {
			return cites
		}
	}

	for _, selector := range citationItemSelectors {
		items := doc.SelectAll(selector)
		if items.Length() == 0 {
			continue
		}
		var cites []model.Citation
		items.Each(func(_ int, s *goquery.Selection) {
			if c, ok := citationFromText(document.Text(s)); ok {
				cites = append(cites, c)
			}
		})
		if len(cites) > 0 {
			return cites
		}
	}

	// Heading recovery: a citations/references heading followed by a list.
	label := doc.FindByText(citationsLabelPattern)
	if label == nil {
		return nil
	}
	for _, n := range document.SiblingsAfter(label) {
		if !document.NodeIs(n, "ul", "ol") {
			continue
		}
		var cites []model.Citation
		doc.FromNode(n).Find("li").Each(func(_ int, s *goquery.Selection) {
			if c, ok := citationFromText(document.Text(s)); ok {
				cites = append(cites, c)
			}
		})
		if len(cites) > 0 {
			return cites
		}
	}
	return nil
}

// citationFromRow reads one table row: class-qualified cells first, then
// the first two cells, then itemprop spans. Single-cell rows degrade to
// flat-text splitting.
func citationFromRow(row *goquery.Selection) (model.Citation, bool) {
	id := document.Text(row.Find(`td.patent-id`))
	title := document.Text(row.Find(`td.patent-title`))

	if id == "" && title == "" {
		cells := row.Find("td")
		switch {
		case cells.Length() >= 2:
			id = document.Text(cells.Eq(0))
			title = document.Text(cells.Eq(1))
		case cells.Length() == 1:
			return citationFromText(document.Text(cells.Eq(0)))
		default:
			id = document.Text(row.Find(`span[itemprop="publicationNumber"]`))
			title = document.Text(row.Find(`span[itemprop="title"]`))
		}
	}

	if id == "" && title == "" {
		return model.Citation{}, false
	}
	return model.Citation{ID: id, Title: title}, true
}

// citationFromText splits a flat citation line on the first
// patent-identifier-shaped token: the token becomes the id and whatever
// follows it, minus leading punctuation, becomes the title. Without a
// token the whole text is the title and the id stays empty.
func citationFromText(text string) (model.Citation, bool) {
	if text == "" {
		return model.Citation{}, false
	}
	loc := citationIDPattern.FindStringIndex(text)
	if loc == nil {
		return model.Citation{Title: text}, true
	}
	title := citationLeadPattern.ReplaceAllString(text[loc[1]:], "")
	return model.Citation{
		ID:    text[loc[0]:loc[1]],
		Title: strings.TrimSpace(title),
	}, true
}
