package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/akorchak/patentgrab/internal/document"
	"github.com/akorchak/patentgrab/internal/model"
)

// titleChain: structural selectors, then page metadata, then the page
// <title> (both cleaned of site branding), then the generic heading scan.
var titleChain = []Strategy{
	selectorText("structural", `h1[itemprop="title"]`, `h1.title`, `span[itemprop="title"]`, `h1#title`),
	cleaned(metaContent("meta", `meta[name="DC.title"]`, `meta[property="og:title"]`)),
	cleaned(selectorText("page-title", "title")),
	genericHeading(),
}

// Title extracts the patent title. It never returns "": a total miss yields
// the sentinel.
func Title(doc *document.Document) string {
	if v, ok := firstString(doc, titleChain); ok {
		return v
	}
	return model.TitleNotFound
}

// cleaned wraps a strategy whose source is page-level metadata rather than
// a dedicated title element, stripping site branding and number prefixes.
func cleaned(st Strategy) Strategy {
	return Strategy{Name: st.Name, Run: func(doc *document.Document) (string, bool) {
		v, ok := st.Run(doc)
		if !ok {
			return "", false
		}
		return cleanTitle(v), true
	}}
}

func cleanTitle(s string) string {
	s = siteSuffixPattern.ReplaceAllString(s, "")
	s = numberPrefixPattern.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// genericHeading is the last-resort tier: the first heading long enough to
// be a real title and free of patent boilerplate.
func genericHeading() Strategy {
	return Strategy{Name: "generic-heading", Run: func(doc *document.Document) (string, bool) {
		var title string
		doc.SelectAll("h1, h2, h3, h4, h5, h6").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			t := document.Text(s)
			if len(t) > 10 && !boilerplateHeadingPattern.MatchString(t) {
				title = t
				return false
			}
			return true
		})
		return title, title != ""
	}}
}
