// Package extract implements the field-extraction engine: one ordered
// fallback-strategy chain per bibliographic field, run against a parsed
// patent page. Chains short-circuit on the first attempt that produces
// non-empty content; a total miss yields the field's documented default
// and is never an error.
package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/akorchak/patentgrab/internal/document"
)

// A Strategy is a single attempt at locating one field inside a document.
// Strategies in a chain run in order, most standard markup first and most
// speculative last, stopping at the first hit.
type Strategy struct {
	Name string
	Run  func(doc *document.Document) (value string, ok bool)
}

// A ListStrategy extracts a multi-valued field. The winning strategy
// contributes every value it matched, in document order.
type ListStrategy struct {
	Name string
	Run  func(doc *document.Document) (values []string, ok bool)
}

// firstString runs a chain and returns the first non-empty value.
func firstString(doc *document.Document, chain []Strategy) (string, bool) {
	for _, st := range chain {
		v, ok := st.Run(doc)
		if !ok {
			continue
		}
		if v = strings.TrimSpace(v); v != "" {
			return v, true
		}
	}
	return "", false
}

// firstList runs a chain and returns the first non-empty value list, with
// blank entries dropped.
func firstList(doc *document.Document, chain []ListStrategy) ([]string, bool) {
	for _, st := range chain {
		values, ok := st.Run(doc)
		if !ok {
			continue
		}
		var kept []string
		for _, v := range values {
			if v = strings.TrimSpace(v); v != "" {
				kept = append(kept, v)
			}
		}
		if len(kept) > 0 {
			return kept, true
		}
	}
	return nil, false
}

// selectorText is the structural tier for single-valued fields: an ordered
// selector list resolved through Document.SelectOne.
func selectorText(name string, selectors ...string) Strategy {
	return Strategy{Name: name, Run: func(doc *document.Document) (string, bool) {
		sel := doc.SelectOne(selectors...)
		if sel == nil {
			return "", false
		}
		return document.Text(sel), true
	}}
}

// selectorTexts is the structural tier for multi-valued fields: the first
// selector with at least one non-empty match wins and returns ALL of its
// matches, not just the first.
func selectorTexts(name string, selectors ...string) ListStrategy {
	return ListStrategy{Name: name, Run: func(doc *document.Document) ([]string, bool) {
		for _, selector := range selectors {
			var values []string
			doc.SelectAll(selector).Each(func(_ int, s *goquery.Selection) {
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

// metaContent reads the content attribute of the first matching meta tag.
// Page-level metadata is the last structural resort before text recovery.
func metaContent(name string, selectors ...string) Strategy {
	return Strategy{Name: name, Run: func(doc *document.Document) (string, bool) {
		for _, selector := range selectors {
			var value string
			doc.SelectAll(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
				if c, ok := document.Attr(s, "content"); ok && strings.TrimSpace(c) != "" {
					value = strings.TrimSpace(c)
					return false
				}
				return true
			})
			if value != "" {
				return value, true
			}
		}
		return "", false
	}}
}

// metaContents reads every matching meta element's content attribute.
func metaContents(name string, selector string) ListStrategy {
	return ListStrategy{Name: name, Run: func(doc *document.Document) ([]string, bool) {
		var values []string
		doc.SelectAll(selector).Each(func(_ int, s *goquery.Selection) {
			if c, ok := document.Attr(s, "content"); ok {
				values = append(values, c)
			}
		})
		return values, len(values) > 0
	}}
}

// headingText is the heading-text tier: locate a label by pattern, walk the
// following siblings until the next heading, then pull valueRe out of the
// collected text. When valueRe finds nothing the raw collected text stands.
func headingText(name string, labelRe, valueRe *regexp.Regexp) Strategy {
	return Strategy{Name: name, Run: func(doc *document.Document) (string, bool) {
		collected, ok := collectAfterLabel(doc, labelRe)
		if !ok {
			return "", false
		}
		if valueRe != nil {
			if m := valueRe.FindString(collected); m != "" {
				return m, true
			}
		}
		return collected, true
	}}
}

// headingList is the heading-text tier for name lists: the collected text
// splits on comma or semicolon, empty fragments discarded.
func headingList(name string, labelRe *regexp.Regexp) ListStrategy {
	return ListStrategy{Name: name, Run: func(doc *document.Document) ([]string, bool) {
		collected, ok := collectAfterLabel(doc, labelRe)
		if !ok {
			return nil, false
		}
		return splitNames(collected), true
	}}
}

// collectAfterLabel gathers the text that belongs to a located label: the
// label's own text with the label itself removed (values are often inline,
// "Filed: 2001-01-02"), plus every sibling up to the next heading.
func collectAfterLabel(doc *document.Document, labelRe *regexp.Regexp) (string, bool) {
	label := doc.FindByText(labelRe)
	if label == nil {
		return "", false
	}
	var parts []string
	if own := strings.TrimSpace(labelRe.ReplaceAllString(document.Text(label), "")); own != "" {
		parts = append(parts, own)
	}
	for _, n := range document.SiblingsAfter(label) {
		if t := document.NodeText(n); t != "" {
			parts = append(parts, t)
		}
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, " "), true
}

// splitNames breaks "A, B; C" style text into individual names.
func splitNames(s string) []string {
	var names []string
	for _, frag := range nameSeparatorPattern.Split(s, -1) {
		if frag = strings.TrimSpace(frag); frag != "" {
			names = append(names, frag)
		}
	}
	return names
}
