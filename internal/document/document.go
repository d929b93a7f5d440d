// Package document wraps one parsed HTML page and exposes the structural
// and text-pattern queries the field extractors are built on. The source
// site has no stable markup contract, so every query here is defensive:
// selectors are tried in order, text is always trimmed and collapsed, and
// absence is an ordinary result, never an error.
package document

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Document is a read-only view over one parsed page. It is never mutated
// after construction and is not shared across records.
type Document struct {
	doc *goquery.Document
}

// Parse builds a Document from raw HTML.
func Parse(htmlContent string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Document{doc: doc}, nil
}

// SelectOne tries each selector in order and stops at the first that yields
// at least one element with non-empty text, returning that element. Nil
// means every selector missed.
func (d *Document) SelectOne(selectors ...string) *goquery.Selection {
	for _, selector := range selectors {
		var match *goquery.Selection
		d.doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			if Text(s) != "" {
				match = s
				return false
			}
			return true
		})
		if match != nil {
			return match
		}
	}
	return nil
}

// SelectAll returns every element matching the selector, in document order.
func (d *Document) SelectAll(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}

// FindByText returns the first element whose own visible text (direct text
// children, not descendants) matches the pattern. This is the entry point
// for heading-based recovery when structural selectors fail entirely.
func (d *Document) FindByText(re *regexp.Regexp) *goquery.Selection {
	var found *html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			}
			if re.MatchString(ownText(n)) {
				found = n
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, root := range d.doc.Nodes {
		walk(root)
	}
	if found == nil {
		return nil
	}
	return d.doc.FindNodes(found)
}

// FromNode wraps a raw node back into a document-bound selection so it can
// be queried further.
func (d *Document) FromNode(n *html.Node) *goquery.Selection {
	return d.doc.FindNodes(n)
}

// Text returns the selection's text, trimmed and with internal whitespace
// collapsed to single spaces.
func Text(s *goquery.Selection) string {
	if s == nil {
		return ""
	}
	return collapse(s.Text())
}

// Attr returns an attribute value, reporting whether it was present.
func Attr(s *goquery.Selection, name string) (string, bool) {
	if s == nil {
		return "", false
	}
	return s.Attr(name)
}

// SiblingsAfter returns the element siblings following sel, stopping before
// the next heading-rank node. This is the section-boundary heuristic: a
// heading ends the walk.
func SiblingsAfter(sel *goquery.Selection) []*html.Node {
	if sel == nil || len(sel.Nodes) == 0 {
		return nil
	}
	var out []*html.Node
	for n := sel.Nodes[0].NextSibling; n != nil; n = n.NextSibling {
		if n.Type != html.ElementNode {
			continue
		}
		if IsHeading(n) {
			break
		}
		out = append(out, n)
	}
	return out
}

// IsHeading reports whether the node is at heading rank: h1-h6, plus dt
// because bibliographic labels on patent pages are definition-list terms.
func IsHeading(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.Data {
	case "h1", "h2", "h3", "h4", "h5", "h6", "dt":
		return true
	}
	return false
}

// NodeIs reports whether the node is one of the given element types.
func NodeIs(n *html.Node, tags ...string) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, tag := range tags {
		if n.Data == tag {
			return true
		}
	}
	return false
}

// NodeText extracts the visible text of a node's subtree, skipping
// script/style content, trimmed and collapsed.
func NodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			}
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return collapse(b.String())
}

// ownText is the text of the node's direct text children only.
func ownText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
			b.WriteString(" ")
		}
	}
	return collapse(b.String())
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
