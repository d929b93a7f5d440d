package extract

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/akorchak/patentgrab/internal/document"
	"github.com/akorchak/patentgrab/internal/model"
)

var claimsContainerSelectors = []string{
	`section[itemprop="claims"]`,
	`div.claims`,
	`#claims`,
	`[itemprop="claims"]`,
}

// Per-item selectors inside a located container: one claim per element.
var claimItemSelectors = []string{
	`div.claim`,
	`li.claim`,
	`claim`,
}

// Claims extracts the ordered claim list. Inside a located container,
// per-item selectors run first (each item's own "<n>. " prefix recovers the
// number, position is the default); flat text falls back to boundary
// segmentation. Without a container, a "Claims" heading plus its sibling
// text gets the same segmentation. A total miss yields nil.
func Claims(doc *document.Document) []model.Claim {
	container := doc.SelectOne(claimsContainerSelectors...)
	if container == nil {
		label := doc.FindByText(claimsLabelPattern)
		if label == nil {
			return nil
		}
		var parts []string
		for _, n := range document.SiblingsAfter(label) {
			if t := document.NodeText(n); t != "" {
				parts = append(parts, t)
			}
		}
		return segmentClaims(strings.Join(parts, "\n"))
	}

	for _, selector := range claimItemSelectors {
		items := container.Find(selector)
		if items.Length() == 0 {
			continue
		}
		var claims []model.Claim
		items.Each(func(i int, s *goquery.Selection) {
			if text := document.Text(s); text != "" {
				claims = append(claims, claimFromItem(i+1, text))
			}
		})
		if len(claims) > 0 {
			return claims
		}
	}
	return segmentClaims(document.Text(container))
}

// claimFromItem builds a claim from one matched element. When the item text
// carries its own "<n>. " numbering, that number wins and the prefix is
// stripped; otherwise the positional index stands.
func claimFromItem(position int, text string) model.Claim {
	number := position
	if m := claimNumberPattern.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			number = n
			text = strings.TrimSpace(text[len(m[0]):])
		}
	}
	return newClaim(number, text)
}

// segmentClaims recovers claims from flat text using "digits, period,
// whitespace" boundaries. RE2 has no lookahead, so the text is sliced
// between consecutive boundary matches instead; anything before the first
// boundary is preamble and is dropped.
func segmentClaims(raw string) []model.Claim {
	bounds := claimBoundaryPattern.FindAllStringSubmatchIndex(raw, -1)
	var claims []model.Claim
	for i, loc := range bounds {
		end := len(raw)
		if i+1 < len(bounds) {
			end = bounds[i+1][0]
		}
		text := strings.TrimSpace(raw[loc[1]:end])
		if text == "" {
			continue
		}
		number, err := strconv.Atoi(raw[loc[2]:loc[3]])
		if err != nil {
			number = i + 1
		}
		claims = append(claims, newClaim(number, text))
	}
	return claims
}

// newClaim runs dependency detection: a claim is dependent iff its text
// references another claim by number, and the first reference wins.
func newClaim(number int, text string) model.Claim {
	c := model.Claim{Number: number, Text: text}
	if m := claimDependencyPattern.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			c.IsDependent = true
			c.DependsOn = &n
		}
	}
	return c
}
