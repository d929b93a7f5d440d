package extract

import "regexp"

// These patterns ARE the fallback specification: when structural selectors
// fail, they decide what counts as a match. Keep them named and covered by
// tests; never inline ad hoc variants.
var (
	// Title cleanup for values recovered from the page <title> or meta
	// tags: a trailing separator plus the site name, and a leading patent
	// number prefix.
	siteSuffixPattern   = regexp.MustCompile(`\s*[-–—|]\s*Google Patents\s*$`)
	numberPrefixPattern = regexp.MustCompile(`^[A-Z]{2}[0-9][0-9,]*[A-Z]?[0-9]*\s*[-–—:]\s*`)

	// Generic-heuristic title tier rejects boilerplate headings.
	boilerplateHeadingPattern = regexp.MustCompile(`(?i)patent`)

	abstractLabelPattern = regexp.MustCompile(`(?i)^\s*Abstract\b`)

	inventorLabelPattern = regexp.MustCompile(`(?i)Inventors?:`)
	assigneeLabelPattern = regexp.MustCompile(`(?i)(?:Assignees?|Applicants?):`)
	nameSeparatorPattern = regexp.MustCompile(`[,;]`)

	filingLabelPattern      = regexp.MustCompile(`(?i)Filed:|Filing date:`)
	publicationLabelPattern = regexp.MustCompile(`(?i)Publication date:|Date of Patent:|Published:`)
	// Dates stay opaque strings; this only locates them, it never parses.
	datePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}|[A-Z][a-z]+\.? \d{1,2}, \d{4}|\d{1,2} [A-Z][a-z]+ \d{4}`)

	classificationLabelPattern = regexp.MustCompile(`(?i)Classifications?:|CPC:`)
	classificationNoisePattern = regexp.MustCompile(`(?i)^(view|more|classification)`)

	descriptionLabelPattern = regexp.MustCompile(`(?i)^\s*Description\s*$`)
	claimsLabelPattern      = regexp.MustCompile(`(?i)^\s*Claims?\s*(\(\d+\))?\s*$`)

	// Claim numbering: a leading "<n>. " on an item, and the same "digits,
	// period, whitespace" shape as a segmentation boundary in flat text.
	claimNumberPattern   = regexp.MustCompile(`^(\d+)\.\s+`)
	claimBoundaryPattern = regexp.MustCompile(`(\d+)\.\s+`)
	// A claim is dependent iff its text references another claim by number;
	// the first referenced number wins.
	claimDependencyPattern = regexp.MustCompile(`(?i)claim\s+(\d+)`)

	citationsLabelPattern = regexp.MustCompile(`(?i)Citations|References|Cited`)
	// A patent-identifier-shaped token: two letters + digits + optional
	// letter + digits, or a bare 5-plus-digit number. Deliberately loose;
	// behavior parity over accuracy.
	citationIDPattern   = regexp.MustCompile(`[A-Za-z]{2}\d+[A-Za-z]?\d*|\d{5,}`)
	citationLeadPattern = regexp.MustCompile(`^[\s\p{Pd}:;,.]+`)
)
