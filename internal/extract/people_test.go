package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInventorsStructuralNestedSpans(t *testing.T) {
	doc := parseDoc(t, `<html><body><dl>
		<dd itemprop="inventor"><span itemprop="name">Jane Doe</span></dd>
		<dd itemprop="inventor"><span itemprop="name">John Roe</span></dd>
	</dl></body></html>`)

	assert.Equal(t, []string{"Jane Doe", "John Roe"}, Inventors(doc))
}

func TestInventorsFromMeta(t *testing.T) {
	doc := parseDoc(t, `<html><head>
		<meta name="DC.contributor" content="Jane Doe">
		<meta name="DC.contributor" content="John Roe">
	</head></html>`)

	assert.Equal(t, []string{"Jane Doe", "John Roe"}, Inventors(doc))
}

func TestInventorsHeadingRecoverySplitsNames(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<p>Inventors: Jane Doe; John Roe, Mary Major</p>
	</body></html>`)

	assert.Equal(t, []string{"Jane Doe", "John Roe", "Mary Major"}, Inventors(doc))
}

func TestInventorsMissYieldsNil(t *testing.T) {
	doc := parseDoc(t, `<html><body><p>nothing here</p></body></html>`)

	assert.Nil(t, Inventors(doc))
}

func TestAssigneesStructural(t *testing.T) {
	doc := parseDoc(t, `<html><body><dl>
		<dd itemprop="assignee"><span itemprop="name">Acme Corp</span></dd>
	</dl></body></html>`)

	assert.Equal(t, []string{"Acme Corp"}, Assignees(doc))
}

func TestAssigneesCurrentItemprop(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<span itemprop="assigneeCurrent">Acme Corp</span>
	</body></html>`)

	assert.Equal(t, []string{"Acme Corp"}, Assignees(doc))
}

func TestAssigneesHeadingRecovery(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<p>Applicant: Acme Corp</p>
	</body></html>`)

	assert.Equal(t, []string{"Acme Corp"}, Assignees(doc))
}
