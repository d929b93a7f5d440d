package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassificationsStructural(t *testing.T) {
	doc := parseDoc(t, `<html><body><ul>
		<li itemprop="classifications"><span itemprop="Code">F16B 1/00</span></li>
		<li itemprop="classifications"><span itemprop="Code">F16D 3/00</span></li>
	</ul></body></html>`)

	assert.Equal(t, []string{"F16B 1/00", "F16D 3/00"}, Classifications(doc))
}

func TestClassificationsFiltersExpanderNoise(t *testing.T) {
	doc := parseDoc(t, `<html><body><ul>
		<li class="classification">F16B 1/00</li>
		<li class="classification">View more</li>
		<li class="classification">F16D 3/00</li>
	</ul></body></html>`)

	assert.Equal(t, []string{"F16B 1/00", "F16D 3/00"}, Classifications(doc))
}

func TestClassificationsFromMeta(t *testing.T) {
	doc := parseDoc(t, `<html><head>
		<meta name="DC.subject" content="F16B 1/00">
	</head></html>`)

	assert.Equal(t, []string{"F16B 1/00"}, Classifications(doc))
}

func TestClassificationsLabelAdjacentList(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<h3>Classifications:</h3>
		<ul><li>F16B 1/00</li><li>F16D 3/00</li></ul>
	</body></html>`)

	assert.Equal(t, []string{"F16B 1/00", "F16D 3/00"}, Classifications(doc))
}

func TestClassificationsHeadingRecovery(t *testing.T) {
	doc := parseDoc(t, `<html><body>
		<p>CPC: F16B 1/00; F16D 3/00</p>
	</body></html>`)

	assert.Equal(t, []string{"F16B 1/00", "F16D 3/00"}, Classifications(doc))
}

func TestClassificationsMissYieldsNil(t *testing.T) {
	doc := parseDoc(t, `<html><body><p>nothing here</p></body></html>`)

	assert.Nil(t, Classifications(doc))
}
