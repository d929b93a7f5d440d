package extract

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akorchak/patentgrab/internal/document"
)

func parseDoc(t *testing.T, html string) *document.Document {
	t.Helper()
	doc, err := document.Parse(html)
	require.NoError(t, err)
	return doc
}
