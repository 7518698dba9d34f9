package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgallion1/qaboard/internal/doc"
)

func parseCSV(t *testing.T, input string) *doc.Node {
	t.Helper()
	p := &CSVParser{}
	root, err := p.Parse(strings.NewReader(input), "questions.csv")
	require.NoError(t, err)
	return root
}

func TestCSVParser_RowsBecomeItems(t *testing.T) {
	root := parseCSV(t, "title,topic\nWhat is RAG?,ai-tech\nExcel macros,data-analysis\n")
	want := "title, topic\n\n- title: What is RAG?, topic: ai-tech\n- title: Excel macros, topic: data-analysis\n\n"
	assert.Equal(t, want, doc.Text(root))
}

func TestCSVParser_RaggedRows(t *testing.T) {
	root := parseCSV(t, "a\n1,extra\n")
	assert.Equal(t, "a\n\n- a: 1, extra\n\n", doc.Text(root))
}

func TestCSVParser_Empty(t *testing.T) {
	root := parseCSV(t, "")
	assert.Empty(t, root.Content)
}

func TestPageLines(t *testing.T) {
	assert.Equal(t, []string{"  first", "second"}, pageLines("  first  \n\n   \nsecond\r\n"))
}
