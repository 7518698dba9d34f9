package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgallion1/qaboard/internal/doc"
)

func parseText(t *testing.T, input string) *doc.Node {
	t.Helper()
	p := &TextParser{}
	root, err := p.Parse(strings.NewReader(input), "notes.txt")
	require.NoError(t, err)
	return root
}

func TestTextParser_BasicParagraphSplitting(t *testing.T) {
	root := parseText(t, "First paragraph line one.\nFirst paragraph line two.\n\nSecond paragraph.\n\nThird paragraph.")

	assert.Equal(t, doc.KindDoc, root.Type)
	require.Len(t, root.Content, 3)
	assert.Equal(t, []doc.Kind{doc.KindText, doc.KindHardBreak, doc.KindText}, kinds(root.Content[0].Content))

	want := "First paragraph line one.\nFirst paragraph line two.\n\nSecond paragraph.\n\nThird paragraph.\n\n"
	assert.Equal(t, want, doc.Text(root))
}

func TestTextParser_EmptyInput(t *testing.T) {
	root := parseText(t, "")
	assert.Empty(t, root.Content)
	assert.Equal(t, "", doc.Text(root))
}

func TestTextParser_SingleLine(t *testing.T) {
	root := parseText(t, "Hello world")
	require.Len(t, root.Content, 1)
	assert.Equal(t, "Hello world\n\n", doc.Text(root))
}

func TestTextParser_MultipleBlankLines(t *testing.T) {
	// Consecutive blank lines do not produce empty paragraphs.
	root := parseText(t, "Para one.\n\n\n\nPara two.")
	assert.Len(t, root.Content, 2)
}

func TestTextParser_WhitespaceOnlyLines(t *testing.T) {
	root := parseText(t, "Para one.\n   \nPara two.")
	assert.Len(t, root.Content, 2)
}

func TestTextParser_CRLF(t *testing.T) {
	root := parseText(t, "a\r\nb\r\n\r\nc\r\n")
	assert.Equal(t, "a\nb\n\nc\n\n", doc.Text(root))
}

func TestForFile(t *testing.T) {
	tests := []struct {
		filename string
		wantErr  bool
	}{
		{"notes.txt", false},
		{"README.MD", false},
		{"notes.markdown", false},
		{"page.htm", false},
		{"report.docx", false},
		{"scan.pdf", false},
		{"rows.csv", false},
		{"image.png", true},
		{"noext", true},
	}
	for _, tt := range tests {
		p, err := ForFile(tt.filename)
		if tt.wantErr {
			assert.Error(t, err, tt.filename)
			assert.False(t, IsSupportedExtension(tt.filename), tt.filename)
			continue
		}
		assert.NoError(t, err, tt.filename)
		assert.NotNil(t, p, tt.filename)
		assert.True(t, IsSupportedExtension(tt.filename), tt.filename)
	}

	p, err := ForFile("scan.pdf", Options{PDFFallbackPdftotext: true})
	require.NoError(t, err)
	require.IsType(t, &PDFParser{}, p)
	assert.True(t, p.(*PDFParser).FallbackPdftotext)
}
