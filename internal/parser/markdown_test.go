package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgallion1/qaboard/internal/doc"
)

func parseMarkdown(t *testing.T, input string) *doc.Node {
	t.Helper()
	p := &MarkdownParser{}
	root, err := p.Parse(strings.NewReader(input), "doc.md")
	require.NoError(t, err)
	return root
}

func kinds(nodes []*doc.Node) []doc.Kind {
	out := make([]doc.Kind, len(nodes))
	for i, n := range nodes {
		out[i] = n.Type
	}
	return out
}

func TestMarkdownParser_Blocks(t *testing.T) {
	input := `# Title

Intro text.

## Section A

Some *emphasis* and **bold** text.

#### Deep heading

- one
- two

1. first
2. second
`
	root := parseMarkdown(t, input)

	want := []doc.Kind{
		doc.KindHeading, doc.KindParagraph, doc.KindHeading, doc.KindParagraph,
		doc.KindHeading, doc.KindBulletList, doc.KindOrderedList,
	}
	require.Equal(t, want, kinds(root.Content))
	assert.Equal(t, 3, root.Content[4].HeadingLevel(), "h4 clamps to 3")

	text := "# Title\n\nIntro text.\n\n## Section A\n\nSome emphasis and bold text.\n\n### Deep heading\n\n- one\n- two\n\n- first\n- second\n\n"
	assert.Equal(t, text, doc.Text(root))
}

func TestMarkdownParser_Marks(t *testing.T) {
	root := parseMarkdown(t, "Some *emphasis*, **bold**, `code` and [a link](https://example.com).")
	para := root.Content[0]

	found := map[string]string{}
	for _, n := range para.Content {
		for _, m := range n.Marks {
			found[m.Type] = n.Text
			if m.Type == "link" {
				assert.Equal(t, "https://example.com", m.Attrs["href"])
			}
		}
	}
	assert.Equal(t, map[string]string{
		"italic": "emphasis",
		"bold":   "bold",
		"code":   "code",
		"link":   "a link",
	}, found)
}

func TestMarkdownParser_CodeBlock(t *testing.T) {
	root := parseMarkdown(t, "## Endpoints\n\n```\nGET /api/users\nPOST /api/users\n```\n\nMore text after code.\n")
	want := "## Endpoints\n\nGET /api/users\nPOST /api/users\n\nMore text after code.\n\n"
	assert.Equal(t, want, doc.Text(root))
}

func TestMarkdownParser_LineBreaks(t *testing.T) {
	root := parseMarkdown(t, "line one\nline two")
	assert.Equal(t, "line one\nline two\n\n", doc.Text(root), "soft break kept as newline")
}

func TestMarkdownParser_Images(t *testing.T) {
	root := parseMarkdown(t, "before ![alt text](https://example.com/a.png \"Caption\") after")

	require.Equal(t, []doc.Kind{doc.KindParagraph, doc.KindImage, doc.KindParagraph}, kinds(root.Content))
	img := root.Content[1]
	assert.Equal(t, "https://example.com/a.png", img.Attr("src"))
	assert.Equal(t, "alt text", img.Attr("alt"))
	assert.Equal(t, "Caption", img.Attr("title"))
	_, ok := img.IntAttr("width")
	assert.False(t, ok, "no width expected")
	assert.Equal(t, "before\n\nafter\n\n", doc.Text(root))
}

func TestMarkdownParser_DroppedAndUnwrapped(t *testing.T) {
	root := parseMarkdown(t, "a\n\n---\n\n> quoted\n\n<div>raw</div>\n\nb\n")
	assert.Equal(t, "a\n\nquoted\n\nb\n\n", doc.Text(root))
}

func TestMarkdownParser_OrderedStart(t *testing.T) {
	root := parseMarkdown(t, "3. c\n4. d\n")
	start, ok := root.Content[0].IntAttr("start")
	require.True(t, ok)
	assert.Equal(t, 3, start)
}

func TestMarkdownParser_EmptyInput(t *testing.T) {
	root := parseMarkdown(t, "")
	assert.Empty(t, root.Content)
}
