package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgallion1/qaboard/internal/doc"
)

func parseHTML(t *testing.T, input string) *doc.Node {
	t.Helper()
	p := &HTMLParser{}
	root, err := p.Parse(strings.NewReader(input), "page.html")
	require.NoError(t, err)
	return root
}

func TestHTMLParser_Blocks(t *testing.T) {
	input := `<html><head><title>T</title><script>x()</script></head><body>` +
		`<h1>Hello</h1><p>Some <b>bold</b> text.</p>` +
		`<ul><li>one</li><li><p>two</p></li></ul>` +
		`<p><img src="a.png" width="320" height="240px" alt="A"></p>` +
		`<h5>deep</h5><nav>skip me</nav></body></html>`
	root := parseHTML(t, input)

	want := []doc.Kind{doc.KindHeading, doc.KindParagraph, doc.KindBulletList, doc.KindImage, doc.KindHeading}
	require.Equal(t, want, kinds(root.Content))

	img := root.Content[3]
	w, _ := img.IntAttr("width")
	h, _ := img.IntAttr("height")
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
	assert.Equal(t, "A", img.Attr("alt"))

	text := "# Hello\n\nSome bold text.\n\n- one\n- two\n\n### deep\n\n"
	assert.Equal(t, text, doc.Text(root))

	bold := root.Content[1].Content[1]
	assert.Equal(t, "bold", bold.Text)
	assert.Equal(t, []doc.Mark{{Type: "bold"}}, bold.Marks)
}

func TestHTMLParser_WhitespaceBetweenBlocks(t *testing.T) {
	root := parseHTML(t, "<body>\n  <p>a   b</p>\n  <p>\n    c\n  </p>\n  <div>  </div>\n</body>")
	require.Len(t, root.Content, 2)
	assert.Equal(t, "a b\n\nc\n\n", doc.Text(root))
}

func TestHTMLParser_BreaksAndFragments(t *testing.T) {
	root := parseHTML(t, "one<br>two <i>three</i>")
	assert.Equal(t, "one\ntwo three\n\n", doc.Text(root))
}

func TestHTMLParser_OrderedList(t *testing.T) {
	root := parseHTML(t, "<ol><li>first</li><li>second</li></ol>")
	require.Equal(t, doc.KindOrderedList, root.Content[0].Type)
	assert.Equal(t, "- first\n- second\n\n", doc.Text(root))
}

func TestHTMLParser_Pre(t *testing.T) {
	root := parseHTML(t, "<pre>line 1\nline 2</pre>")
	assert.Equal(t, "line 1\nline 2\n\n", doc.Text(root))
}

func TestPixels(t *testing.T) {
	tests := map[string]int{
		"320":   320,
		"240px": 240,
		" 99 ":  99,
		"12.6":  13,
		"50%":   0,
		"-4":    0,
		"":      0,
		"auto":  0,
	}
	for in, want := range tests {
		assert.Equal(t, want, pixels(in), "pixels(%q)", in)
	}
}

func TestCollapseSpace(t *testing.T) {
	tests := map[string]string{
		"":         "",
		"   ":      " ",
		"a  b":     "a b",
		" a\n\tb ": " a b ",
		"\nword":   " word",
	}
	for in, want := range tests {
		assert.Equal(t, want, collapseSpace(in), "collapseSpace(%q)", in)
	}
}
