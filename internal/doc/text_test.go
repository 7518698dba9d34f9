package doc

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *Node {
	t.Helper()
	n, err := Parse([]byte(src))
	require.NoError(t, err)
	return n
}

func TestToText_NilAndStrings(t *testing.T) {
	assert.Equal(t, "", ToText(nil))
	assert.Equal(t, "", ToText(""))
	assert.Equal(t, "plain text", ToText("plain text"))
	assert.Equal(t, "# not a heading", ToText("# not a heading"))
	assert.Equal(t, "", ToText((*Node)(nil)))
	assert.Equal(t, "", ToText(42))
}

func TestText_Paragraph(t *testing.T) {
	n := mustParse(t, `{"type":"doc","content":[{"type":"paragraph","content":[{"type":"text","text":"Hello"}]}]}`)
	assert.Equal(t, "Hello\n\n", Text(n))
}

func TestText_Heading(t *testing.T) {
	n := mustParse(t, `{"type":"doc","content":[{"type":"heading","attrs":{"level":2},"content":[{"type":"text","text":"Title"}]}]}`)
	assert.Equal(t, "## Title\n\n", Text(n))
}

func TestText_HeadingLevelFallback(t *testing.T) {
	tests := []struct {
		name  string
		attrs map[string]any
		want  string
	}{
		{"absent", nil, "# T\n\n"},
		{"three", map[string]any{"level": 3}, "### T\n\n"},
		{"float", map[string]any{"level": float64(2)}, "## T\n\n"},
		{"too deep", map[string]any{"level": 6}, "# T\n\n"},
		{"zero", map[string]any{"level": 0}, "# T\n\n"},
		{"garbage", map[string]any{"level": "x"}, "# T\n\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Node{Type: KindHeading, Attrs: tt.attrs, Content: []*Node{TextNode("T")}}
			assert.Equal(t, tt.want, Text(New(h)))
		})
	}
}

func TestText_BulletList(t *testing.T) {
	n := mustParse(t, `{"type":"doc","content":[{"type":"bulletList","content":[
		{"type":"listItem","content":[{"type":"text","text":"one"}]},
		{"type":"listItem","content":[{"type":"text","text":"two"}]}]}]}`)
	assert.Equal(t, "- one\n- two\n\n", Text(n))
}

func TestText_OrderedListHasNoNumbers(t *testing.T) {
	n := New(OrderedList(
		ListItem(Paragraph(TextNode("first"))),
		ListItem(Paragraph(TextNode("second"))),
	))
	assert.Equal(t, "- first\n- second\n\n", Text(n))
}

func TestText_NestedLists(t *testing.T) {
	n := New(BulletList(
		ListItem(
			Paragraph(TextNode("outer")),
			BulletList(ListItem(Paragraph(TextNode("inner")))),
		),
	))
	// The inner list's text is trimmed into the outer item.
	assert.Equal(t, "- outer\n\n- inner\n\n", Text(n))
}

func TestText_HardBreaksInsideParagraph(t *testing.T) {
	n := New(Paragraph(TextNode("line one"), HardBreak(), TextNode("line two")))
	assert.Equal(t, "line one\nline two\n\n", Text(n))
}

func TestText_EmptyDocument(t *testing.T) {
	assert.Equal(t, "", Text(&Node{Type: KindDoc}))
	assert.Equal(t, "", Text(New()))
	assert.Equal(t, "", Text(nil))
}

func TestText_BareBlockListStillProjects(t *testing.T) {
	n := &Node{Type: "fragment", Content: []*Node{Paragraph(TextNode("a"))}}
	assert.Equal(t, "a\n\n", Text(n))
}

func TestText_UnknownKindsUnwrap(t *testing.T) {
	n := New(
		&Node{Type: "blockquote", Content: []*Node{Paragraph(TextNode("quoted"))}},
		&Node{Type: "youtube", Attrs: map[string]any{"src": "https://youtu.be/x"}},
		Image("https://example.com/a.png", 100, 50),
	)
	assert.Equal(t, "quoted\n\n", Text(n))
}

func TestText_MalformedNodesContributeNothing(t *testing.T) {
	n := New(
		&Node{Type: KindParagraph},
		&Node{Type: KindHeading, Attrs: map[string]any{"level": 2}},
		&Node{Type: KindListItem},
		&Node{Type: KindText},
		nil,
		Paragraph(TextNode("kept")),
	)
	assert.Equal(t, "kept\n\n", Text(n))
}

func TestText_EmptyContentStillWraps(t *testing.T) {
	n := mustParse(t, `{"type":"doc","content":[{"type":"paragraph","content":[]}]}`)
	assert.Equal(t, "\n\n", Text(n))
}

func TestText_EmptyListStillEndsLine(t *testing.T) {
	n := mustParse(t, `{"type":"doc","content":[{"type":"bulletList"},{"type":"paragraph","content":[{"type":"text","text":"x"}]}]}`)
	assert.Equal(t, "\nx\n\n", Text(n))

	n = mustParse(t, `{"type":"doc","content":[{"type":"orderedList","content":[]}]}`)
	assert.Equal(t, "\n", Text(n))
}

func TestText_DeepNestingTerminates(t *testing.T) {
	leaf := Paragraph(TextNode("deep"))
	node := leaf
	for range 2000 {
		node = BulletList(ListItem(node))
	}
	out := Text(New(node))
	assert.True(t, strings.HasPrefix(out, "- "))
	assert.Contains(t, out, "deep")
}

func TestToText_JSONShapes(t *testing.T) {
	raw := json.RawMessage(`{"type":"doc","content":[{"type":"paragraph","content":[{"type":"text","text":"Hi"}]}]}`)
	assert.Equal(t, "Hi\n\n", ToText(raw))
	assert.Equal(t, "Hi\n\n", ToText([]byte(raw)))
	assert.Equal(t, "quoted", ToText(json.RawMessage(`"quoted"`)))
	assert.Equal(t, "", ToText(json.RawMessage(`null`)))
	assert.Equal(t, "", ToText(json.RawMessage(`[1,2]`)))

	m := map[string]any{"type": "doc", "content": []any{
		map[string]any{"type": "paragraph", "content": []any{
			map[string]any{"type": "text", "text": "map"},
		}},
	}}
	assert.Equal(t, "map\n\n", ToText(m))
}

func TestContent_RoundTripShapes(t *testing.T) {
	var fields struct {
		A Content `json:"a"`
		B Content `json:"b"`
		C Content `json:"c"`
	}
	err := json.Unmarshal([]byte(`{"a":"raw","b":{"type":"doc","content":[]},"c":null}`), &fields)
	require.NoError(t, err)

	assert.Equal(t, "raw", fields.A.Raw)
	require.NotNil(t, fields.B.Doc)
	assert.Equal(t, KindDoc, fields.B.Doc.Type)
	assert.True(t, fields.C.IsZero())

	out, err := json.Marshal(fields)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"raw","b":{"type":"doc","content":[]},"c":null}`, string(out))
}

func TestNode_EmptyContentSurvivesRoundTrip(t *testing.T) {
	n := mustParse(t, `{"type":"doc","content":[{"type":"paragraph","content":[]},{"type":"text","text":"x"}]}`)

	out, err := json.Marshal(n)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"doc","content":[{"type":"paragraph","content":[]},{"type":"text","text":"x"}]}`, string(out))

	back := mustParse(t, string(out))
	assert.Equal(t, Text(n), Text(back))
	assert.Equal(t, "\n\nx", Text(back))
}

func TestContent_RejectsNonObject(t *testing.T) {
	var c Content
	assert.Error(t, json.Unmarshal([]byte(`123`), &c))
}

func TestParse_RejectsEmptyObject(t *testing.T) {
	_, err := Parse([]byte(`{}`))
	assert.ErrorIs(t, err, ErrNotDocument)

	_, err = Parse([]byte(`not json`))
	assert.Error(t, err)
}
