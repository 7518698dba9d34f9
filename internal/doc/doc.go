package doc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// Kind names a node type in the editor's document schema.
type Kind string

const (
	KindDoc            Kind = "doc"
	KindText           Kind = "text"
	KindParagraph      Kind = "paragraph"
	KindHeading        Kind = "heading"
	KindBulletList     Kind = "bulletList"
	KindOrderedList    Kind = "orderedList"
	KindListItem       Kind = "listItem"
	KindHardBreak      Kind = "hardBreak"
	KindImage          Kind = "image"
	KindHorizontalRule Kind = "horizontalRule"
	KindYoutube        Kind = "youtube"
)

var (
	ErrNoNode      = errors.New("no node at position")
	ErrNotDocument = errors.New("not a document")
)

// Node is one element of a document tree, in the editor's JSON shape.
type Node struct {
	Type    Kind           `json:"type"`
	Attrs   map[string]any `json:"attrs,omitempty"`
	Content []*Node        `json:"content,omitempty"`
	Marks   []Mark         `json:"marks,omitempty"`
	Text    string         `json:"text,omitempty"`
}

// nodeJSON is the wire form of Node. Content is a pointer so an empty
// array survives encoding while an absent one stays absent.
type nodeJSON struct {
	Type    Kind           `json:"type"`
	Attrs   map[string]any `json:"attrs,omitempty"`
	Content *[]*Node       `json:"content,omitempty"`
	Marks   []Mark         `json:"marks,omitempty"`
	Text    string         `json:"text,omitempty"`
}

func (n Node) MarshalJSON() ([]byte, error) {
	out := nodeJSON{Type: n.Type, Attrs: n.Attrs, Marks: n.Marks, Text: n.Text}
	if n.Content != nil {
		out.Content = &n.Content
	}
	return json.Marshal(out)
}

// Mark is inline formatting attached to a text node (bold, link, ...).
type Mark struct {
	Type  string         `json:"type"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

// Parse decodes a JSON document tree.
func Parse(data []byte) (*Node, error) {
	var n Node
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	if n.Type == "" && n.Content == nil {
		return nil, ErrNotDocument
	}
	return &n, nil
}

// New returns an empty document with the given blocks.
func New(blocks ...*Node) *Node {
	return &Node{Type: KindDoc, Content: blocks}
}

// TextNode returns a text node without marks.
func TextNode(s string) *Node {
	return &Node{Type: KindText, Text: s}
}

func Paragraph(children ...*Node) *Node {
	return &Node{Type: KindParagraph, Content: nonNil(children)}
}

func Heading(level int, children ...*Node) *Node {
	return &Node{
		Type:    KindHeading,
		Attrs:   map[string]any{"level": level},
		Content: nonNil(children),
	}
}

func BulletList(items ...*Node) *Node {
	return &Node{Type: KindBulletList, Content: nonNil(items)}
}

func OrderedList(items ...*Node) *Node {
	return &Node{Type: KindOrderedList, Content: nonNil(items)}
}

func ListItem(children ...*Node) *Node {
	return &Node{Type: KindListItem, Content: nonNil(children)}
}

func HardBreak() *Node {
	return &Node{Type: KindHardBreak}
}

// Image returns an image node. Zero width or height leaves the attribute null.
func Image(src string, width, height int) *Node {
	attrs := map[string]any{"src": src, "width": nil, "height": nil}
	if width > 0 {
		attrs["width"] = width
	}
	if height > 0 {
		attrs["height"] = height
	}
	return &Node{Type: KindImage, Attrs: attrs}
}

func nonNil(children []*Node) []*Node {
	if children == nil {
		return []*Node{}
	}
	return children
}

// Attr returns the named attribute, or nil.
func (n *Node) Attr(name string) any {
	if n == nil || n.Attrs == nil {
		return nil
	}
	return n.Attrs[name]
}

// IntAttr reads a numeric attribute regardless of how JSON decoded it.
func (n *Node) IntAttr(name string) (int, bool) {
	return toInt(n.Attr(name))
}

// HeadingLevel returns 1..3; absent or out-of-range levels read as 1.
func (n *Node) HeadingLevel() int {
	level, ok := n.IntAttr("level")
	if !ok || level < 1 || level > 3 {
		return 1
	}
	return level
}

// Clone returns a deep copy of the subtree.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{Type: n.Type, Text: n.Text}
	if n.Attrs != nil {
		out.Attrs = make(map[string]any, len(n.Attrs))
		for k, v := range n.Attrs {
			out.Attrs[k] = v
		}
	}
	if n.Marks != nil {
		out.Marks = make([]Mark, len(n.Marks))
		copy(out.Marks, n.Marks)
	}
	if n.Content != nil {
		out.Content = make([]*Node, len(n.Content))
		for i, c := range n.Content {
			out.Content[i] = c.Clone()
		}
	}
	return out
}

func toInt(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int32:
		return int(x), true
	case int64:
		return int(x), true
	case float32:
		return int(x), true
	case float64:
		return int(x), true
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return int(i), true
		}
		if f, err := x.Float64(); err == nil {
			return int(f), true
		}
	case string:
		if i, err := strconv.Atoi(x); err == nil {
			return i, true
		}
	}
	return 0, false
}

// Content is a stored rich-text field: either a raw string or a document.
// The zero value is the null field.
type Content struct {
	Raw string
	Doc *Node
}

// StringContent wraps a plain string.
func StringContent(s string) Content { return Content{Raw: s} }

// DocContent wraps a document tree.
func DocContent(n *Node) Content { return Content{Doc: n} }

// IsZero reports whether the field is null or an empty string.
func (c Content) IsZero() bool {
	return c.Doc == nil && c.Raw == ""
}

func (c *Content) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*c = Content{}
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		return nil
	case data[0] == '"':
		return json.Unmarshal(data, &c.Raw)
	case data[0] == '{':
		var n Node
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("decode content: %w", err)
		}
		c.Doc = &n
		return nil
	default:
		return fmt.Errorf("decode content: unexpected JSON %q", truncate(string(data), 20))
	}
}

func (c Content) MarshalJSON() ([]byte, error) {
	if c.Doc != nil {
		return json.Marshal(c.Doc)
	}
	if c.Raw == "" {
		return []byte("null"), nil
	}
	return json.Marshal(c.Raw)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
