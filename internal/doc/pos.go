package doc

import "unicode/utf16"

// Positions follow the editor's integer addressing: the document's content
// starts at 0, entering or leaving a container costs one position, a text
// node spans its UTF-16 length and any other leaf spans one.

var leafKinds = map[Kind]bool{
	KindText:           true,
	KindHardBreak:      true,
	KindImage:          true,
	KindHorizontalRule: true,
	KindYoutube:        true,
}

var containerKinds = map[Kind]bool{
	KindDoc:         true,
	KindParagraph:   true,
	KindHeading:     true,
	KindBulletList:  true,
	KindOrderedList: true,
	KindListItem:    true,
	"blockquote":    true,
	"codeBlock":     true,
}

// IsLeaf reports whether the node holds no content positions.
func (n *Node) IsLeaf() bool {
	if leafKinds[n.Type] {
		return true
	}
	if containerKinds[n.Type] {
		return false
	}
	return n.Content == nil
}

// Size is the number of positions the node occupies in its parent.
func (n *Node) Size() int {
	if n == nil {
		return 0
	}
	if n.Type == KindText {
		return utf16Len(n.Text)
	}
	if n.IsLeaf() {
		return 1
	}
	return 2 + n.contentSize()
}

func (n *Node) contentSize() int {
	size := 0
	for _, c := range n.Content {
		size += c.Size()
	}
	return size
}

// NodeAt returns the node that starts at pos within n's content, or the text
// node pos falls inside. It returns nil when pos addresses no node.
func (n *Node) NodeAt(pos int) *Node {
	if n == nil || pos < 0 {
		return nil
	}
	offset := 0
	for _, c := range n.Content {
		if c == nil {
			continue
		}
		if pos == offset {
			return c
		}
		end := offset + c.Size()
		if pos < end {
			if c.Type == KindText {
				return c
			}
			if c.IsLeaf() {
				return nil
			}
			return c.NodeAt(pos - offset - 1)
		}
		offset = end
	}
	return nil
}

// SetNodeMarkup replaces the attribute set of the node starting at pos.
func (n *Node) SetNodeMarkup(pos int, attrs map[string]any) error {
	target := n.NodeAt(pos)
	if target == nil {
		return ErrNoNode
	}
	next := make(map[string]any, len(attrs))
	for k, v := range attrs {
		next[k] = v
	}
	target.Attrs = next
	return nil
}

// Walk visits every descendant depth-first with its position. Returning
// false from fn skips the node's children.
func (n *Node) Walk(fn func(node *Node, pos int) bool) {
	if n == nil {
		return
	}
	walk(n.Content, 0, fn)
}

func walk(nodes []*Node, start int, fn func(*Node, int) bool) {
	offset := start
	for _, c := range nodes {
		if c == nil {
			continue
		}
		if fn(c, offset) && !c.IsLeaf() {
			walk(c.Content, offset+1, fn)
		}
		offset += c.Size()
	}
}

// ImageRef locates an image node in a document.
type ImageRef struct {
	Pos    int    `json:"pos"`
	Src    string `json:"src"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Images lists every image node in document order.
func (n *Node) Images() []ImageRef {
	var refs []ImageRef
	n.Walk(func(node *Node, pos int) bool {
		if node.Type != KindImage {
			return true
		}
		ref := ImageRef{Pos: pos}
		ref.Src, _ = node.Attr("src").(string)
		ref.Width, _ = node.IntAttr("width")
		ref.Height, _ = node.IntAttr("height")
		refs = append(refs, ref)
		return false
	})
	return refs
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
