package parser

import (
	"strings"

	"github.com/dgallion1/qaboard/internal/doc"
)

// blockBuilder accumulates inline nodes into paragraphs. Images split the
// current paragraph because the editor keeps them at block level.
type blockBuilder struct {
	blocks []*doc.Node
	inline []*doc.Node
}

// text appends s, merging with the previous text node when the marks match.
func (b *blockBuilder) text(s string, marks []doc.Mark) {
	if s == "" {
		return
	}
	if n := len(b.inline); n > 0 {
		last := b.inline[n-1]
		if last.Type == doc.KindText && sameMarks(last.Marks, marks) {
			last.Text += s
			return
		}
	}
	node := doc.TextNode(s)
	if len(marks) > 0 {
		node.Marks = append([]doc.Mark(nil), marks...)
	}
	b.inline = append(b.inline, node)
}

// spacedText appends HTML-collapsed text without doubling the space at the seam.
func (b *blockBuilder) spacedText(s string, marks []doc.Mark) {
	if strings.HasPrefix(s, " ") && b.endsInSpace() {
		s = s[1:]
	}
	b.text(s, marks)
}

func (b *blockBuilder) endsInSpace() bool {
	if len(b.inline) == 0 {
		return true
	}
	last := b.inline[len(b.inline)-1]
	return last.Type == doc.KindHardBreak || strings.HasSuffix(last.Text, " ")
}

func (b *blockBuilder) hardBreak() {
	b.inline = append(b.inline, doc.HardBreak())
}

func (b *blockBuilder) image(n *doc.Node) {
	b.flush()
	b.blocks = append(b.blocks, n)
}

func (b *blockBuilder) block(n *doc.Node) {
	b.flush()
	if n != nil {
		b.blocks = append(b.blocks, n)
	}
}

// flush closes the pending paragraph. Whitespace-only runs are dropped.
func (b *blockBuilder) flush() {
	inline := trimInline(b.inline)
	b.inline = nil
	if len(inline) == 0 {
		return
	}
	b.blocks = append(b.blocks, doc.Paragraph(inline...))
}

// take flushes and returns the finished blocks.
func (b *blockBuilder) take() []*doc.Node {
	b.flush()
	out := b.blocks
	b.blocks = nil
	return out
}

// takeInline returns the pending inline nodes, trimmed, without wrapping them.
func (b *blockBuilder) takeInline() []*doc.Node {
	inline := trimInline(b.inline)
	b.inline = nil
	return inline
}

// trimInline strips leading and trailing whitespace and hard breaks.
func trimInline(nodes []*doc.Node) []*doc.Node {
	for len(nodes) > 0 {
		first := nodes[0]
		if first.Type == doc.KindHardBreak {
			nodes = nodes[1:]
			continue
		}
		first.Text = strings.TrimLeft(first.Text, " \t\r\n")
		if first.Type == doc.KindText && first.Text == "" {
			nodes = nodes[1:]
			continue
		}
		break
	}
	for len(nodes) > 0 {
		last := nodes[len(nodes)-1]
		if last.Type == doc.KindHardBreak {
			nodes = nodes[:len(nodes)-1]
			continue
		}
		last.Text = strings.TrimRight(last.Text, " \t\r\n")
		if last.Type == doc.KindText && last.Text == "" {
			nodes = nodes[:len(nodes)-1]
			continue
		}
		break
	}
	return nodes
}

func sameMarks(a, b []doc.Mark) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Type != b[i].Type || a[i].Attrs["href"] != b[i].Attrs["href"] {
			return false
		}
	}
	return true
}

func withMark(marks []doc.Mark, m doc.Mark) []doc.Mark {
	out := make([]doc.Mark, 0, len(marks)+1)
	out = append(out, marks...)
	return append(out, m)
}

func linkMark(href string) doc.Mark {
	return doc.Mark{Type: "link", Attrs: map[string]any{"href": href}}
}

// linesParagraph turns literal lines into one paragraph joined by hard breaks.
func linesParagraph(lines []string) *doc.Node {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil
	}
	var children []*doc.Node
	for i, line := range lines {
		if i > 0 {
			children = append(children, doc.HardBreak())
		}
		if line != "" {
			children = append(children, doc.TextNode(line))
		}
	}
	return doc.Paragraph(children...)
}
