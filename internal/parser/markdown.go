package parser

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/dgallion1/qaboard/internal/doc"
)

// MarkdownParser handles Markdown files using goldmark.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*doc.Node, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(src))

	conv := &mdConverter{src: src}
	return doc.New(conv.blocks(root)...), nil
}

type mdConverter struct {
	src []byte
}

// blocks converts the block children of n.
func (c *mdConverter) blocks(n ast.Node) []*doc.Node {
	var out []*doc.Node
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		out = append(out, c.block(child)...)
	}
	return out
}

func (c *mdConverter) block(n ast.Node) []*doc.Node {
	switch node := n.(type) {
	case *ast.Heading:
		b := &blockBuilder{}
		c.inlines(node, nil, b)
		return []*doc.Node{doc.Heading(clampHeading(node.Level), b.takeInline()...)}

	case *ast.Paragraph, *ast.TextBlock:
		b := &blockBuilder{}
		c.inlines(node, nil, b)
		return b.take()

	case *ast.List:
		var items []*doc.Node
		for item := node.FirstChild(); item != nil; item = item.NextSibling() {
			items = append(items, doc.ListItem(c.blocks(item)...))
		}
		if node.IsOrdered() {
			list := doc.OrderedList(items...)
			if node.Start > 1 {
				list.Attrs = map[string]any{"start": node.Start}
			}
			return []*doc.Node{list}
		}
		return []*doc.Node{doc.BulletList(items...)}

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		if para := linesParagraph(c.lines(node)); para != nil {
			return []*doc.Node{para}
		}
		return nil

	case *ast.ThematicBreak, *ast.HTMLBlock:
		return nil
	}

	// Blockquotes and anything unknown unwrap to their children.
	return c.blocks(n)
}

func (c *mdConverter) lines(n ast.Node) []string {
	segs := n.Lines()
	out := make([]string, 0, segs.Len())
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		out = append(out, strings.TrimRight(string(seg.Value(c.src)), "\r\n"))
	}
	return out
}

func (c *mdConverter) inlines(n ast.Node, marks []doc.Mark, b *blockBuilder) {
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		c.inline(child, marks, b)
	}
}

func (c *mdConverter) inline(n ast.Node, marks []doc.Mark, b *blockBuilder) {
	switch node := n.(type) {
	case *ast.Text:
		b.text(string(node.Segment.Value(c.src)), marks)
		if node.HardLineBreak() || node.SoftLineBreak() {
			b.hardBreak()
		}
	case *ast.String:
		b.text(string(node.Value), marks)
	case *ast.CodeSpan:
		c.inlines(node, withMark(marks, doc.Mark{Type: "code"}), b)
	case *ast.Emphasis:
		kind := "italic"
		if node.Level >= 2 {
			kind = "bold"
		}
		c.inlines(node, withMark(marks, doc.Mark{Type: kind}), b)
	case *ast.Link:
		c.inlines(node, withMark(marks, linkMark(string(node.Destination))), b)
	case *ast.AutoLink:
		url := string(node.URL(c.src))
		b.text(string(node.Label(c.src)), withMark(marks, linkMark(url)))
	case *ast.Image:
		img := doc.Image(string(node.Destination), 0, 0)
		if alt := c.plain(node); alt != "" {
			img.Attrs["alt"] = alt
		}
		if len(node.Title) > 0 {
			img.Attrs["title"] = string(node.Title)
		}
		b.image(img)
	case *ast.RawHTML:
		// dropped
	default:
		c.inlines(n, marks, b)
	}
}

// plain concatenates the literal text under n.
func (c *mdConverter) plain(n ast.Node) string {
	var buf bytes.Buffer
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := child.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(c.src))
		case *ast.String:
			buf.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(buf.String())
}
