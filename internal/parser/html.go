package parser

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/dgallion1/qaboard/internal/doc"
)

// HTMLParser handles HTML files and pasted HTML fragments.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*doc.Node, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	start := findBody(root)
	if start == nil {
		start = root
	}
	return doc.New(htmlBlocks(start)...), nil
}

// htmlBlocks converts the children of n, wrapping loose inline content in
// paragraphs.
func htmlBlocks(n *html.Node) []*doc.Node {
	b := &blockBuilder{}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		htmlNode(c, nil, b)
	}
	return b.take()
}

func htmlNode(n *html.Node, marks []doc.Mark, b *blockBuilder) {
	switch n.Type {
	case html.TextNode:
		b.spacedText(collapseSpace(n.Data), marks)
		return
	case html.ElementNode:
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			htmlNode(c, marks, b)
		}
		return
	}

	if level := headingLevel(n.Data); level > 0 {
		inner := &blockBuilder{}
		htmlInlines(n, nil, inner)
		b.block(doc.Heading(clampHeading(level), inner.takeInline()...))
		return
	}

	switch n.Data {
	// Skip non-content elements.
	case "script", "style", "nav", "footer", "header", "head", "noscript", "template":
		return
	case "hr":
		b.flush()
		return
	case "br":
		b.hardBreak()
		return
	case "img":
		b.image(htmlImage(n))
		return
	case "p":
		b.flush()
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			htmlNode(c, nil, b)
		}
		b.flush()
		return
	case "pre":
		b.block(linesParagraph(strings.Split(textContent(n), "\n")))
		return
	case "ul", "ol":
		var items []*doc.Node
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == "li" {
				items = append(items, doc.ListItem(htmlBlocks(c)...))
			}
		}
		if n.Data == "ol" {
			b.block(doc.OrderedList(items...))
		} else {
			b.block(doc.BulletList(items...))
		}
		return
	case "div", "section", "article", "main", "aside", "blockquote", "li",
		"table", "thead", "tbody", "tfoot", "tr", "td", "th", "figure", "figcaption":
		b.flush()
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			htmlNode(c, nil, b)
		}
		b.flush()
		return
	}

	if m, ok := htmlMark(n); ok {
		marks = withMark(marks, m)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		htmlNode(c, marks, b)
	}
}

// htmlInlines collects the inline content of n; block structure inside is flattened.
func htmlInlines(n *html.Node, marks []doc.Mark, b *blockBuilder) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case c.Type == html.TextNode:
			b.spacedText(collapseSpace(c.Data), marks)
		case c.Type == html.ElementNode && c.Data == "br":
			b.hardBreak()
		case c.Type == html.ElementNode:
			inner := marks
			if m, ok := htmlMark(c); ok {
				inner = withMark(marks, m)
			}
			htmlInlines(c, inner, b)
		}
	}
}

func htmlMark(n *html.Node) (doc.Mark, bool) {
	switch n.Data {
	case "b", "strong":
		return doc.Mark{Type: "bold"}, true
	case "i", "em":
		return doc.Mark{Type: "italic"}, true
	case "s", "del", "strike":
		return doc.Mark{Type: "strike"}, true
	case "code":
		return doc.Mark{Type: "code"}, true
	case "a":
		if href := attr(n, "href"); href != "" {
			return linkMark(href), true
		}
	}
	return doc.Mark{}, false
}

func htmlImage(n *html.Node) *doc.Node {
	img := doc.Image(attr(n, "src"), pixels(attr(n, "width")), pixels(attr(n, "height")))
	if alt := attr(n, "alt"); alt != "" {
		img.Attrs["alt"] = alt
	}
	if title := attr(n, "title"); title != "" {
		img.Attrs["title"] = title
	}
	return img
}

// pixels parses "320" or "320px"; anything else is 0.
func pixels(s string) int {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	if s == "" {
		return 0
	}
	if v, err := strconv.Atoi(s); err == nil && v > 0 {
		return v
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f > 0 {
		return int(f + 0.5)
	}
	return 0
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// collapseSpace folds whitespace runs to single spaces, keeping one at
// either edge so adjacent inline elements stay separated.
func collapseSpace(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		if s == "" {
			return ""
		}
		return " "
	}
	out := strings.Join(fields, " ")
	if isSpace(s[0]) {
		out = " " + out
	}
	if isSpace(s[len(s)-1]) {
		out += " "
	}
	return out
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.Trim(buf.String(), "\n")
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
