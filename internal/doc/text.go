package doc

import (
	"encoding/json"
	"strings"
)

// Text flattens a document into plain text. Paragraphs and headings end with
// a blank line, headings get "#" prefixes, list items get "- " prefixes and
// hard breaks become newlines. Ordered lists are not numbered.
//
// Only the root's children are projected, so a bare block list (any node
// with content) projects the same as a "doc" node. Malformed nodes
// contribute nothing.
func Text(root *Node) string {
	if root == nil || root.Content == nil {
		return ""
	}
	var sb strings.Builder
	writeNodes(&sb, root.Content)
	return sb.String()
}

// ContentText projects a stored field. Raw strings are returned unchanged.
func ContentText(c Content) string {
	if c.Doc != nil {
		return Text(c.Doc)
	}
	return c.Raw
}

// ToText projects whatever shape a caller holds: nil, a string, a *Node,
// a Content, or JSON bytes of either.
func ToText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case *Node:
		return Text(x)
	case Node:
		return Text(&x)
	case Content:
		return ContentText(x)
	case *Content:
		if x == nil {
			return ""
		}
		return ContentText(*x)
	case json.RawMessage:
		return jsonText(x)
	case []byte:
		return jsonText(x)
	case map[string]any:
		data, err := json.Marshal(x)
		if err != nil {
			return ""
		}
		return jsonText(data)
	}
	return ""
}

func jsonText(data []byte) string {
	var c Content
	if err := json.Unmarshal(data, &c); err != nil {
		return ""
	}
	return ContentText(c)
}

func writeNodes(sb *strings.Builder, nodes []*Node) {
	for _, n := range nodes {
		writeNode(sb, n)
	}
}

func writeNode(sb *strings.Builder, n *Node) {
	if n == nil {
		return
	}
	switch n.Type {
	case KindText:
		if n.Text != "" {
			sb.WriteString(n.Text)
			return
		}
	case KindParagraph:
		if n.Content != nil {
			writeNodes(sb, n.Content)
			sb.WriteString("\n\n")
			return
		}
	case KindHeading:
		if n.Content != nil {
			sb.WriteString(strings.Repeat("#", n.HeadingLevel()))
			sb.WriteByte(' ')
			writeNodes(sb, n.Content)
			sb.WriteString("\n\n")
			return
		}
	case KindBulletList, KindOrderedList:
		writeNodes(sb, n.Content)
		sb.WriteByte('\n')
		return
	case KindListItem:
		if n.Content != nil {
			var item strings.Builder
			writeNodes(&item, n.Content)
			sb.WriteString("- ")
			sb.WriteString(strings.TrimSpace(item.String()))
			sb.WriteByte('\n')
			return
		}
	case KindHardBreak:
		sb.WriteByte('\n')
		return
	}
	// Unknown kinds, and known kinds missing their payload, unwrap to
	// their children if they have any.
	writeNodes(sb, n.Content)
}
