package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/dgallion1/qaboard/internal/doc"
)

// DOCXParser handles .docx files.
type DOCXParser struct{}

func (p *DOCXParser) Parse(r io.Reader, filename string) (*doc.Node, error) {
	// go-docx needs a ReaderAt+size, so write to temp file.
	tmp, err := os.CreateTemp("", "qaboard-docx-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("seek temp file: %w", err)
	}

	file, err := docx.Parse(tmp, size)
	tmp.Close()
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	root := doc.New()
	for _, item := range file.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		inline := docxInline(para)
		if len(inline) == 0 {
			continue
		}
		if level := docxHeadingLevel(para); level > 0 {
			root.Content = append(root.Content, doc.Heading(clampHeading(level), inline...))
		} else {
			root.Content = append(root.Content, doc.Paragraph(inline...))
		}
	}
	return root, nil
}

func docxHeadingLevel(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	style := strings.ToLower(strings.ReplaceAll(para.Properties.Style.Val, " ", ""))
	if !strings.HasPrefix(style, "heading") {
		return 0
	}
	switch strings.TrimPrefix(style, "heading") {
	case "1":
		return 1
	case "2":
		return 2
	case "3":
		return 3
	case "4":
		return 4
	case "5":
		return 5
	case "6":
		return 6
	}
	return 0
}

// docxInline converts a paragraph's runs into text nodes carrying bold and
// italic marks, with hard breaks for w:br.
func docxInline(para *docx.Paragraph) []*doc.Node {
	b := &blockBuilder{}
	for _, child := range para.Children {
		switch c := child.(type) {
		case *docx.Run:
			docxRun(c, nil, b)
		case *docx.Hyperlink:
			docxRun(&c.Run, nil, b)
		}
	}
	return b.takeInline()
}

func docxRun(run *docx.Run, marks []doc.Mark, b *blockBuilder) {
	if props := run.RunProperties; props != nil {
		if props.Bold != nil {
			marks = withMark(marks, doc.Mark{Type: "bold"})
		}
		if props.Italic != nil {
			marks = withMark(marks, doc.Mark{Type: "italic"})
		}
	}
	for _, rc := range run.Children {
		switch t := rc.(type) {
		case *docx.Text:
			b.text(t.Text, marks)
		case *docx.Tab:
			b.text("\t", marks)
		case *docx.BarterRabbet:
			b.hardBreak()
		}
	}
}
