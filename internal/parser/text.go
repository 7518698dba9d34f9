package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/dgallion1/qaboard/internal/doc"
)

// TextParser handles plain text files. Blank lines separate paragraphs;
// single newlines become hard breaks.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*doc.Node, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	root := doc.New()
	var lines []string
	flush := func() {
		if para := linesParagraph(lines); para != nil {
			root.Content = append(root.Content, para)
		}
		lines = nil
	}

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()

	return root, nil
}
