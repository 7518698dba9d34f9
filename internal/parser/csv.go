package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/qaboard/internal/doc"
)

// CSVParser handles CSV files. The first row is the header; every data row
// becomes one bullet item of "header: value" pairs.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) (*doc.Node, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	root := doc.New()
	if len(records) == 0 {
		return root, nil
	}

	headers := records[0]
	root.Content = append(root.Content,
		doc.Paragraph(doc.TextNode(strings.Join(headers, ", "))))

	var items []*doc.Node
	for _, row := range records[1:] {
		var line strings.Builder
		for j, cell := range row {
			if j > 0 {
				line.WriteString(", ")
			}
			if j < len(headers) && headers[j] != "" {
				line.WriteString(headers[j] + ": " + cell)
			} else {
				line.WriteString(cell)
			}
		}
		if strings.TrimSpace(line.String()) == "" {
			continue
		}
		items = append(items, doc.ListItem(doc.Paragraph(doc.TextNode(line.String()))))
	}
	if len(items) > 0 {
		root.Content = append(root.Content, doc.BulletList(items...))
	}
	return root, nil
}
