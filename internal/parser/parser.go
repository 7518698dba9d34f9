package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/qaboard/internal/doc"
)

// Parser converts raw file bytes into an editor document.
type Parser interface {
	Parse(r io.Reader, filename string) (*doc.Node, error)
}

// SupportedExtensions lists file extensions that can be imported.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".csv":      true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// Options tunes the parsers returned by ForFile.
type Options struct {
	// PDFFallbackPdftotext retries failed PDF extraction with the pdftotext binary.
	PDFFallbackPdftotext bool
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string, opts ...Options) (Parser, error) {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextParser{}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".csv":
		return &CSVParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".pdf":
		return &PDFParser{FallbackPdftotext: o.PDFFallbackPdftotext}, nil
	case ".docx":
		return &DOCXParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// clampHeading maps source heading depths onto the editor's three levels.
func clampHeading(level int) int {
	switch {
	case level < 1:
		return 1
	case level > 3:
		return 3
	}
	return level
}
