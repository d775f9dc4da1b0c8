package parser

import (
	"errors"
	"fmt"
	"os"

	"github.com/KaramelBytes/sitedocs/internal/content"
)

// Parser normalizes the raw bytes of one content file format.
type Parser interface {
	CanParse(filename string) bool
	Parse(content []byte) (string, error)
}

var registry []Parser

// Register adds a parser implementation to the registry.
func Register(p Parser) {
	registry = append(registry, p)
}

// Supported reports whether some registered parser accepts filename.
func Supported(filename string) bool {
	return lookup(filename) != nil
}

func lookup(filename string) Parser {
	for _, p := range registry {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// ParseFile reads path and decodes it as the document stored at rel.
func ParseFile(path, rel string) (*content.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Decode(rel, data)
}

// Decode splits data into front matter and body and builds the document
// stored at rel. Its slug is derived from rel.
func Decode(rel string, data []byte) (*content.Document, error) {
	p := lookup(rel)
	if p == nil {
		return nil, fmt.Errorf("%s: %w", rel, ErrUnsupported)
	}
	text, err := p.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", rel, err)
	}
	meta, body, err := splitFrontMatter(text)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", rel, err)
	}
	doc := content.New(rel, meta.Title, meta.Date, meta.Draft, body)
	doc.Extra = meta.Extra
	return doc, nil
}

func init() {
	Register(markdownParser{})
	Register(htmlParser{})
}

// ErrUnsupported indicates a format is not supported yet.
var ErrUnsupported = errors.New("unsupported document format")
