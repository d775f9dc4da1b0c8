package parser

import "strings"

// htmlParser accepts hand-written HTML pages, which carry the same front
// matter as markdown documents.
type htmlParser struct{}

func (htmlParser) CanParse(filename string) bool {
	name := strings.ToLower(filename)
	return strings.HasSuffix(name, ".html") || strings.HasSuffix(name, ".htm")
}

func (htmlParser) Parse(content []byte) (string, error) {
	return normalizeNewlines(content), nil
}
