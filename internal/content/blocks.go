package content

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// BlockKind names the top-level markup construct a block was parsed from.
type BlockKind string

const (
	BlockParagraph BlockKind = "paragraph"
	BlockHeading   BlockKind = "heading"
	BlockCode      BlockKind = "code"
	BlockList      BlockKind = "list"
	BlockQuote     BlockKind = "quote"
	BlockHTML      BlockKind = "html"
	BlockRule      BlockKind = "rule"
	BlockOther     BlockKind = "other"
)

// Block is one top-level element of a document body.
type Block struct {
	Kind BlockKind `json:"kind"`
	// Level is the heading depth; zero for other kinds.
	Level int `json:"level,omitempty"`
	// Language is the fenced code info string, if any.
	Language string   `json:"language,omitempty"`
	Text     string   `json:"text"`
	Links    []string `json:"links,omitempty"`
}

// ParseBlocks splits a markdown body into its top-level blocks. Nothing is
// rendered; the text of each block is the raw source it covers.
func ParseBlocks(src []byte) []Block {
	root := goldmark.DefaultParser().Parse(text.NewReader(src))
	var blocks []Block
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		b := Block{Kind: kindOf(n), Text: blockText(n, src), Links: blockLinks(n, src)}
		switch v := n.(type) {
		case *ast.Heading:
			b.Level = v.Level
		case *ast.FencedCodeBlock:
			b.Language = string(v.Language(src))
		}
		blocks = append(blocks, b)
	}
	return blocks
}

func kindOf(n ast.Node) BlockKind {
	switch n.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		return BlockParagraph
	case *ast.Heading:
		return BlockHeading
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		return BlockCode
	case *ast.List:
		return BlockList
	case *ast.Blockquote:
		return BlockQuote
	case *ast.HTMLBlock:
		return BlockHTML
	case *ast.ThematicBreak:
		return BlockRule
	}
	return BlockOther
}

func blockText(n ast.Node, src []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || c.Type() != ast.TypeBlock {
			return ast.WalkContinue, nil
		}
		lines := c.Lines()
		if lines.Len() > 0 && sb.Len() > 0 && !strings.HasSuffix(sb.String(), "\n") {
			sb.WriteByte('\n')
		}
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			sb.Write(seg.Value(src))
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}

func blockLinks(n ast.Node, src []byte) []string {
	var links []string
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := c.(type) {
		case *ast.Link:
			links = append(links, string(v.Destination))
		case *ast.AutoLink:
			links = append(links, string(v.URL(src)))
		}
		return ast.WalkContinue, nil
	})
	return links
}
