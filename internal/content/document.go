package content

import (
	"maps"
	"time"
)

// Document is a single authored unit of site content: front matter plus body.
type Document struct {
	// Slug is the collection-wide identity, derived from Path.
	Slug string `json:"slug"`
	// Path is the file location relative to the content root, slash separated.
	Path  string    `json:"path"`
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
	Draft bool      `json:"draft"`
	Body  string    `json:"-"`
	// Extra keeps front-matter keys other than title, date and draft.
	Extra map[string]any `json:"extra,omitempty"`
}

// New builds a document at rel with its slug derived from the path.
func New(rel, title string, date time.Time, draft bool, body string) *Document {
	return &Document{
		Slug:  SlugFromPath(rel),
		Path:  NormalizePath(rel),
		Title: title,
		Date:  date,
		Draft: draft,
		Body:  body,
	}
}

// Clone returns a copy that shares nothing mutable with d.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	c := *d
	if d.Extra != nil {
		c.Extra = maps.Clone(d.Extra)
	}
	return &c
}

// Blocks classifies the body into its top-level markup blocks.
func (d *Document) Blocks() []Block {
	return ParseBlocks([]byte(d.Body))
}
