package parser

import (
	"bytes"
	"fmt"
	"maps"
	"strconv"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/sitedocs/internal/content"
)

// Meta is the typed view of a front-matter block.
type Meta struct {
	Title string
	Date  time.Time
	Draft bool
	Extra map[string]any
}

// dateLayouts are tried in order for string dates.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05-07:00",
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05-07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// splitFrontMatter separates a YAML, TOML or JSON front-matter block from the
// body. Text without front matter is returned whole as the body.
func splitFrontMatter(text string) (Meta, string, error) {
	raw := map[string]any{}
	body, err := frontmatter.Parse(strings.NewReader(text), &raw)
	if err != nil {
		return Meta{}, "", fmt.Errorf("front matter: %w", err)
	}
	meta, err := metaFromMap(raw)
	if err != nil {
		return Meta{}, "", err
	}
	return meta, string(body), nil
}

func metaFromMap(raw map[string]any) (Meta, error) {
	var m Meta
	for k, v := range raw {
		// Keys match exactly; case variants such as "Title" stay in Extra.
		switch k {
		case "title":
			if v != nil {
				m.Title = fmt.Sprint(v)
			}
		case "date":
			d, err := ParseDate(v)
			if err != nil {
				return Meta{}, err
			}
			m.Date = d
		case "draft":
			b, err := parseBool(v)
			if err != nil {
				return Meta{}, fmt.Errorf("invalid draft value %v: %w", v, err)
			}
			m.Draft = b
		default:
			if m.Extra == nil {
				m.Extra = map[string]any{}
			}
			m.Extra[k] = normalizeValue(v)
		}
	}
	return m, nil
}

// ParseDate accepts a decoded front-matter value: a time.Time from TOML or a
// string in one of the supported layouts. Nil yields the zero time.
func ParseDate(v any) (time.Time, error) {
	switch d := v.(type) {
	case nil:
		return time.Time{}, nil
	case time.Time:
		return d, nil
	case string:
		s := strings.TrimSpace(d)
		if s == "" {
			return time.Time{}, nil
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("invalid date %q", d)
	}
	return time.Time{}, fmt.Errorf("invalid date %v", v)
}

func parseBool(v any) (bool, error) {
	switch b := v.(type) {
	case nil:
		return false, nil
	case bool:
		return b, nil
	case string:
		return strconv.ParseBool(strings.TrimSpace(b))
	}
	return false, fmt.Errorf("not a boolean")
}

// normalizeValue turns map[any]any values from the YAML decoder into
// map[string]any so documents can be re-encoded as JSON.
func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalizeValue(val)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalizeValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalizeValue(val)
		}
		return out
	}
	return v
}

type header struct {
	Title string         `yaml:"title"`
	Date  time.Time      `yaml:"date"`
	Draft bool           `yaml:"draft"`
	Extra map[string]any `yaml:",inline"`
}

// Encode renders doc as a YAML front-matter block followed by its body.
func Encode(doc *content.Document) ([]byte, error) {
	h := header{Title: doc.Title, Date: doc.Date, Draft: doc.Draft}
	if len(doc.Extra) > 0 {
		h.Extra = maps.Clone(doc.Extra)
		delete(h.Extra, "title")
		delete(h.Extra, "date")
		delete(h.Extra, "draft")
	}
	fm, err := yaml.Marshal(&h)
	if err != nil {
		return nil, fmt.Errorf("marshal front matter: %w", err)
	}
	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(fm)
	buf.WriteString("---\n")
	buf.WriteString(doc.Body)
	return buf.Bytes(), nil
}
