package content

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-slug"
)

// NormalizePath cleans rel into a slash separated path with no leading slash.
func NormalizePath(rel string) string {
	p := path.Clean(filepath.ToSlash(rel))
	p = strings.TrimPrefix(p, "./")
	p = strings.TrimPrefix(p, "/")
	if p == "." {
		return ""
	}
	return p
}

// SlugFromPath derives a document identity from its storage path relative to
// the content root. The extension is dropped and page bundles ("index" or
// "_index" leaf files) take the name of their directory.
func SlugFromPath(rel string) string {
	p := NormalizePath(rel)
	p = strings.TrimSuffix(p, path.Ext(p))
	switch {
	case p == "index" || p == "_index":
		return ""
	case strings.HasSuffix(p, "/index"):
		p = strings.TrimSuffix(p, "/index")
	case strings.HasSuffix(p, "/_index"):
		p = strings.TrimSuffix(p, "/_index")
	}
	return p
}

// SlugifyName turns a free-form name such as a post title into a single
// path segment. Falls back to a lowercased, dash-joined form if the
// normalizer rejects the input.
func SlugifyName(name string) string {
	if s, err := slug.Normalize(name); err == nil && s != "" {
		return s
	}
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// SlugifyPath slugifies every segment of a slash separated path, leaving the
// directory layout intact: "Posts/My First Post" -> "posts/my-first-post".
func SlugifyPath(p string) string {
	parts := strings.Split(NormalizePath(p), "/")
	out := parts[:0]
	for _, part := range parts {
		if part == "" {
			continue
		}
		out = append(out, SlugifyName(part))
	}
	return strings.Join(out, "/")
}
