package site

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/KaramelBytes/sitedocs/internal/content"
	"github.com/KaramelBytes/sitedocs/internal/parser"
	"github.com/KaramelBytes/sitedocs/internal/utils"
)

// Site is a content collection persisted as one file per document under a
// content directory.
type Site struct {
	dir   string
	store *content.Store
	log   *zap.Logger
	// skipped holds per-file decode errors collected by Scan.
	skipped []error
}

// Load walks dir and decodes every supported file into the store. Hidden
// files and directories are skipped. Two files deriving the same slug fail
// the load with *content.DuplicateSlugError, as does any file whose front
// matter cannot be decoded.
func Load(dir string, log *zap.Logger) (*Site, error) {
	return load(dir, log, true)
}

// Scan is Load for reporting: files whose front matter cannot be decoded are
// left out of the store and returned by Check instead of failing the walk.
// Slug collisions still fail.
func Scan(dir string, log *zap.Logger) (*Site, error) {
	return load(dir, log, false)
}

func load(dir string, log *zap.Logger, strict bool) (*Site, error) {
	if log == nil {
		log = zap.NewNop()
	}
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("content directory not found at %s: %w", dir, err)
		}
		return nil, fmt.Errorf("stat content directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content path %s is not a directory", dir)
	}
	s := &Site{dir: dir, store: content.NewStore(), log: log}
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !parser.Supported(d.Name()) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		doc, err := parser.ParseFile(path, rel)
		if err != nil {
			if strict {
				return err
			}
			log.Debug("skipped document", zap.String("path", rel), zap.Error(err))
			s.skipped = append(s.skipped, err)
			return nil
		}
		if err := s.store.Add(doc); err != nil {
			return err
		}
		log.Debug("loaded document", zap.String("slug", doc.Slug), zap.String("path", doc.Path), zap.Bool("draft", doc.Draft))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	log.Debug("content loaded", zap.String("dir", dir), zap.Int("documents", s.store.Len()))
	return s, nil
}

// Dir returns the on-disk content directory.
func (s *Site) Dir() string { return s.dir }

// Store exposes the in-memory collection.
func (s *Site) Store() *content.Store { return s.store }

// Documents lists the collection newest first.
func (s *Site) Documents(includeDrafts bool) iter.Seq[*content.Document] {
	return s.store.List(includeDrafts)
}

// Get returns the document stored under slug.
func (s *Site) Get(slug string) (*content.Document, error) {
	return s.store.Get(slug)
}

// Create writes doc to doc.Path and adds it to the collection. The slug is
// re-derived from the path. Existing files are never overwritten.
func (s *Site) Create(doc *content.Document) error {
	rel, err := s.checkPath(doc.Path)
	if err != nil {
		return err
	}
	doc = doc.Clone()
	doc.Path = rel
	doc.Slug = content.SlugFromPath(rel)

	data, err := parser.Encode(doc)
	if err != nil {
		return err
	}
	if err := s.store.Add(doc); err != nil {
		return err
	}
	abs := s.abs(rel)
	if _, err := os.Stat(abs); err == nil {
		_ = s.store.Remove(doc.Slug)
		return fmt.Errorf("file already exists at %s", abs)
	} else if !errors.Is(err, fs.ErrNotExist) {
		_ = s.store.Remove(doc.Slug)
		return fmt.Errorf("stat document: %w", err)
	}
	if err := s.write(abs, data); err != nil {
		_ = s.store.Remove(doc.Slug)
		return err
	}
	s.log.Info("document created", zap.String("slug", doc.Slug), zap.String("path", rel))
	return nil
}

// Import decodes the file at src and creates it at rel within the collection.
func (s *Site) Import(src, rel string) (*content.Document, error) {
	doc, err := parser.ParseFile(src, rel)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	if err := s.Create(doc); err != nil {
		return nil, err
	}
	return s.store.Get(doc.Slug)
}

// Update replaces the whole document stored under doc.Slug, rewriting its
// file in place.
func (s *Site) Update(doc *content.Document) error {
	prev, err := s.store.Get(doc.Slug)
	if err != nil {
		return err
	}
	doc = doc.Clone()
	doc.Path = prev.Path
	data, err := parser.Encode(doc)
	if err != nil {
		return err
	}
	if err := s.write(s.abs(prev.Path), data); err != nil {
		return err
	}
	if err := s.store.Replace(doc); err != nil {
		return err
	}
	s.log.Info("document updated", zap.String("slug", doc.Slug), zap.Bool("draft", doc.Draft))
	return nil
}

// Delete removes the document stored under slug along with its file.
// Directories left empty by the removal are pruned up to the content root.
func (s *Site) Delete(slug string) error {
	doc, err := s.store.Get(slug)
	if err != nil {
		return err
	}
	abs := s.abs(doc.Path)
	if err := os.Remove(abs); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove document: %w", err)
	}
	if err := s.store.Remove(slug); err != nil {
		return err
	}
	s.pruneEmptyDirs(filepath.Dir(abs))
	s.log.Info("document removed", zap.String("slug", slug), zap.String("path", doc.Path))
	return nil
}

// Check returns the decode errors collected by Scan, in path order, then
// validates every stored document, drafts included, newest first.
func (s *Site) Check() []error {
	errs := append([]error(nil), s.skipped...)
	for doc := range s.store.List(true) {
		if err := content.Validate(doc); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// Skipped returns the per-file decode errors collected by Scan.
func (s *Site) Skipped() []error { return s.skipped }

func (s *Site) checkPath(rel string) (string, error) {
	p := content.NormalizePath(rel)
	if p == "" {
		return "", errors.New("document path is required")
	}
	if p == ".." || strings.HasPrefix(p, "../") {
		return "", fmt.Errorf("document path %s escapes the content directory", rel)
	}
	if !parser.Supported(p) {
		return "", fmt.Errorf("%s: %w", p, parser.ErrUnsupported)
	}
	return p, nil
}

func (s *Site) abs(rel string) string {
	return filepath.Join(s.dir, filepath.FromSlash(rel))
}

func (s *Site) write(abs string, data []byte) error {
	if err := utils.EnsureDir(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("ensure dir: %w", err)
	}
	return utils.SafeWriteFile(abs, data)
}

func (s *Site) pruneEmptyDirs(dir string) {
	root := filepath.Clean(s.dir)
	for dir = filepath.Clean(dir); dir != root && strings.HasPrefix(dir, root+string(os.PathSeparator)); dir = filepath.Dir(dir) {
		if err := os.Remove(dir); err != nil {
			return
		}
	}
}
