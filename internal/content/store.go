package content

import (
	"iter"
	"slices"
	"strings"
	"sync"
)

// Store holds a collection of documents keyed by slug.
//
// Documents handed to Add and Replace are copied; documents yielded by Get
// and List belong to the store and must be treated as read-only. Use Replace
// to change one.
type Store struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

// NewStore constructs an empty store. The zero value is also ready to use.
func NewStore() *Store {
	return &Store{docs: make(map[string]*Document)}
}

// Add inserts doc. It fails with *DuplicateSlugError if the slug is taken,
// leaving the store unchanged.
func (s *Store) Add(doc *Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.docs[doc.Slug]; ok {
		return &DuplicateSlugError{Slug: doc.Slug, Existing: prev.Path, Path: doc.Path}
	}
	if s.docs == nil {
		s.docs = make(map[string]*Document)
	}
	s.docs[doc.Slug] = doc.Clone()
	return nil
}

// Remove deletes the document stored under slug. It fails with *NotFoundError
// if there is none.
func (s *Store) Remove(slug string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[slug]; !ok {
		return &NotFoundError{Slug: slug}
	}
	delete(s.docs, slug)
	return nil
}

// Replace swaps the whole document stored under doc.Slug.
func (s *Store) Replace(doc *Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[doc.Slug]; !ok {
		return &NotFoundError{Slug: doc.Slug}
	}
	s.docs[doc.Slug] = doc.Clone()
	return nil
}

// Get returns the document stored under slug.
func (s *Store) Get(slug string) (*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.docs[slug]
	if !ok {
		return nil, &NotFoundError{Slug: slug}
	}
	return d, nil
}

// Len reports the number of stored documents, drafts included.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// List returns the documents ordered by descending date, ties broken by
// ascending slug. Drafts are skipped unless includeDrafts is set.
//
// The sequence is a snapshot taken at call time: later Add or Remove calls do
// not affect it, and ranging over it again yields the same documents in the
// same order.
func (s *Store) List(includeDrafts bool) iter.Seq[*Document] {
	s.mu.RLock()
	snap := make([]*Document, 0, len(s.docs))
	for _, d := range s.docs {
		if d.Draft && !includeDrafts {
			continue
		}
		snap = append(snap, d)
	}
	s.mu.RUnlock()

	var once sync.Once
	return func(yield func(*Document) bool) {
		once.Do(func() { slices.SortFunc(snap, compareNewestFirst) })
		for _, d := range snap {
			if !yield(d) {
				return
			}
		}
	}
}

func compareNewestFirst(a, b *Document) int {
	if c := b.Date.Compare(a.Date); c != 0 {
		return c
	}
	return strings.Compare(a.Slug, b.Slug)
}
