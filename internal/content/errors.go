package content

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateSlug matches any DuplicateSlugError via errors.Is.
	ErrDuplicateSlug = errors.New("duplicate slug")
	// ErrNotFound matches any NotFoundError via errors.Is.
	ErrNotFound = errors.New("document not found")
)

// DuplicateSlugError indicates an insert collided with an existing identity.
type DuplicateSlugError struct {
	Slug string
	// Existing and Path name the colliding files when known.
	Existing string
	Path     string
}

func (e *DuplicateSlugError) Error() string {
	if e.Existing != "" && e.Path != "" {
		return fmt.Sprintf("duplicate slug %q: %s collides with %s", e.Slug, e.Path, e.Existing)
	}
	return fmt.Sprintf("duplicate slug %q", e.Slug)
}

func (e *DuplicateSlugError) Is(target error) bool { return target == ErrDuplicateSlug }

// NotFoundError indicates an operation referenced a slug that is not stored.
type NotFoundError struct{ Slug string }

func (e *NotFoundError) Error() string { return fmt.Sprintf("document not found: %q", e.Slug) }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
