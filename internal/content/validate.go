package content

import (
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var slugPattern = regexp.MustCompile(`^[\p{L}\p{N}._~-]+(/[\p{L}\p{N}._~-]+)*$`)

// ValidationError reports the front-matter conventions a document breaks.
type ValidationError struct {
	Slug string
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Fields returns the per-field messages keyed by front-matter name.
func (e *ValidationError) Fields() map[string]string {
	out := map[string]string{}
	errs, ok := e.Err.(validation.Errors)
	if !ok {
		out[""] = e.Err.Error()
		return out
	}
	for k, v := range errs {
		out[k] = v.Error()
	}
	return out
}

// Validate checks the conventions the store itself does not enforce: a
// non-blank title, a date, and a path-safe slug. It returns nil or a
// *ValidationError.
func Validate(doc *Document) error {
	d := *doc
	err := validation.ValidateStruct(&d,
		validation.Field(&d.Title, validation.Required, validation.By(notBlank)),
		validation.Field(&d.Date, validation.Required),
		validation.Field(&d.Slug,
			validation.Required.Error("cannot be derived from path"),
			validation.Match(slugPattern).Error("must be a slash separated path without spaces"),
		),
	)
	if err != nil {
		return &ValidationError{Slug: doc.Slug, Path: doc.Path, Err: err}
	}
	return nil
}

func notBlank(value any) error {
	s, _ := value.(string)
	if s != "" && strings.TrimSpace(s) == "" {
		return validation.NewError("validation_not_blank", "must not be blank")
	}
	return nil
}
