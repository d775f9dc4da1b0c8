package site_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/KaramelBytes/sitedocs/internal/content"
	"github.com/KaramelBytes/sitedocs/internal/site"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

func listSlugs(s *site.Site, drafts bool) []string {
	var out []string
	for d := range s.Documents(drafts) {
		out = append(out, d.Slug)
	}
	return out
}

func fixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "posts", "clean-arch.md"), "---\ntitle: Clean Architecture\ndate: 2020-10-11T12:00:00+02:00\ndraft: false\n---\nIntro.\n")
	writeFile(t, filepath.Join(dir, "posts", "switch", "index.md"), "---\ntitle: Switching generators\ndate: 2020-12-21T12:00:00+01:00\n---\nBody.\n")
	writeFile(t, filepath.Join(dir, "posts", "next.md"), "---\ntitle: Next\ndate: 2020-12-22T12:00:00+01:00\ndraft: true\n---\n")
	writeFile(t, filepath.Join(dir, "posts", "cover.png"), "not content")
	writeFile(t, filepath.Join(dir, ".git", "HEAD.md"), "ignored")
	return dir
}

func TestLoadListsNewestFirst(t *testing.T) {
	s, err := site.Load(fixture(t), zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Equal(t, 3, s.Store().Len())
	assert.Equal(t, []string{"posts/switch", "posts/clean-arch"}, listSlugs(s, false))
	assert.Equal(t, []string{"posts/next", "posts/switch", "posts/clean-arch"}, listSlugs(s, true))
}

func TestLoadMissingDir(t *testing.T) {
	_, err := site.Load(filepath.Join(t.TempDir(), "nope"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadRejectsSlugCollision(t *testing.T) {
	dir := fixture(t)
	writeFile(t, filepath.Join(dir, "posts", "clean-arch", "index.md"), "---\ntitle: Dup\n---\n")
	_, err := site.Load(dir, nil)
	require.ErrorIs(t, err, content.ErrDuplicateSlug)
}

func TestCreateAndDeleteRestoresTree(t *testing.T) {
	dir := fixture(t)
	s, err := site.Load(dir, zaptest.NewLogger(t))
	require.NoError(t, err)
	before := listSlugs(s, true)

	doc := content.New("notes/bundle/index.md", "Bundle", time.Date(2021, 1, 2, 3, 4, 5, 0, time.UTC), false, "Hello.\n")
	require.NoError(t, s.Create(doc))
	_, err = os.Stat(filepath.Join(dir, "notes", "bundle", "index.md"))
	require.NoError(t, err)

	reloaded, err := site.Load(dir, nil)
	require.NoError(t, err)
	got, err := reloaded.Get("notes/bundle")
	require.NoError(t, err)
	assert.Equal(t, "Bundle", got.Title)

	require.NoError(t, s.Delete("notes/bundle"))
	assert.Equal(t, before, listSlugs(s, true))
	_, err = os.Stat(filepath.Join(dir, "notes"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCreateDuplicateSlugKeepsFiles(t *testing.T) {
	dir := fixture(t)
	s, err := site.Load(dir, nil)
	require.NoError(t, err)

	err = s.Create(content.New("posts/switch.md", "Dup", time.Now(), false, ""))
	require.ErrorIs(t, err, content.ErrDuplicateSlug)
	_, statErr := os.Stat(filepath.Join(dir, "posts", "switch.md"))
	assert.ErrorIs(t, statErr, os.ErrNotExist)
	assert.Equal(t, 3, s.Store().Len())
}

func TestCreateRejectsEscapingPath(t *testing.T) {
	s, err := site.Load(fixture(t), nil)
	require.NoError(t, err)
	err = s.Create(content.New("../outside.md", "X", time.Now(), false, ""))
	require.Error(t, err)
	assert.Equal(t, 3, s.Store().Len())
}

func TestDeleteMissing(t *testing.T) {
	s, err := site.Load(fixture(t), nil)
	require.NoError(t, err)
	require.ErrorIs(t, s.Delete("posts/ghost"), content.ErrNotFound)
	assert.Equal(t, 3, s.Store().Len())
}

func TestUpdatePublishesDraft(t *testing.T) {
	dir := fixture(t)
	s, err := site.Load(dir, nil)
	require.NoError(t, err)
	doc, err := s.Get("posts/next")
	require.NoError(t, err)
	pub := doc.Clone()
	pub.Draft = false
	require.NoError(t, s.Update(pub))

	reloaded, err := site.Load(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"posts/next", "posts/switch", "posts/clean-arch"}, listSlugs(reloaded, false))
}

func TestImport(t *testing.T) {
	dir := fixture(t)
	s, err := site.Load(dir, nil)
	require.NoError(t, err)
	src := filepath.Join(t.TempDir(), "draft.md")
	writeFile(t, src, "---\ntitle: Imported\ndate: 2019-01-01\ntags: [x]\n---\nText\n")

	doc, err := s.Import(src, "posts/imported.md")
	require.NoError(t, err)
	assert.Equal(t, "posts/imported", doc.Slug)
	assert.Equal(t, []any{"x"}, doc.Extra["tags"])

	_, err = s.Import(src, "posts/imported.md")
	require.ErrorIs(t, err, content.ErrDuplicateSlug)
}

func TestCheck(t *testing.T) {
	dir := fixture(t)
	writeFile(t, filepath.Join(dir, "posts", "untitled.md"), "no front matter\n")
	s, err := site.Load(dir, nil)
	require.NoError(t, err)
	errs := s.Check()
	require.Len(t, errs, 1)
	var verr *content.ValidationError
	require.ErrorAs(t, errs[0], &verr)
	assert.Equal(t, "posts/untitled", verr.Slug)
}

func TestCheckReportsEmptyTitle(t *testing.T) {
	dir := fixture(t)
	writeFile(t, filepath.Join(dir, "posts", "blank.md"), "---\ntitle:\ndate: 2021-01-01\n---\nBody\n")
	s, err := site.Load(dir, nil)
	require.NoError(t, err)
	doc, err := s.Get("posts/blank")
	require.NoError(t, err)
	assert.Equal(t, "", doc.Title)

	errs := s.Check()
	require.Len(t, errs, 1)
	var verr *content.ValidationError
	require.ErrorAs(t, errs[0], &verr)
	assert.Equal(t, "posts/blank", verr.Slug)
	assert.Contains(t, verr.Fields(), "title")
}

func TestScanCollectsDecodeErrors(t *testing.T) {
	dir := fixture(t)
	writeFile(t, filepath.Join(dir, "posts", "bad-date.md"), "---\ntitle: Bad\ndate: someday\n---\n")
	writeFile(t, filepath.Join(dir, "posts", "untitled.md"), "no front matter\n")

	_, err := site.Load(dir, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date")

	s, err := site.Scan(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Store().Len())
	require.Len(t, s.Skipped(), 1)

	errs := s.Check()
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "posts/bad-date.md")
	var verr *content.ValidationError
	require.ErrorAs(t, errs[1], &verr)
	assert.Equal(t, "posts/untitled", verr.Slug)
}

func TestScanStillRejectsSlugCollision(t *testing.T) {
	dir := fixture(t)
	writeFile(t, filepath.Join(dir, "posts", "clean-arch", "index.md"), "---\ntitle: Dup\n---\n")
	_, err := site.Scan(dir, nil)
	require.ErrorIs(t, err, content.ErrDuplicateSlug)
}
