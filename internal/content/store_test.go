package content_test

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/sitedocs/internal/content"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return d
}

func slugs(seq func(func(*content.Document) bool)) []string {
	var out []string
	for d := range seq {
		out = append(out, d.Slug)
	}
	return out
}

func sampleStore(t *testing.T) *content.Store {
	t.Helper()
	s := content.NewStore()
	require.NoError(t, s.Add(content.New("posts/a.md", "A", mustDate(t, "2020-10-11T10:00:00+02:00"), false, "a")))
	require.NoError(t, s.Add(content.New("posts/b.md", "B", mustDate(t, "2020-12-21T09:00:00+01:00"), false, "b")))
	require.NoError(t, s.Add(content.New("posts/c.md", "C", mustDate(t, "2020-12-22T18:30:00+01:00"), true, "c")))
	return s
}

func TestListOrdersByDescendingDate(t *testing.T) {
	s := sampleStore(t)
	assert.Equal(t, []string{"posts/b", "posts/a"}, slugs(s.List(false)))
	assert.Equal(t, []string{"posts/c", "posts/b", "posts/a"}, slugs(s.List(true)))
}

func TestListComparesInstantsAcrossOffsets(t *testing.T) {
	s := content.NewStore()
	// 10:00+02:00 is 08:00Z, earlier than 09:00Z.
	require.NoError(t, s.Add(content.New("x.md", "X", mustDate(t, "2021-01-01T10:00:00+02:00"), false, "")))
	require.NoError(t, s.Add(content.New("y.md", "Y", mustDate(t, "2021-01-01T09:00:00Z"), false, "")))
	assert.Equal(t, []string{"y", "x"}, slugs(s.List(true)))
}

func TestListTieBreaksBySlug(t *testing.T) {
	s := content.NewStore()
	d := mustDate(t, "2022-05-01T00:00:00Z")
	for _, p := range []string{"posts/zeta.md", "posts/alpha.md", "posts/mid.md"} {
		require.NoError(t, s.Add(content.New(p, p, d, false, "")))
	}
	assert.Equal(t, []string{"posts/alpha", "posts/mid", "posts/zeta"}, slugs(s.List(false)))
}

func TestListIsRestartableSnapshot(t *testing.T) {
	s := sampleStore(t)
	seq := s.List(true)
	first := slugs(seq)
	require.NoError(t, s.Remove("posts/a"))
	require.NoError(t, s.Add(content.New("posts/d.md", "D", mustDate(t, "2030-01-01T00:00:00Z"), false, "")))
	assert.Equal(t, first, slugs(seq))
	assert.Equal(t, []string{"posts/d", "posts/c", "posts/b"}, slugs(s.List(true)))
}

func TestListStopsEarly(t *testing.T) {
	s := sampleStore(t)
	var got []string
	for d := range s.List(true) {
		got = append(got, d.Slug)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"posts/c", "posts/b"}, got)
}

func TestListNeverYieldsDraftsWhenExcluded(t *testing.T) {
	s := sampleStore(t)
	for d := range s.List(false) {
		assert.False(t, d.Draft, "draft %s listed", d.Slug)
	}
}

func TestAddDuplicateSlugLeavesStoreUnchanged(t *testing.T) {
	s := sampleStore(t)
	before := slugs(s.List(true))
	orig, err := s.Get("posts/a")
	require.NoError(t, err)

	err = s.Add(content.New("posts/a/index.md", "Other", mustDate(t, "2024-01-01T00:00:00Z"), false, ""))
	require.ErrorIs(t, err, content.ErrDuplicateSlug)
	var dup *content.DuplicateSlugError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "posts/a", dup.Slug)
	assert.Equal(t, "posts/a.md", dup.Existing)

	assert.Equal(t, before, slugs(s.List(true)))
	got, err := s.Get("posts/a")
	require.NoError(t, err)
	assert.Equal(t, orig.Title, got.Title)
}

func TestRemoveMissingSlug(t *testing.T) {
	s := sampleStore(t)
	before := slugs(s.List(true))
	err := s.Remove("posts/nope")
	require.ErrorIs(t, err, content.ErrNotFound)
	assert.NotErrorIs(t, err, content.ErrDuplicateSlug)
	assert.Equal(t, before, slugs(s.List(true)))
	assert.Equal(t, 3, s.Len())
}

func TestAddRemoveRoundTrip(t *testing.T) {
	s := sampleStore(t)
	before := slugs(s.List(true))
	require.NoError(t, s.Add(content.New("notes/e.md", "E", mustDate(t, "2021-06-01T00:00:00Z"), false, "")))
	require.NoError(t, s.Remove("notes/e"))
	assert.Equal(t, before, slugs(s.List(true)))
}

func TestStoreCopiesOnAdd(t *testing.T) {
	s := content.NewStore()
	d := content.New("a.md", "A", mustDate(t, "2021-06-01T00:00:00Z"), false, "")
	d.Extra = map[string]any{"tags": []string{"go"}}
	require.NoError(t, s.Add(d))
	d.Title = "changed"
	d.Extra["author"] = "someone"

	got, err := s.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "A", got.Title)
	assert.NotContains(t, got.Extra, "author")
}

func TestReplace(t *testing.T) {
	s := sampleStore(t)
	c, err := s.Get("posts/c")
	require.NoError(t, err)
	pub := c.Clone()
	pub.Draft = false
	require.NoError(t, s.Replace(pub))
	assert.True(t, slices.Contains(slugs(s.List(false)), "posts/c"))

	err = s.Replace(content.New("posts/zz.md", "ZZ", time.Now(), false, ""))
	assert.ErrorIs(t, err, content.ErrNotFound)
}

func TestZeroValueStore(t *testing.T) {
	var s content.Store
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, slugs(s.List(true)))
	assert.ErrorIs(t, s.Remove("posts/a"), content.ErrNotFound)

	require.NoError(t, s.Add(content.New("posts/a.md", "A", mustDate(t, "2020-10-11T12:00:00Z"), false, "")))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []string{"posts/a"}, slugs(s.List(false)))
}
