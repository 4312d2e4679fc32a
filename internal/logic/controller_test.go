package logic

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/domain"
)

func TestControllerStartsUninitialized(t *testing.T) {
	c := NewController[testItem]()
	assert.Equal(t, Uninitialized, c.State())
	assert.Empty(t, c.View())

	// Filtering before resolution never yields a no-results state
	c.SetQuery("anything")
	assert.Equal(t, Uninitialized, c.State())
}

func TestControllerEmptyStatesAreDistinct(t *testing.T) {
	empty := NewController[testItem]()
	empty.Resolve(nil, nil)
	assert.Equal(t, LoadedEmpty, empty.State())

	filtered := NewController[testItem]()
	filtered.Resolve([]testItem{{key: "A", labels: []string{"x"}}}, nil)
	filtered.SelectLabel("y")
	assert.Equal(t, LoadedFilteredEmpty, filtered.State())

	assert.NotEqual(t, empty.State(), filtered.State())
	assert.NotEqual(t, empty.State().String(), filtered.State().String())
}

func TestControllerFilterNeverReachesLoadedEmpty(t *testing.T) {
	c := NewController[testItem]()
	c.Resolve([]testItem{}, nil)

	c.SetQuery("zzz")
	assert.Equal(t, LoadedEmpty, c.State())
	c.SelectLabel("nope")
	assert.Equal(t, LoadedEmpty, c.State())
	c.ClearFilters()
	assert.Equal(t, LoadedEmpty, c.State())
}

func TestControllerLoadFailed(t *testing.T) {
	c := NewController[testItem]()
	boom := errors.New("boom")
	c.Resolve([]testItem{{key: "ignored"}}, boom)

	assert.Equal(t, LoadFailed, c.State())
	assert.ErrorIs(t, c.Err(), boom)
	assert.Empty(t, c.Source())
	assert.Empty(t, c.Labels())

	c.SetQuery("x")
	assert.Equal(t, LoadFailed, c.State())
}

func TestControllerSingleLabelSelection(t *testing.T) {
	c := NewController[testItem]()
	c.Resolve([]testItem{
		{key: "1", labels: []string{"a"}},
		{key: "2", labels: []string{"b"}},
		{key: "3", labels: []string{"a", "b"}},
	}, nil)

	c.SelectLabel("a")
	assert.Equal(t, []string{"1", "3"}, keys(c.View()))

	c.SelectLabel("b")
	assert.Equal(t, "b", c.Filter().Label)
	assert.Equal(t, []string{"2", "3"}, keys(c.View()))

	c.ClearLabel()
	assert.Equal(t, "", c.Filter().Label)
	assert.Equal(t, []string{"1", "2", "3"}, keys(c.View()))
}

func TestControllerResolveReplacesWholesale(t *testing.T) {
	items := []testItem{{key: "1", labels: []string{"old"}}}
	c := NewController[testItem]()
	c.Resolve(items, nil)

	items[0] = testItem{key: "mutated"}
	assert.Equal(t, "1", c.Source()[0].key)

	c.Resolve([]testItem{{key: "2", labels: []string{"new"}}}, nil)
	assert.Equal(t, []string{"new"}, c.Labels())
	assert.Equal(t, []string{"2"}, keys(c.View()))
}

func TestControllerResetAndLookup(t *testing.T) {
	c := NewController[testItem]()
	c.Resolve([]testItem{{key: "1"}, {key: "2"}}, nil)
	c.SetQuery("nothing matches this")

	// Lookup ignores filters
	it, err := c.Lookup("2")
	require.NoError(t, err)
	assert.Equal(t, "2", it.key)

	_, err = c.Lookup("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	c.Reset()
	assert.Equal(t, Uninitialized, c.State())
	assert.Equal(t, FilterState{}, c.Filter())
}

func TestEndToEndArticleScenario(t *testing.T) {
	articles := []domain.Article{
		{Slug: "intro-x", Title: "Intro to X", Tags: []string{"intro"}, Date: time.Now()},
		{Slug: "advanced-y", Title: "Advanced Y", Tags: []string{"advanced", "tutorial"}, Date: time.Now()},
	}
	c := NewController[domain.Article]()
	c.Resolve(articles, nil)
	require.Equal(t, LoadedShowing, c.State())

	c.SetQuery("adv")
	assert.Equal(t, []string{"advanced-y"}, keys(c.View()))

	c.SetQuery("")
	c.SelectLabel("intro")
	assert.Equal(t, []string{"intro-x"}, keys(c.View()))

	c.SelectLabel("tutorial")
	c.SetQuery("intro")
	assert.Empty(t, c.View())
	assert.Equal(t, LoadedFilteredEmpty, c.State())
}

func TestRepositoryLanguageIsSearchableButNotALabel(t *testing.T) {
	repos := []domain.Repository{
		{Name: "tool", Language: "Go", Topics: []string{"cli"}},
		{Name: "site", Description: "personal blog", Language: "TypeScript"},
	}
	c := NewController[domain.Repository]()
	c.Resolve(repos, nil)

	assert.Equal(t, []string{"cli"}, c.Labels())

	c.SetQuery("typescript")
	assert.Equal(t, []string{"site"}, keys(c.View()))
	c.SetQuery("BLOG")
	assert.Equal(t, []string{"site"}, keys(c.View()))
}

func keys[T Item](items []T) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Key()
	}
	return out
}
