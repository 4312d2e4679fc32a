package site

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"folio/internal/domain"
	"folio/internal/logic"
)

type fakeRepos struct {
	mu     sync.Mutex
	repos  []domain.Repository
	err    error
	calls  int
	limits []int
}

func (f *fakeRepos) ListRepositories(_ context.Context, _ string, limit int) ([]domain.Repository, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.limits = append(f.limits, limit)
	if f.err != nil {
		return nil, f.err
	}
	if len(f.repos) > limit {
		return f.repos[:limit], nil
	}
	return f.repos, nil
}

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
}

func testArticles() []domain.Article {
	return []domain.Article{
		{Slug: "welcome", Title: "Welcome", Date: day(1), ReadTime: 2, Tags: []string{"intro", "life"}, Excerpt: "hello there", Body: "# Welcome\n\nFirst **post**."},
		{Slug: "nextjs", Title: "Building with Next.js", Date: day(10), ReadTime: 8, Tags: []string{"react", "tutorial"}, Excerpt: "a static blog", Body: "Some `code`."},
		{Slug: "plain-web", Title: "HTML CSS JS", Date: day(5), ReadTime: 5, Tags: []string{"tutorial"}, Excerpt: "no framework", Body: "Just the web."},
	}
}

func testRepos() []domain.Repository {
	return []domain.Repository{
		{Name: "folio", Description: "personal site", Language: "Go", Stars: 12, Forks: 1, UpdatedAt: day(3), Topics: []string{"blog"}},
		{Name: "dotfiles", Language: "Shell"},
		{Name: "widgets", Description: "ui kit", Language: "TypeScript"},
	}
}

func newTestSite(t *testing.T, repos logic.RepositoryLoader, articles []domain.Article) *Site {
	t.Helper()
	s, err := New(logic.NewMemoryArticleStore(articles), repos, Options{Owner: "octocat", HomeLimit: 2, ListLimit: 10})
	require.NoError(t, err)
	return s
}

var errUpstream = errors.New("upstream unavailable")
