package github

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"folio/internal/domain"
	"folio/internal/logic"
)

// Result is the outcome of one load. Repos is empty whenever Err is set.
type Result struct {
	Repos []domain.Repository
	Err   error
}

// Collection is the degraded projection: the repositories on success and an
// empty collection on any failure.
func (r Result) Collection() []domain.Repository {
	if r.Err != nil || r.Repos == nil {
		return []domain.Repository{}
	}
	return r.Repos
}

// Loader binds a repository source to one owner and page size.
type Loader struct {
	source logic.RepositoryLoader
	owner  string
	limit  int
}

// NewLoader returns a loader reading limit repositories of owner.
func NewLoader(source logic.RepositoryLoader, owner string, limit int) *Loader {
	return &Loader{source: source, owner: owner, limit: limit}
}

// Owner returns the account the loader reads.
func (l *Loader) Owner() string { return l.owner }

// Load performs exactly one read. Failures are captured in the Result and
// never retried.
func (l *Loader) Load(ctx context.Context) Result {
	start := time.Now()
	repos, err := l.source.ListRepositories(ctx, l.owner, l.limit)
	if err != nil {
		log.Warn("repository load failed", "owner", l.owner, "limit", l.limit, "err", err)
		return Result{Repos: []domain.Repository{}, Err: err}
	}
	log.Info("repositories loaded", "owner", l.owner, "count", len(repos), "took", time.Since(start))
	return Result{Repos: repos}
}
