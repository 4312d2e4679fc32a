package logic

import (
	"context"
	"errors"

	"folio/internal/domain"
)

// ErrNotFound is returned when a lookup by key has no matching item.
var ErrNotFound = errors.New("not found")

// Item is anything the browsing pipeline can filter.
type Item interface {
	// Key is the stable identifier. Uniqueness within a collection is assumed, not enforced.
	Key() string
	// SearchText returns the fields the free-text query is matched against.
	SearchText() []string
	// Labels returns the item's classification labels in order.
	Labels() []string
}

// ArticleStore resolves articles by slug. Detail views receive only the slug
// and re-resolve the record here.
type ArticleStore interface {
	GetArticle(slug string) (domain.Article, error)
	GetAllArticles() []domain.Article
	ReplaceAll(articles []domain.Article)
}

// RepositoryLoader performs one read of an owner's repositories.
type RepositoryLoader interface {
	ListRepositories(ctx context.Context, owner string, limit int) ([]domain.Repository, error)
}
