package logic

import (
	"fmt"
	"slices"
	"sync"

	"folio/internal/domain"
)

// MemoryArticleStore is an in-memory implementation of ArticleStore
type MemoryArticleStore struct {
	mu       sync.RWMutex
	articles []domain.Article
	bySlug   map[string]int
}

// NewMemoryArticleStore creates a store holding articles in the given order
func NewMemoryArticleStore(articles []domain.Article) *MemoryArticleStore {
	s := &MemoryArticleStore{}
	s.ReplaceAll(articles)
	return s
}

// GetArticle returns the article with the given slug or ErrNotFound
func (s *MemoryArticleStore) GetArticle(slug string) (domain.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.bySlug[slug]
	if !ok {
		return domain.Article{}, fmt.Errorf("article %q: %w", slug, ErrNotFound)
	}
	return s.articles[i], nil
}

// GetAllArticles returns a copy of all articles in source order
func (s *MemoryArticleStore) GetAllArticles() []domain.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.articles)
}

// ReplaceAll swaps the whole collection. The first article wins on duplicate slugs.
func (s *MemoryArticleStore) ReplaceAll(articles []domain.Article) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.articles = slices.Clone(articles)
	s.bySlug = make(map[string]int, len(articles))
	for i, a := range s.articles {
		if _, dup := s.bySlug[a.Slug]; !dup {
			s.bySlug[a.Slug] = i
		}
	}
}
