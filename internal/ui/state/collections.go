package state

import (
	"folio/internal/domain"
	"folio/internal/logic"
)

// Collections holds the browsing controllers and the article store the views
// read from. Only the UI event loop touches them.
type Collections struct {
	Articles *logic.Controller[domain.Article]
	// Repos belongs to whichever page has a repository mount (home or projects)
	Repos *logic.Controller[domain.Repository]
	Store logic.ArticleStore
}

// NewCollections creates unresolved controllers around store
func NewCollections(store logic.ArticleStore) *Collections {
	return &Collections{
		Articles: logic.NewController[domain.Article](),
		Repos:    logic.NewController[domain.Repository](),
		Store:    store,
	}
}
