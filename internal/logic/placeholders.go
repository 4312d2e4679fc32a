package logic

import "fmt"

// ArticlePlaceholder returns the text shown instead of the article list for
// a state with nothing to list. It is empty for LoadedShowing.
func ArticlePlaceholder(s ViewState, err error) string {
	switch s {
	case Uninitialized:
		return "Loading articles..."
	case LoadedEmpty:
		return "No articles yet, stay tuned."
	case LoadFailed:
		return fmt.Sprintf("Could not load articles: %v", err)
	case LoadedFilteredEmpty:
		return "No articles match your filters. Clear the search or pick another tag."
	default:
		return ""
	}
}

// RepositoryPlaceholder is the repository counterpart of ArticlePlaceholder.
// The no-data states name the config key that selects the account.
func RepositoryPlaceholder(s ViewState, owner string, err error) string {
	switch s {
	case Uninitialized:
		return fmt.Sprintf("Loading repositories for %s...", owner)
	case LoadedEmpty:
		return fmt.Sprintf("No public repositories for %s. Set github.owner in your config to show another account.", owner)
	case LoadFailed:
		return fmt.Sprintf("Could not load repositories for %s: %v. Check github.owner in your config.", owner, err)
	case LoadedFilteredEmpty:
		return "No projects match your search. Try another keyword."
	default:
		return ""
	}
}
