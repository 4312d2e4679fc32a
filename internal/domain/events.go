package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventReposRequested EventType = "ReposRequested"
	EventReposLoaded    EventType = "ReposLoaded"
	EventReposCancelled EventType = "ReposCancelled"
	EventArticlesLoaded EventType = "ArticlesLoaded"
	EventError          EventType = "Error"
	EventConfigLoaded   EventType = "ConfigLoaded"
	EventConfigSaved    EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ReposRequestedEvent asks the repository loader for one load.
// LoadID identifies the view mount that asked for it.
type ReposRequestedEvent struct {
	LoadID uint64
	Owner  string
	Limit  int
}

func (e ReposRequestedEvent) Type() EventType { return EventReposRequested }

// ReposLoadedEvent carries the outcome of one load. Repos is empty whenever Err is set.
type ReposLoadedEvent struct {
	LoadID uint64
	Owner  string
	Repos  []Repository
	Err    error
}

func (e ReposLoadedEvent) Type() EventType { return EventReposLoaded }

// ReposCancelledEvent is published when the view that requested LoadID is torn down
type ReposCancelledEvent struct {
	LoadID uint64
}

func (e ReposCancelledEvent) Type() EventType { return EventReposCancelled }

// ArticlesLoadedEvent is emitted once article discovery finishes
type ArticlesLoadedEvent struct {
	Articles []Article
	Source   string // directory or "embedded"
	Err      error
}

func (e ArticlesLoadedEvent) Type() EventType { return EventArticlesLoaded }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path  string
	Owner string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
