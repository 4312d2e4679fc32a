package state

// Page identifies the mounted view
type Page int

const (
	PageHome Page = iota
	PageBlog
	PageProjects
	PageArticle
)

func (p Page) String() string {
	switch p {
	case PageHome:
		return "home"
	case PageBlog:
		return "blog"
	case PageProjects:
		return "projects"
	case PageArticle:
		return "article"
	default:
		return "unknown"
	}
}

// ParsePage maps a page name to a Page. ok is false for unknown names.
func ParsePage(name string) (Page, bool) {
	switch name {
	case "", "home":
		return PageHome, true
	case "blog":
		return PageBlog, true
	case "projects":
		return PageProjects, true
	default:
		return PageHome, false
	}
}

// AppState contains the UI state that is not owned by a browsing controller
type AppState struct {
	Page     Page
	PrevPage Page // where the article view returns to

	// Article hand-off: only the slug travels between views
	ArticleSlug string

	// Liveness guard for repository loads. LiveLoadID is the load owned by
	// the mounted view; zero means none.
	NextLoadID uint64
	LiveLoadID uint64

	// Article collection status
	ArticlesLoaded bool
	ArticlesErr    error

	// List cursor and scrolling
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int

	StatusMessage string
	StatusIsError bool
	InPager       bool
}

// NewAppState creates the initial application state
func NewAppState() *AppState {
	return &AppState{Page: PageHome}
}

// BeginLoad allocates the id of a new load and makes it the live one
func (s *AppState) BeginLoad() uint64 {
	s.NextLoadID++
	s.LiveLoadID = s.NextLoadID
	return s.LiveLoadID
}

// EndLoad clears the live load and returns the id it held
func (s *AppState) EndLoad() uint64 {
	id := s.LiveLoadID
	s.LiveLoadID = 0
	return id
}

// IsLive reports whether a completed load still belongs to the mounted view
func (s *AppState) IsLive(loadID uint64) bool {
	return loadID != 0 && loadID == s.LiveLoadID
}

// SetStatus replaces the footer status message
func (s *AppState) SetStatus(msg string, isError bool) {
	s.StatusMessage = msg
	s.StatusIsError = isError
}

// ResetCursor moves the cursor back to the top
func (s *AppState) ResetCursor() {
	s.SelectedIndex = 0
	s.ViewportOffset = 0
}
