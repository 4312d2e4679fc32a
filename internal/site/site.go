// Package site renders the portfolio as HTML, either served live or
// exported to a directory of static files.
package site

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"slices"
	"time"

	"folio/internal/content"
	"folio/internal/domain"
	"folio/internal/github"
	"folio/internal/logic"
	"folio/internal/markdown"
)

//go:embed templates/*.html static/style.css
var assets embed.FS

const homeArticles = 3

var pageNames = []string{"home", "blog", "article", "notfound", "projects"}

// Options configures a Site
type Options struct {
	Owner     string
	HomeLimit int
	ListLimit int
}

// Site renders pages from an article store and a repository source
type Site struct {
	articles logic.ArticleStore
	repos    logic.RepositoryLoader
	opts     Options
	pages    map[string]*template.Template
}

// New parses the embedded templates
func New(articles logic.ArticleStore, repos logic.RepositoryLoader, opts Options) (*Site, error) {
	funcs := template.FuncMap{
		"date": func(t time.Time) string { return t.Format("2006-01-02") },
		"languageColor": func(lang string) template.CSS {
			// Palette values are fixed hex colors
			return template.CSS(domain.LanguageColor(lang))
		},
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New(name).Funcs(funcs).ParseFS(assets, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", name, err)
		}
		pages[name] = t
	}

	return &Site{articles: articles, repos: repos, opts: opts, pages: pages}, nil
}

// Stylesheet returns the embedded style.css
func Stylesheet() []byte {
	data, err := assets.ReadFile("static/style.css")
	if err != nil {
		panic(err) // embedded at build time
	}
	return data
}

// page is the data every template sees
type page struct {
	Title  string
	Active string
	Owner  string
	Static bool
	Links  Links
}

type tagLink struct {
	Name   string
	Href   string
	Active bool
}

type articleCard struct {
	Article domain.Article
	Href    string
	Tags    []tagLink
}

type homePage struct {
	page
	IntroTitle         string
	IntroText          string
	Repos              []domain.Repository
	RepoPlaceholder    string
	Articles           []articleCard
	ArticlePlaceholder string
}

type blogPage struct {
	page
	Query       string
	Label       string
	Labels      []tagLink
	Articles    []articleCard
	Placeholder string
}

type articlePage struct {
	page
	Article domain.Article
	Tags    []tagLink
	Body    template.HTML
}

type notFoundPage struct {
	page
	Slug string
}

type projectsPage struct {
	page
	Query       string
	Repos       []domain.Repository
	Placeholder string
}

func (s *Site) base(title, active string, links Links) page {
	return page{Title: title, Active: active, Owner: s.opts.Owner, Static: links.static, Links: links}
}

func (s *Site) render(w io.Writer, name string, data any) error {
	// Render to a buffer so a failing template never leaves half a page
	var buf bytes.Buffer
	if err := s.pages[name].ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// loadRepos performs the single repository load of one page render
func (s *Site) loadRepos(ctx context.Context, limit int) *logic.Controller[domain.Repository] {
	res := github.NewLoader(s.repos, s.opts.Owner, limit).Load(ctx)
	c := logic.NewController[domain.Repository]()
	c.Resolve(res.Collection(), res.Err)
	return c
}

func (s *Site) articleController() *logic.Controller[domain.Article] {
	c := logic.NewController[domain.Article]()
	c.Resolve(s.articles.GetAllArticles(), nil)
	return c
}

func (s *Site) cards(articles []domain.Article, activeTag string, links Links) []articleCard {
	cards := make([]articleCard, len(articles))
	for i, a := range articles {
		cards[i] = articleCard{Article: a, Href: links.Article(a.Slug), Tags: tagLinks(a.Tags, activeTag, links)}
	}
	return cards
}

func tagLinks(tags []string, active string, links Links) []tagLink {
	out := make([]tagLink, len(tags))
	for i, t := range tags {
		out[i] = tagLink{Name: t, Href: links.Tag(t), Active: t == active}
	}
	return out
}

// RenderHome writes the home page: intro, latest repositories and latest articles
func (s *Site) RenderHome(ctx context.Context, w io.Writer, links Links) error {
	repos := s.loadRepos(ctx, s.opts.HomeLimit)
	articles := s.articleController()

	latest := slices.Clone(articles.Source())
	slices.SortStableFunc(latest, func(a, b domain.Article) int { return b.Date.Compare(a.Date) })
	if len(latest) > homeArticles {
		latest = latest[:homeArticles]
	}

	return s.render(w, "home", homePage{
		page:               s.base("Home", "home", links),
		IntroTitle:         content.IntroTitle,
		IntroText:          content.IntroText,
		Repos:              repos.View(),
		RepoPlaceholder:    logic.RepositoryPlaceholder(repos.State(), s.opts.Owner, repos.Err()),
		Articles:           s.cards(latest, "", links),
		ArticlePlaceholder: logic.ArticlePlaceholder(articles.State(), articles.Err()),
	})
}

// RenderBlog writes the article list filtered by f
func (s *Site) RenderBlog(w io.Writer, f logic.FilterState, links Links) error {
	c := s.articleController()
	c.SetQuery(f.Query)
	if f.Label != "" {
		c.SelectLabel(f.Label)
	}

	title := "Blog"
	if f.Label != "" {
		title = "#" + f.Label
	}
	return s.render(w, "blog", blogPage{
		page:        s.base(title, "blog", links),
		Query:       f.Query,
		Label:       f.Label,
		Labels:      tagLinks(c.Labels(), f.Label, links),
		Articles:    s.cards(c.View(), f.Label, links),
		Placeholder: logic.ArticlePlaceholder(c.State(), c.Err()),
	})
}

// RenderArticle writes the detail page of slug. The error wraps
// logic.ErrNotFound for unknown slugs; nothing is written then.
func (s *Site) RenderArticle(w io.Writer, slug string, links Links) error {
	a, err := s.articles.GetArticle(slug)
	if err != nil {
		return err
	}
	body, err := markdown.HTML(a.Body)
	if err != nil {
		return fmt.Errorf("article %s: %w", slug, err)
	}
	return s.render(w, "article", articlePage{
		page:    s.base(a.Title, "blog", links),
		Article: a,
		Tags:    tagLinks(a.Tags, "", links),
		Body:    body,
	})
}

// RenderNotFound writes the page shown for an unknown slug
func (s *Site) RenderNotFound(w io.Writer, slug string, links Links) error {
	return s.render(w, "notfound", notFoundPage{
		page: s.base("Not found", "blog", links),
		Slug: slug,
	})
}

// RenderProjects writes the repository list filtered by query
func (s *Site) RenderProjects(ctx context.Context, w io.Writer, query string, links Links) error {
	repos := s.loadRepos(ctx, s.opts.ListLimit)
	return s.renderProjects(w, repos, query, links)
}

func (s *Site) renderProjects(w io.Writer, repos *logic.Controller[domain.Repository], query string, links Links) error {
	repos.SetQuery(query)
	return s.render(w, "projects", projectsPage{
		page:        s.base("Projects", "projects", links),
		Query:       query,
		Repos:       repos.View(),
		Placeholder: logic.RepositoryPlaceholder(repos.State(), s.opts.Owner, repos.Err()),
	})
}
