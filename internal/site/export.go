package site

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"folio/internal/content"
	"folio/internal/domain"
	"folio/internal/logic"
)

// fixedSource replays one completed load so several pages share it
type fixedSource struct {
	repos []domain.Repository
	err   error
}

func (f fixedSource) ListRepositories(_ context.Context, _ string, limit int) ([]domain.Repository, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit > 0 && len(f.repos) > limit {
		return f.repos[:limit], nil
	}
	return f.repos, nil
}

// ExportStats summarizes one export run
type ExportStats struct {
	Pages    int
	Articles int
	Tags     int
	RepoErr  error // the repository load failure rendered into the pages, if any
}

// Export writes the static site into outDir. Repositories are fetched once
// with the list limit; the home page shows the first HomeLimit of them.
func (s *Site) Export(ctx context.Context, outDir string) (ExportStats, error) {
	var stats ExportStats
	links := Links{static: true}

	write := func(rel string, render func(*bytes.Buffer) error) error {
		var buf bytes.Buffer
		if err := render(&buf); err != nil {
			return err
		}
		dst := filepath.Join(outDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(dst), err)
		}
		if err := os.WriteFile(dst, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", dst, err)
		}
		stats.Pages++
		log.Debug("exported page", "path", rel)
		return nil
	}

	repos := s.loadRepos(ctx, s.opts.ListLimit)
	stats.RepoErr = repos.Err()

	home := *s
	home.repos = fixedSource{repos: repos.Source(), err: repos.Err()}
	if err := write("index.html", func(b *bytes.Buffer) error { return home.RenderHome(ctx, b, links) }); err != nil {
		return stats, err
	}

	if err := write("projects/index.html", func(b *bytes.Buffer) error {
		return s.renderProjects(b, repos, "", links)
	}); err != nil {
		return stats, err
	}

	if err := write("blog/index.html", func(b *bytes.Buffer) error {
		return s.RenderBlog(b, logic.FilterState{}, links)
	}); err != nil {
		return stats, err
	}

	articles := s.articleController()
	for _, tag := range articles.Labels() {
		if !content.ValidSlug(tag) {
			log.Warn("skipping tag page with unsafe name", "tag", tag)
			continue
		}
		f := logic.FilterState{Label: tag}
		if err := write("blog/tag/"+tag+"/index.html", func(b *bytes.Buffer) error {
			return s.RenderBlog(b, f, links)
		}); err != nil {
			return stats, err
		}
		stats.Tags++
	}

	for _, a := range articles.Source() {
		slug := a.Slug
		if !content.ValidSlug(slug) {
			log.Warn("skipping article page with unsafe slug", "slug", slug)
			continue
		}
		if err := write("blog/"+slug+"/index.html", func(b *bytes.Buffer) error {
			return s.RenderArticle(b, slug, links)
		}); err != nil {
			return stats, err
		}
		stats.Articles++
	}

	if err := os.WriteFile(filepath.Join(outDir, "style.css"), Stylesheet(), 0644); err != nil {
		return stats, fmt.Errorf("writing style.css: %w", err)
	}

	log.Info("site exported", "dir", outDir, "pages", stats.Pages, "articles", stats.Articles, "tags", stats.Tags)
	return stats, nil
}
