package cli

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reposJSON = `[
  {"id": 1, "name": "folio", "description": "personal site", "html_url": "https://github.com/octocat/folio",
   "language": "Go", "stargazers_count": 12, "forks_count": 2, "updated_at": "2024-03-01T10:00:00Z", "topics": ["blog"]},
  {"id": 2, "name": "dotfiles", "description": null, "html_url": "https://github.com/octocat/dotfiles",
   "language": null, "stargazers_count": 0, "forks_count": 0, "updated_at": "2024-02-01T10:00:00Z", "topics": []}
]`

const articleFile = `+++
slug = "%s"
title = "%s"
date = 2024-01-%02d
read_time = 3
tags = [%s]
excerpt = "%s"
+++
# %s

Body of %s.
`

type fixture struct {
	dir      string
	config   string
	out      string
	requests int
}

// newFixture writes a config pointing at a fake GitHub API and a directory
// of two articles
func newFixture(t *testing.T, handler http.HandlerFunc) *fixture {
	t.Helper()
	prev := log.Default()
	t.Cleanup(func() { log.SetDefault(prev) })

	f := &fixture{dir: t.TempDir()}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.requests++
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	articles := filepath.Join(f.dir, "articles")
	require.NoError(t, os.MkdirAll(articles, 0755))
	writeArticle(t, articles, "go-notes", "Go notes", 5, `"go", "notes"`, "notes on go")
	writeArticle(t, articles, "css-grid", "CSS grid", 9, `"css"`, "layout tricks")

	f.out = filepath.Join(f.dir, "public")
	f.config = filepath.Join(f.dir, "config.toml")
	cfg := fmt.Sprintf(`version = 1

[github]
owner = "octocat"
api_url = %q
home_limit = 1
list_limit = 10

[content]
dir = %q

[export]
out_dir = %q

[log]
level = "error"
`, srv.URL, articles, f.out)
	require.NoError(t, os.WriteFile(f.config, []byte(cfg), 0644))
	return f
}

func writeArticle(t *testing.T, dir, slug, title string, day int, tags, excerpt string) {
	t.Helper()
	data := fmt.Sprintf(articleFile, slug, title, day, tags, excerpt, title, slug)
	require.NoError(t, os.WriteFile(filepath.Join(dir, slug+".md"), []byte(data), 0644))
}

func serveRepos(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/users/octocat/repos" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(reposJSON))
}

func run(t *testing.T, f *fixture, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config", f.config}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestReposCommand(t *testing.T) {
	f := newFixture(t, serveRepos)

	out, err := run(t, f, "repos")
	require.NoError(t, err)
	assert.Contains(t, out, "folio")
	assert.Contains(t, out, "dotfiles")
	assert.Contains(t, out, "No description")

	out, err = run(t, f, "repos", "--query", "GO")
	require.NoError(t, err)
	assert.Contains(t, out, "folio")
	assert.NotContains(t, out, "dotfiles")

	out, err = run(t, f, "repos", "--topic", "blog")
	require.NoError(t, err)
	assert.NotContains(t, out, "dotfiles")

	out, err = run(t, f, "repos", "--query", "zzz")
	require.NoError(t, err)
	assert.Contains(t, out, "No projects match your search.")
}

func TestReposCommandDegradesOnUpstreamFailure(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	})

	out, err := run(t, f, "repos")
	require.NoError(t, err)
	assert.Contains(t, out, "Could not load repositories for octocat")
	assert.Equal(t, 1, f.requests, "a failed load is not retried")
}

func TestReposCommandOwnerOverride(t *testing.T) {
	f := newFixture(t, serveRepos)

	out, err := run(t, f, "--owner", "someone-else", "repos")
	require.NoError(t, err)
	assert.Contains(t, out, "Could not load repositories for someone-else")
}

func TestArticlesCommand(t *testing.T) {
	f := newFixture(t, serveRepos)

	out, err := run(t, f, "articles")
	require.NoError(t, err)
	assert.Contains(t, out, "go-notes")
	assert.Contains(t, out, "css-grid")

	out, err = run(t, f, "articles", "--tag", "css")
	require.NoError(t, err)
	assert.Contains(t, out, "css-grid")
	assert.NotContains(t, out, "go-notes")

	out, err = run(t, f, "articles", "--query", "nothing")
	require.NoError(t, err)
	assert.Contains(t, out, "No articles match your filters.")
}

func TestArticleShowCommand(t *testing.T) {
	f := newFixture(t, serveRepos)

	out, err := run(t, f, "articles", "show", "go-notes", "--style", "notty")
	require.NoError(t, err)
	assert.Contains(t, out, "Go notes")
	assert.Contains(t, out, "#go #notes")
	assert.Contains(t, out, "Body of go-notes.")

	_, err = run(t, f, "articles", "show", "missing")
	assert.Error(t, err)
}

func TestExportCommand(t *testing.T) {
	f := newFixture(t, serveRepos)

	out, err := run(t, f, "export")
	require.NoError(t, err)
	assert.Contains(t, out, "(2 articles, 3 tags)")
	assert.Equal(t, 1, f.requests)

	assert.FileExists(t, filepath.Join(f.out, "blog", "go-notes", "index.html"))
	assert.FileExists(t, filepath.Join(f.out, "blog", "tag", "css", "index.html"))

	projects, err := os.ReadFile(filepath.Join(f.out, "projects", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(projects), "dotfiles")
}

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")
	f := &fixture{config: path}

	out, err := run(t, f, "--owner", "octocat", "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "octocat")

	_, err = run(t, f, "config", "init")
	assert.ErrorContains(t, err, "already exists")

	_, err = run(t, f, "config", "init", "--force")
	assert.NoError(t, err)

	out, err = run(t, f, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "api_url")

	out, err = run(t, f, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, path, strings.TrimSpace(out))
}

func TestUnknownStartPage(t *testing.T) {
	f := newFixture(t, serveRepos)

	_, err := run(t, f, "--page", "settings")
	assert.ErrorContains(t, err, "unknown page")
}
