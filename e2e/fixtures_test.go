//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CreateTestWorkspace creates an isolated directory that also serves as $HOME
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	dir, err := os.MkdirTemp("", "folio-e2e-*")
	if err != nil {
		return "", err
	}
	tf.workspace = dir
	return dir, os.MkdirAll(filepath.Join(dir, "articles"), 0755)
}

// WriteArticle writes one article file into the workspace article directory
func (tf *TUITestFramework) WriteArticle(slug, title string, day int, tags ...string) error {
	quoted := make([]string, len(tags))
	for i, t := range tags {
		quoted[i] = fmt.Sprintf("%q", t)
	}
	data := fmt.Sprintf(`+++
slug = %q
title = %q
date = 2024-02-%02d
read_time = 4
tags = [%s]
excerpt = "About %s"
+++
# %s

The body of %s.
`, slug, title, day, strings.Join(quoted, ", "), title, title, slug)
	return os.WriteFile(filepath.Join(tf.workspace, "articles", slug+".md"), []byte(data), 0644)
}

// WriteConfig writes a config reading repositories of octocat from apiURL
// and articles from the workspace
func (tf *TUITestFramework) WriteConfig(apiURL string) (string, error) {
	path := filepath.Join(tf.workspace, "config.toml")
	data := fmt.Sprintf(`version = 1

[github]
owner = "octocat"
api_url = %q
home_limit = 3
list_limit = 20

[content]
dir = %q

[log]
file = %q
level = "debug"
`, apiURL, filepath.Join(tf.workspace, "articles"), filepath.Join(tf.workspace, "folio.log"))
	return path, os.WriteFile(path, []byte(data), 0644)
}

// fakeGitHub serves the repository list of octocat. An empty names list
// makes every request fail.
func fakeGitHub(t *testing.T, names ...string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(names) == 0 || r.URL.Path != "/users/octocat/repos" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		repos := make([]map[string]any, len(names))
		for i, n := range names {
			repos[i] = map[string]any{
				"id":               i + 1,
				"name":             n,
				"description":      "the " + n + " project",
				"html_url":         "https://github.com/octocat/" + n,
				"language":         "Go",
				"stargazers_count": i,
				"forks_count":      0,
				"updated_at":       "2024-02-01T00:00:00Z",
				"topics":           []string{"demo"},
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(repos)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// startWithFixtures prepares a workspace with articles and a fake GitHub and
// starts the app with args appended
func startWithFixtures(t *testing.T, tf *TUITestFramework, repoNames []string, args ...string) {
	t.Helper()
	_, err := tf.CreateTestWorkspace()
	if err != nil {
		t.Fatalf("creating workspace: %v", err)
	}
	for _, a := range []struct {
		slug, title string
		day         int
		tags        []string
	}{
		{"alpha-notes", "Alpha notes", 1, []string{"go"}},
		{"beta-design", "Beta design", 2, []string{"css", "design"}},
		{"gamma-tools", "Gamma tools", 3, []string{"go", "tools"}},
	} {
		if err := tf.WriteArticle(a.slug, a.title, a.day, a.tags...); err != nil {
			t.Fatalf("writing article: %v", err)
		}
	}

	cfg, err := tf.WriteConfig(fakeGitHub(t, repoNames...).URL)
	if err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if err := tf.StartApp(append([]string{"--config", cfg}, args...)...); err != nil {
		t.Fatalf("starting app: %v", err)
	}
}
