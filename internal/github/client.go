package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"folio/internal/domain"
)

// DefaultAPIURL is the public GitHub REST endpoint.
const DefaultAPIURL = "https://api.github.com"

const (
	defaultUserAgent = "folio (+https://github.com)"
	maxBodyBytes     = 8 << 20
)

// ErrNotArray is returned when the response body is valid but not a JSON array.
var ErrNotArray = errors.New("github: response is not a JSON array")

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("github: unexpected status %s", e.Status)
}

// Client lists public repositories through the GitHub REST API.
// Requests carry no timeout of their own; callers bound them with ctx.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the transport, e.g. for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// NewClient returns a client for the API rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		userAgent:  defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// repoPayload mirrors the fields folio reads from the "list repositories for
// a user" response. Description and language are nullable upstream.
type repoPayload struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	HTMLURL     string   `json:"html_url"`
	Language    *string  `json:"language"`
	Stars       int      `json:"stargazers_count"`
	Forks       int      `json:"forks_count"`
	UpdatedAt   string   `json:"updated_at"`
	Topics      []string `json:"topics"`
}

// ListRepositories performs one GET of /users/{owner}/repos sorted by last
// update. limit is passed as per_page; no further pages are requested.
func (c *Client) ListRepositories(ctx context.Context, owner string, limit int) ([]domain.Repository, error) {
	if owner == "" {
		return nil, errors.New("github: owner is empty")
	}

	q := url.Values{}
	q.Set("sort", "updated")
	if limit > 0 {
		q.Set("per_page", strconv.Itoa(limit))
	}
	endpoint := fmt.Sprintf("%s/users/%s/repos?%s", c.baseURL, url.PathEscape(owner), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("github: building request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github: fetching repositories for %s: %w", owner, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("github: reading response: %w", err)
	}

	return decodeRepositories(body)
}

func decodeRepositories(body []byte) ([]domain.Repository, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotArray
	}

	var payload []repoPayload
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return nil, fmt.Errorf("github: decoding repositories: %w", err)
	}

	repos := make([]domain.Repository, 0, len(payload))
	for _, p := range payload {
		if p.Name == "" {
			log.Warn("github: skipping record without name", "id", p.ID)
			continue
		}
		repos = append(repos, p.toDomain())
	}
	return repos, nil
}

func (p repoPayload) toDomain() domain.Repository {
	r := domain.Repository{
		ID:     p.ID,
		Name:   p.Name,
		URL:    p.HTMLURL,
		Stars:  p.Stars,
		Forks:  p.Forks,
		Topics: p.Topics,
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Language != nil {
		r.Language = *p.Language
	}
	if p.UpdatedAt != "" {
		t, err := time.Parse(time.RFC3339, p.UpdatedAt)
		if err != nil {
			log.Warn("github: unparsable updated_at", "repo", p.Name, "value", p.UpdatedAt)
		} else {
			r.UpdatedAt = t
		}
	}
	return r
}
