package discovery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/charmbracelet/log"

	"folio/internal/content"
	"folio/internal/domain"
	"folio/internal/eventbus"
)

// SourceEmbedded names the article set compiled into the binary.
const SourceEmbedded = "embedded"

// maxDepth bounds how far below the root article files are looked for
const maxDepth = 3

// DiscoveryService finds article files and publishes them as one collection
type DiscoveryService interface {
	// Discover scans dir (or the embedded set when dir is empty) and
	// publishes an ArticlesLoadedEvent with the outcome.
	Discover(ctx context.Context, dir string) ([]domain.Article, error)
}

// discoveryService is the concrete implementation
type discoveryService struct {
	bus eventbus.EventBus
}

// NewDiscoveryService creates a new discovery service
func NewDiscoveryService(bus eventbus.EventBus) DiscoveryService {
	return &discoveryService{bus: bus}
}

// Discover runs one scan and publishes the outcome. A failed scan publishes
// an empty collection together with the error.
func (ds *discoveryService) Discover(ctx context.Context, dir string) ([]domain.Article, error) {
	fsys, source := content.Embedded(), SourceEmbedded
	if dir != "" {
		fsys, source = os.DirFS(dir), dir
	}

	articles, err := Scan(ctx, fsys)
	if err != nil {
		log.Error("article discovery failed", "source", source, "err", err)
		articles = []domain.Article{}
		ds.bus.Publish(eventbus.ErrorEvent{Message: fmt.Sprintf("Failed to load articles from %s", source), Err: err})
	} else {
		log.Info("articles discovered", "source", source, "count", len(articles))
	}

	ds.bus.Publish(eventbus.ArticlesLoadedEvent{Articles: articles, Source: source, Err: err})
	return articles, err
}

// Scan walks fsys for *.md files in lexical path order and parses each one.
// Hidden directories are skipped. The first unparsable file aborts the scan.
func Scan(ctx context.Context, fsys fs.FS) ([]domain.Article, error) {
	articles := make([]domain.Article, 0)
	seen := make(map[string]string)

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			return err
		}

		if d.IsDir() {
			if p == "." {
				return nil
			}
			if strings.HasPrefix(d.Name(), ".") || strings.Count(p, "/") >= maxDepth {
				return fs.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(d.Name(), ".") || !strings.EqualFold(path.Ext(p), ".md") {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("reading %s: %w", p, err)
		}
		a, err := content.Parse(p, data)
		if err != nil {
			return err
		}
		if prev, dup := seen[a.Slug]; dup {
			log.Warn("duplicate article slug", "slug", a.Slug, "first", prev, "second", p)
		}
		seen[a.Slug] = p
		articles = append(articles, a)
		return nil
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning articles: %w", err)
	}
	return articles, nil
}
