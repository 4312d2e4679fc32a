package site

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"folio/internal/logic"
)

const shutdownTimeout = 5 * time.Second

// Handler returns the router of the live site
func (s *Site) Handler() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(requestLogger)

	links := Links{}

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		s.respond(w, r, s.RenderHome(r.Context(), w, links))
	})
	router.Get("/blog", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		f := logic.FilterState{Query: q.Get("q"), Label: q.Get("tag")}
		s.respond(w, r, s.RenderBlog(w, f, links))
	})
	router.Get("/blog/{slug}", func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		err := s.RenderArticle(w, slug, links)
		if errors.Is(err, logic.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			err = s.RenderNotFound(w, slug, links)
		}
		s.respond(w, r, err)
	})
	router.Get("/projects", func(w http.ResponseWriter, r *http.Request) {
		s.respond(w, r, s.RenderProjects(r.Context(), w, r.URL.Query().Get("q"), links))
	})
	router.Get("/style.css", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		_, _ = w.Write(Stylesheet())
	})

	return router
}

// respond reports a render failure. Pages are buffered, so nothing has been
// written when err is set.
func (s *Site) respond(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}
	log.Error("rendering page", "path", r.URL.Path, "err", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// requestLogger logs every request with its status and duration
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Wrap response writer to capture status code
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		log.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", chimiddleware.GetReqID(r.Context()),
		)
	})
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully
func (s *Site) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("serving site", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving %s: %w", addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	log.Info("site stopped")
	return nil
}
