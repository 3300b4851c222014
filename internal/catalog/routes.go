package catalog

import (
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"libcatalog/internal/httpx"
)

type RouterConfig struct {
	Handler     *HTTPHandler
	SiteDir     string
	Logger      *zap.Logger
	RateLimiter *httpx.RateLimitMiddleware
	EnableHSTS  bool
}

// NewRouter wires the catalog page, its JSON view and the static site
// directory (libs.json, jars, docs) behind the common middleware chain.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(httpx.RequestIDMiddleware)
	r.Use(httpx.AccessLogMiddleware(cfg.Logger))
	r.Use(httpx.RecoveryMiddleware(cfg.Logger))
	r.Use(httpx.SecurityHeadersMiddleware(cfg.EnableHSTS))
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Middleware)
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/", cfg.Handler.Page)
	r.Get("/api/libraries", cfg.Handler.Libraries)
	r.Get("/assets/catalog.css", cfg.Handler.Stylesheet)

	r.Handle("/*", siteFiles(cfg.SiteDir))

	return r
}

// siteFiles serves the site directory without directory listings: a
// directory is only served when it carries an index.html.
func siteFiles(dir string) http.Handler {
	root := http.Dir(dir)
	files := http.FileServer(root)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := path.Clean("/" + r.URL.Path)
		if isListing(root, name) {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}

func isListing(root http.FileSystem, name string) bool {
	f, err := root.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || !info.IsDir() {
		return false
	}

	index, err := root.Open(path.Join(name, "index.html"))
	if err != nil {
		return true
	}
	_ = index.Close()
	return false
}
