package server

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/macarona-salsa/wawa-news/internal/logger"
)

// Config holds server configuration.
type Config struct {
	Port        int
	ArticlesDir string   // root of the section/article tree
	Exclude     []string // glob patterns skipped while encoding articles
	AllowAll    bool     // allow all CORS origins
}

// Server serves the site shell, its assets and the article document.
type Server struct {
	cfg        Config
	site       fs.FS
	log        *slog.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server. site holds index.html and the static assets.
func New(cfg Config, site fs.FS, log *slog.Logger) *Server {
	if log == nil {
		log = logger.Discard()
	}
	s := &Server{
		cfg:  cfg,
		site: site,
		log:  log,
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS. Preflight requests fall through to the GET-only guard.
	if s.cfg.AllowAll {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:     []string{"*"},
			AllowedMethods:     []string{http.MethodGet},
			AllowedHeaders:     []string{"Accept", "Content-Type"},
			OptionsPassthrough: true,
			MaxAge:             300,
		}))
	}

	r.Use(getOnly)

	r.Get("/", s.handleIndex)
	r.Get("/articles", s.handleArticles)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/*", s.handleStatic)

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.log.Log(context.Background(), logger.LevelLog, fmt.Sprintf("listening on port %d", s.cfg.Port))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// getOnly rejects every method but GET, whatever the path.
func getOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// logRequests logs each incoming request before it is handled.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.log.Log(r.Context(), logger.LevelLog,
			fmt.Sprintf("received %s request to %s", r.Method, r.URL.RequestURI()),
			"request_id", middleware.GetReqID(r.Context()),
		)
		next.ServeHTTP(w, r)
	})
}
