package server

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/macarona-salsa/wawa-news/internal/articles"
	"github.com/macarona-salsa/wawa-news/internal/web"
)

const (
	notFoundBody    = "Error ENOENT: Can't find that"
	serverErrorBody = "Error: tell your site admin that they did a horrible job"
)

// contentTypes maps the extensions the site ships to their media types.
var contentTypes = map[string]string{
	".html": "text/html",
	".css":  "text/css",
	".js":   "text/javascript",
	".svg":  "image/svg+xml",
}

// ContentType returns the media type served for name.
func ContentType(name string) string {
	if ct, ok := contentTypes[strings.ToLower(path.Ext(name))]; ok {
		return ct
	}
	return "application/octet-stream"
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.serveFile(w, r, web.IndexFile)
}

func (s *Server) handleArticles(w http.ResponseWriter, r *http.Request) {
	set, err := articles.Encode(r.Context(), s.cfg.ArticlesDir, articles.Options{
		Exclude: s.cfg.Exclude,
		Logger:  s.log,
	})
	if err != nil {
		// A missing article root is a server fault, not a missing page.
		s.serverError(w, r, err)
		return
	}

	data, err := json.Marshal(set)
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	if name == "" {
		name = web.IndexFile
	}
	s.serveFile(w, r, name)
}

func (s *Server) serveFile(w http.ResponseWriter, r *http.Request, name string) {
	if !fs.ValidPath(name) {
		s.writeError(w, r, fs.ErrNotExist)
		return
	}

	data, err := fs.ReadFile(s.site, name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", ContentType(name))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// writeError answers 404 for missing files and 500 for everything else.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, fs.ErrNotExist) {
		writePlain(w, http.StatusNotFound, notFoundBody)
		return
	}
	s.serverError(w, r, err)
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.Error(err.Error(),
		"path", r.URL.Path,
		"request_id", middleware.GetReqID(r.Context()),
	)
	writePlain(w, http.StatusInternalServerError, serverErrorBody)
}

// writePlain writes body as-is, without the newline http.Error appends.
func writePlain(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(code)
	io.WriteString(w, body)
}
