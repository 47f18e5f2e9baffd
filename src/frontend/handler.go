package frontend

import (
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"os"
	"path"
	"sync"
	"sync/atomic"

	"github.com/valyala/fasttemplate"

	"github.com/lojadigital/produtos/src/internal/log"
)

const indexFile = "index.html"

// Options configures the UI handler.
type Options struct {
	// UIPath is a directory to serve instead of the embedded UI.
	UIPath string
	// Title replaces {{title}} in index.html.
	Title string
	// APIBase replaces {{api_base}} in index.html.
	APIBase string
	// Dev re-renders index.html on every request.
	Dev bool
}

// Handler serves static UI files and falls back to the rendered index page
// for client-side routes. It answers 503 until Prepare succeeds.
type Handler struct {
	opts Options

	prepared atomic.Bool
	mu       sync.RWMutex
	fs       http.FileSystem
	files    http.Handler
	index    []byte
}

// New creates an unprepared handler.
func New(opts Options) *Handler {
	if opts.APIBase == "" {
		opts.APIBase = "/api/produtos"
	}
	return &Handler{opts: opts}
}

// Prepare opens the UI file system and renders the index page.
func (h *Handler) Prepare(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var fsys http.FileSystem
	if h.opts.UIPath == "" {
		embedded, err := GetEmbeddedFileSystem()
		if err != nil {
			return fmt.Errorf("failed to open embedded UI: %w", err)
		}
		fsys = embedded
		log.Debugf("Serving embedded UI")
	} else {
		info, err := os.Stat(h.opts.UIPath)
		if err != nil {
			return fmt.Errorf("failed to open UI directory: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("UI path %s is not a directory", h.opts.UIPath)
		}
		fsys = NewSafeFileSystem(h.opts.UIPath)
		log.Debugf("Serving UI from %s", h.opts.UIPath)
	}

	index, err := h.render(fsys)
	if err != nil {
		return err
	}

	h.mu.Lock()
	h.fs = fsys
	h.files = http.FileServer(fsys)
	h.index = index
	h.mu.Unlock()

	h.prepared.Store(true)
	return nil
}

func (h *Handler) render(fsys http.FileSystem) ([]byte, error) {
	f, err := fsys.Open("/" + indexFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", indexFile, err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", indexFile, err)
	}

	t, err := fasttemplate.NewTemplate(string(content), "{{", "}}")
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", indexFile, err)
	}

	return []byte(t.ExecuteString(map[string]interface{}{
		"title":    html.EscapeString(h.opts.Title),
		"api_base": html.EscapeString(h.opts.APIBase),
	})), nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !h.prepared.Load() {
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.NotFound(w, r)
		return
	}

	h.mu.RLock()
	fsys, files := h.fs, h.files
	h.mu.RUnlock()

	name := path.Clean("/" + r.URL.Path)
	if name == "/" || name == "/"+indexFile {
		h.serveIndex(w, r)
		return
	}

	if isFile(fsys, name) {
		files.ServeHTTP(w, r)
		return
	}

	// Missing assets are real 404s; anything else is a client-side route.
	if path.Ext(name) != "" {
		http.NotFound(w, r)
		return
	}
	h.serveIndex(w, r)
}

func (h *Handler) serveIndex(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	index, fsys := h.index, h.fs
	h.mu.RUnlock()

	if h.opts.Dev {
		fresh, err := h.render(fsys)
		if err != nil {
			log.Warnf("Failed to re-render %s: %v", indexFile, err)
		} else {
			index = fresh
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write(index)
	}
}

func isFile(fsys http.FileSystem, name string) bool {
	f, err := fsys.Open(name)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Debugf("Failed to open %s: %v", name, err)
		}
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	return err == nil && !info.IsDir()
}
