package inspect

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vango-dev/retain/pkg/host"
	"github.com/vango-dev/retain/pkg/host/htmlhost"
	"github.com/vango-dev/retain/pkg/vdom"
)

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the structured logger. Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithGatherer exposes g on /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// WithTitle sets the page title of the index page.
func WithTitle(title string) Option {
	return func(s *Server) {
		s.title = title
	}
}

// Server is the inspector. Create it with New.
type Server struct {
	// mu serialises access to root and doc.
	mu   sync.Mutex
	root *vdom.Root
	doc  *htmlhost.Document

	logger   *slog.Logger
	gatherer prometheus.Gatherer
	title    string

	upgrader websocket.Upgrader
	clients  map[*websocket.Conn]string // conn -> client id
	cmu      sync.RWMutex
}

// New creates an inspector for root, which must render into doc.
func New(root *vdom.Root, doc *htmlhost.Document, opts ...Option) *Server {
	s := &Server{
		root:    root,
		doc:     doc,
		logger:  slog.Default(),
		title:   "retain inspector",
		clients: make(map[*websocket.Conn]string),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins in dev
			},
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Render renders el into the inspected root.
func (s *Server) Render(ctx context.Context, el *vdom.Element) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.root.Render(ctx, el)
}

// Dispatch fires evt at the node at path. The bool result is false if
// path does not resolve.
func (s *Server) Dispatch(path string, evt host.Event) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.doc.Resolve(path)
	if !ok {
		return false, nil
	}
	return true, s.doc.Dispatch(n, evt)
}

// HTML returns the container's inner HTML.
func (s *Server) HTML() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.HTML()
}

// Handler returns the inspector's HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/tree", s.handleTree)
	r.Get("/mutations", s.handleMutations)
	r.Post("/dispatch", s.handleDispatch)
	r.Get("/ws", s.handleWebSocket)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

func (s *Server) handleTree(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(s.HTML()))
}

func (s *Server) handleMutations(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.doc.Mutations())
}

// dispatchResponse is the body of a successful /dispatch.
type dispatchResponse struct {
	Path  string `json:"path"`
	Event string `json:"event"`
	HTML  string `json:"html"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleDispatch(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	event := r.URL.Query().Get("event")
	if path == "" || event == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "path and event are required"})
		return
	}

	found, err := s.Dispatch(path, host.Event{Type: event, Value: r.URL.Query().Get("value")})
	if !found {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "no node at path " + path})
		return
	}
	if err != nil {
		s.logger.Error("dispatch failed", "path", path, "event", event, "error", err)
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}

	s.logger.Debug("dispatched", "path", path, "event", event)
	writeJSON(w, http.StatusOK, dispatchResponse{Path: path, Event: event, HTML: s.HTML()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
