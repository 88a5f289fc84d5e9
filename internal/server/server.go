package server

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"

	"github.com/laurisseau/app-dev/internal/config"
)

const Greeting = "Hello, World! ci"

// NewHandler returns the router of the server. Only GET (and HEAD) on the
// root path is registered, unknown paths and methods are answered by
// net/http with 404 and 405.
func NewHandler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, Greeting)
	})

	return mux
}

type Server struct {
	cfg config.Server
	srv *http.Server
}

func New(cfg config.Server) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server config: %w", err)
	}

	return &Server{
		cfg: cfg,
		srv: &http.Server{
			Addr:    cfg.Address(),
			Handler: NewHandler(),
		},
	}, nil
}

// Listen binds the configured address. A port that is already taken fails
// here, before anything is served.
func (s *Server) Listen() (net.Listener, error) {
	l, err := net.Listen("tcp", s.cfg.Address())

	if err != nil {
		return nil, fmt.Errorf("cannot listen on %s: %w", s.cfg.Address(), err)
	}

	return l, nil
}

// Serve blocks until the listener fails or the server is closed. A closed
// server is not an error.
func (s *Server) Serve(l net.Listener) error {
	if err := s.srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) ListenAndServe() error {
	l, err := s.Listen()

	if err != nil {
		return err
	}

	return s.Serve(l)
}

func (s *Server) Close() error {
	return s.srv.Close()
}
