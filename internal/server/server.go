// Package server exposes the query resolver over HTTP.
package server

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/itsmostafa/constbot/internal/query"
	"github.com/rs/zerolog"
)

// EmptyMessageResponse is returned with 400 when a chat request has no message.
const EmptyMessageResponse = "Please say something!"

// maxBodyBytes bounds chat request bodies.
const maxBodyBytes = 64 << 10

//go:embed index.html
var indexHTML []byte

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the body returned by POST /chat.
type ChatResponse struct {
	Response string `json:"response"`
}

// Server answers chat requests against one immutable resolver. Handlers share
// the resolver without locking because the store is never written after load.
type Server struct {
	resolver *query.Resolver
	log      zerolog.Logger
	router   chi.Router
}

// New creates a Server for resolver.
func New(resolver *query.Resolver, log zerolog.Logger) *Server {
	s := &Server{resolver: resolver, log: log}

	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Post("/chat", s.handleChat)

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Int("articles", s.resolver.Store().Len()).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"articles": s.resolver.Store().Len(),
	})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		zerolog.Ctx(r.Context()).Debug().Err(err).Msg("invalid chat body")
		writeJSON(w, http.StatusBadRequest, ChatResponse{Response: EmptyMessageResponse})
		return
	}

	if req.Message == "" {
		writeJSON(w, http.StatusBadRequest, ChatResponse{Response: EmptyMessageResponse})
		return
	}

	writeJSON(w, http.StatusOK, ChatResponse{Response: s.resolver.Answer(req.Message)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
