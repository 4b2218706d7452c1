// Package server exposes the session engine over HTTP for the presentation
// layer. One submitted line per request; ordering and state commits are
// handled by the engine.
package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/kurobon/termgym/internal/shell"
)

type Server struct {
	Manager *shell.Manager
	Engine  *shell.Engine
	Home    string
	Log     *zap.Logger
	Mux     *http.ServeMux
}

func NewServer(manager *shell.Manager, engine *shell.Engine, home string, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		Manager: manager,
		Engine:  engine,
		Home:    home,
		Log:     log,
		Mux:     http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.Mux.HandleFunc("/ping", s.handlePing)
	s.Mux.HandleFunc("/api/session/init", s.handleInitSession)
	s.Mux.HandleFunc("/api/command", s.handleCommand)
	s.Mux.HandleFunc("/api/state", s.handleState)
	s.Mux.HandleFunc("/api/transcript", s.handleTranscript)
	s.Mux.HandleFunc("/api/history", s.handleHistory)
	s.Mux.HandleFunc("/api/history/recall", s.handleRecall)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Mux.ServeHTTP(w, r)
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "pong",
		"system":  "termgym backend",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
