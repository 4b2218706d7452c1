package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kurobon/termgym/internal/shell"
)

// session resolves a session ID, transparently recreating the session when
// the backend restarted and lost its in-memory table. The durable store
// restores history and transcript; the virtual directory restarts at home.
func (s *Server) session(id string) *shell.Session {
	if sess, ok := s.Manager.Get(id); ok {
		return sess
	}
	s.Log.Info("recreating session", zap.String("session", id))
	return s.Manager.Create(id)
}

func (s *Server) handleInitSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id := uuid.NewString()
	sess := s.Manager.Create(id)
	writeJSON(w, http.StatusOK, map[string]any{
		"sessionId": id,
		"state":     sess.State(),
		"prompt":    sess.PromptLabel(s.Home),
	})
}

type commandRequest struct {
	SessionID string `json:"sessionId"`
	Command   string `json:"command"`
}

type commandResponse struct {
	Lines  []shell.Line `json:"lines"`
	State  shell.State  `json:"state"`
	Prompt string       `json:"prompt"`
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req commandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.SessionID == "" {
		writeError(w, http.StatusBadRequest, "sessionId is required")
		return
	}

	sess := s.session(req.SessionID)
	s.Log.Info("command received",
		zap.String("session", req.SessionID),
		zap.String("command", req.Command))

	lines, err := s.Engine.Submit(r.Context(), sess, req.Command)
	if err != nil {
		if errors.Is(err, shell.ErrBusy) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if lines == nil {
		lines = []shell.Line{}
	}
	writeJSON(w, http.StatusOK, commandResponse{
		Lines:  lines,
		State:  sess.State(),
		Prompt: sess.PromptLabel(s.Home),
	})
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := s.session(r.URL.Query().Get("sessionId"))
	writeJSON(w, http.StatusOK, map[string]any{
		"state":  sess.State(),
		"prompt": sess.PromptLabel(s.Home),
	})
}

func (s *Server) handleTranscript(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := s.session(r.URL.Query().Get("sessionId"))
	writeJSON(w, http.StatusOK, map[string]any{
		"lines": sess.Transcript(),
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := s.session(r.URL.Query().Get("sessionId"))
	writeJSON(w, http.StatusOK, map[string]any{
		"entries": sess.HistoryEntries(),
	})
}

type recallRequest struct {
	SessionID string `json:"sessionId"`
	Direction string `json:"direction"` // "prev" or "next"
	LiveInput string `json:"liveInput"`
}

func (s *Server) handleRecall(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req recallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sess := s.session(req.SessionID)
	var (
		entry string
		ok    bool
	)
	switch req.Direction {
	case "prev":
		entry, ok = sess.RecallPrev(req.LiveInput)
	case "next":
		entry, ok = sess.RecallNext()
	default:
		writeError(w, http.StatusBadRequest, "direction must be prev or next")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"entry": entry,
		"ok":    ok,
	})
}
