package shell

import (
	"strings"
	"sync"
	"time"
)

// State is the virtual location of a session. PreviousDir holds the
// directory held immediately before the last successful navigation and backs
// "cd -"; Branch is the best-effort label of the repository containing
// CurrentDir.
type State struct {
	CurrentDir  string `json:"currentDir"`
	PreviousDir string `json:"previousDir"`
	Branch      string `json:"branch"`
}

// Session holds the emulated shell state for one user. State, history and
// transcript are mutated only through the engine; the mutex plus the busy
// flag serialize submissions so each one is applied fully before the next.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu         sync.Mutex
	busy       bool
	state      State
	history    *History
	transcript []Line
}

// State returns a copy of the session state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Transcript returns a copy of the transcript, oldest first.
func (s *Session) Transcript() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Line, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// HistoryEntries returns a copy of the command log, oldest first.
func (s *Session) HistoryEntries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Entries()
}

// RecallPrev steps the history cursor toward older entries.
func (s *Session) RecallPrev(liveInput string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Prev(liveInput)
}

// RecallNext steps the history cursor toward newer entries.
func (s *Session) RecallNext() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Next()
}

// PromptLabel derives the display label for the current directory,
// abbreviating the home prefix to "~".
func (s *Session) PromptLabel(home string) string {
	st := s.State()
	dir := st.CurrentDir
	if home != "" {
		if dir == home {
			return "~"
		}
		if rest, ok := strings.CutPrefix(dir, home+"/"); ok {
			return "~/" + rest
		}
	}
	return dir
}

// Persister loads and saves the durable parts of a session. Session state
// itself is never persisted; only history and transcript survive restarts.
type Persister interface {
	Load(id string) (history []string, transcript []Line, err error)
	Save(id string, history []string, transcript []Line) error
}

// Manager owns the session table.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	home   string
	limit  int
	store  Persister
	branch BranchFunc
}

// NewManager creates a session manager. Sessions start in home with history
// capped at limit; store and branch may be nil.
func NewManager(home string, limit int, store Persister, branch BranchFunc) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		home:     home,
		limit:    limit,
		store:    store,
		branch:   branch,
	}
}

// Create initializes a session, returning the existing one when the ID is
// already known. History and transcript are restored from the durable store;
// a missing or unreadable record starts the session fresh.
func (m *Manager) Create(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[id]; ok {
		return s
	}

	s := &Session{
		ID:        id,
		CreatedAt: time.Now(),
		state:     State{CurrentDir: m.home},
		history:   NewHistory(m.limit),
	}
	if m.branch != nil {
		s.state.Branch = m.branch(m.home)
	}
	if m.store != nil {
		if hist, tr, err := m.store.Load(id); err == nil {
			s.history.Restore(hist)
			s.transcript = tr
		}
	}
	m.sessions[id] = s
	return s
}

// Get retrieves a session by ID.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}
