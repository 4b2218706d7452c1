// Package store persists session history and transcripts as one JSON
// document per session on a billy filesystem.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/kurobon/termgym/internal/shell"
)

// Store reads and writes session records. Production uses an osfs root;
// tests inject memfs.
type Store struct {
	fs billy.Filesystem
}

var _ shell.Persister = (*Store)(nil)

// New creates a store on fs.
func New(fs billy.Filesystem) *Store {
	return &Store{fs: fs}
}

// NewOS creates a store rooted at dir on the real filesystem.
func NewOS(dir string) *Store {
	return New(osfs.New(dir))
}

type record struct {
	History    []string     `json:"history"`
	Transcript []shell.Line `json:"transcript"`
}

// Load reads the record for a session. A missing record is not an error and
// yields empty history and transcript.
func (s *Store) Load(id string) ([]string, []shell.Line, error) {
	data, err := util.ReadFile(s.fs, fileFor(id))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("store: load %s: %w", id, err)
	}
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, nil, fmt.Errorf("store: decode %s: %w", id, err)
	}
	return rec.History, rec.Transcript, nil
}

// Save writes the full record for a session, replacing any prior one.
func (s *Store) Save(id string, history []string, transcript []shell.Line) error {
	data, err := json.Marshal(record{History: history, Transcript: transcript})
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", id, err)
	}
	if err := util.WriteFile(s.fs, fileFor(id), data, 0o644); err != nil {
		return fmt.Errorf("store: save %s: %w", id, err)
	}
	return nil
}

// fileFor flattens the id so a client-supplied session ID can never escape
// the store root.
func fileFor(id string) string {
	return filepath.Base(id) + ".json"
}
