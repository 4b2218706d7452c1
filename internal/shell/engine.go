package shell

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/kurobon/termgym/internal/exec"
)

// ErrBusy is returned when a submission arrives while a previous one is
// still outstanding.
var ErrBusy = errors.New("command already in progress")

// Engine turns submitted lines into transcript lines and state transitions.
// It is the only mutator of session state: a navigation commits current
// directory, previous directory and branch label together after the target
// has been verified against the real filesystem, and any failure leaves the
// state untouched.
type Engine struct {
	runner  exec.Runner
	aliases AliasTable
	home    string
	branch  BranchFunc
	store   Persister
	log     *zap.Logger
}

// NewEngine wires the engine. branch and store may be nil; a nil logger is
// replaced with a no-op.
func NewEngine(runner exec.Runner, aliases AliasTable, home string, branch BranchFunc, store Persister, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		runner:  runner,
		aliases: aliases,
		home:    home,
		branch:  branch,
		store:   store,
		log:     log,
	}
}

// Submit processes one line to completion: alias expansion, classification,
// navigation or execution, atomic state commit, history recording and
// persistence. It returns the transcript lines the submission produced.
// A blank line is a no-op. Re-entrant submission while a command is
// outstanding returns ErrBusy.
func (e *Engine) Submit(ctx context.Context, s *Session, input string) ([]Line, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, nil
	}

	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return nil, ErrBusy
	}
	s.busy = true
	st := s.state
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()
	}()

	lines := []Line{commandLine(trimmed, st)}

	expanded := e.aliases.Expand(trimmed)
	switch req := Classify(expanded).(type) {
	case ChangeDir:
		if extra, ok := e.navigate(ctx, s, st, req.Target); !ok {
			lines = append(lines, extra)
		}
	case JumpProbe:
		// A word naming both a subdirectory and an executable resolves
		// as navigation; the probe runs first and never mutates state
		// when it fails.
		if path, err := e.runner.Resolve(ctx, st.CurrentDir, req.Word); err == nil {
			e.commit(s, st, path)
		} else if out := e.run(ctx, st, expanded); out.Text != "" || out.Kind == LineError {
			lines = append(lines, out)
		}
	case RunCommand:
		if out := e.run(ctx, st, req.Line); out.Text != "" || out.Kind == LineError {
			lines = append(lines, out)
		}
	}

	s.mu.Lock()
	s.history.Record(trimmed)
	s.transcript = append(s.transcript, lines...)
	hist := s.history.Entries()
	transcript := make([]Line, len(s.transcript))
	copy(transcript, s.transcript)
	s.mu.Unlock()

	if e.store != nil {
		if err := e.store.Save(s.ID, hist, transcript); err != nil {
			e.log.Warn("persist failed", zap.String("session", s.ID), zap.Error(err))
		}
	}
	return lines, nil
}

// navigate interprets a directory-change target, verifies it through the
// executor and commits on success. On failure it returns one error line and
// ok=false; the session state is byte-for-byte unchanged.
func (e *Engine) navigate(ctx context.Context, s *Session, st State, target string) (Line, bool) {
	dest := target
	switch {
	case target == "" || target == "~":
		dest = e.home
	case strings.HasPrefix(target, "~/"):
		dest = e.home + target[1:]
	case target == "-":
		if st.PreviousDir == "" {
			return errorLine("cd: no previous directory"), false
		}
		dest = st.PreviousDir
	}

	path, err := e.runner.Resolve(ctx, st.CurrentDir, dest)
	if err != nil {
		e.log.Debug("navigation refused", zap.String("target", target), zap.Error(err))
		return errorLine("no such directory: " + target), false
	}
	e.commit(s, st, path)
	return Line{}, true
}

// commit applies a verified navigation atomically. The branch label is
// queried best-effort; its failures clear the label and are never reported.
func (e *Engine) commit(s *Session, st State, dir string) {
	branch := ""
	if e.branch != nil {
		branch = e.branch(dir)
	}
	s.mu.Lock()
	s.state = State{
		CurrentDir:  dir,
		PreviousDir: st.CurrentDir,
		Branch:      branch,
	}
	s.mu.Unlock()
}

// run executes an ordinary command in the current directory and converts the
// outcome into a single output or error line.
func (e *Engine) run(ctx context.Context, st State, line string) Line {
	out, err := e.runner.Run(ctx, st.CurrentDir, line)
	if err != nil {
		return errorLine(err.Error())
	}
	return outputLine(strings.TrimRight(out, "\n"))
}
