// Package exec abstracts single-shot shell command execution.
// Every call spawns a fresh process with no memory of prior calls; directory
// context is threaded through as an inline change-and-run chain.
package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	osexec "os/exec"
	"runtime"
	"strings"
)

// Runner executes one shell command line per call.
type Runner interface {
	// Run executes commandLine in dir and returns captured stdout.
	Run(ctx context.Context, dir, commandLine string) (string, error)

	// Resolve asks the shell to change from dir into target and report the
	// canonical absolute path that results. Existence checks, "..",
	// symlinks and trailing separators are all handled by the real
	// filesystem rather than by string arithmetic.
	Resolve(ctx context.Context, dir, target string) (string, error)
}

// ShellRunner runs commands through the platform shell.
type ShellRunner struct{}

var _ Runner = (*ShellRunner)(nil)

func shellCommand() (string, string) {
	if runtime.GOOS == "windows" {
		return "cmd", "/C"
	}
	return "sh", "-c"
}

// Run executes commandLine with an inline "cd into dir first" prefix.
func (r *ShellRunner) Run(ctx context.Context, dir, commandLine string) (string, error) {
	line := commandLine
	if dir != "" {
		line = "cd " + Quote(dir) + " && " + commandLine
	}
	return r.spawn(ctx, line)
}

// Resolve chains cd dir && cd target && pwd and returns the reported path.
func (r *ShellRunner) Resolve(ctx context.Context, dir, target string) (string, error) {
	line := "cd " + Quote(target) + " && pwd"
	if dir != "" {
		line = "cd " + Quote(dir) + " && " + line
	}
	out, err := r.spawn(ctx, line)
	if err != nil {
		return "", err
	}
	path := strings.TrimSpace(out)
	if path == "" {
		return "", errors.New("resolve: shell reported empty path")
	}
	return path, nil
}

func (r *ShellRunner) spawn(ctx context.Context, line string) (string, error) {
	shell, flag := shellCommand()
	cmd := osexec.CommandContext(ctx, shell, flag, line)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		// Prefer stderr as the failure text, fall back to stdout, then
		// to the spawn error itself.
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", errors.New(msg)
		}
		if msg := strings.TrimSpace(stdout.String()); msg != "" {
			return "", errors.New(msg)
		}
		return "", fmt.Errorf("spawn: %w", err)
	}
	return stdout.String(), nil
}

// Quote wraps s in single quotes for safe interpolation into a shell chain.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
