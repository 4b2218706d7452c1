package exec

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuote(t *testing.T) {
	assert.Equal(t, "'/tmp/a b'", Quote("/tmp/a b"))
	assert.Equal(t, `'it'\''s'`, Quote("it's"))
}

func TestShellRunnerRun(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("posix shell assumed")
	}
	r := &ShellRunner{}
	dir := t.TempDir()

	out, err := r.Run(context.Background(), dir, "pwd")
	require.NoError(t, err)
	resolved, _ := filepath.EvalSymlinks(dir)
	assert.Contains(t, out, filepath.Base(resolved))

	_, err = r.Run(context.Background(), dir, "definitely-not-a-command-xyz")
	assert.Error(t, err)
}

func TestShellRunnerResolve(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("posix shell assumed")
	}
	r := &ShellRunner{}
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	got, err := r.Resolve(context.Background(), dir, "sub")
	require.NoError(t, err)
	assert.Equal(t, "sub", filepath.Base(got))

	// ".." is normalized by the shell, not by string concatenation.
	back, err := r.Resolve(context.Background(), got, "..")
	require.NoError(t, err)
	wantBack, _ := filepath.EvalSymlinks(dir)
	gotBack, _ := filepath.EvalSymlinks(back)
	assert.Equal(t, wantBack, gotBack)

	_, err = r.Resolve(context.Background(), dir, "missing")
	assert.Error(t, err)
}
