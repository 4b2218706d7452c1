package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Request
	}{
		{"two dots", "..", ChangeDir{Target: ".."}},
		{"three dots", "...", ChangeDir{Target: "../.."}},
		{"five dots", ".....", ChangeDir{Target: "../../../.."}},
		{"single dot", ".", ChangeDir{Target: "."}},
		{"tilde", "~", ChangeDir{Target: "~"}},
		{"dash", "-", ChangeDir{Target: "-"}},
		{"bare cd", "cd", ChangeDir{}},
		{"cd target", "cd projects", ChangeDir{Target: "projects"}},
		{"cd absolute", "cd /tmp", ChangeDir{Target: "/tmp"}},
		{"cd tilde rest", "cd ~/code", ChangeDir{Target: "~/code"}},
		{"cd dash", "cd -", ChangeDir{Target: "-"}},
		{"bare word", "Desktop", JumpProbe{Word: "Desktop"}},
		{"bare word with dots", "my-dir.v2", JumpProbe{Word: "my-dir.v2"}},
		{"word with flag", "ls -la", RunCommand{Line: "ls -la"}},
		{"pipe", "ls | wc -l", RunCommand{Line: "ls | wc -l"}},
		{"glob", "echo *", RunCommand{Line: "echo *"}},
		{"slash is not a bare word", "a/b", RunCommand{Line: "a/b"}},
		{"surrounding space trimmed", "  cd /tmp  ", ChangeDir{Target: "/tmp"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.input))
		})
	}
}

func TestUpPath(t *testing.T) {
	assert.Equal(t, ".", upPath(0))
	assert.Equal(t, "..", upPath(1))
	assert.Equal(t, "../../..", upPath(3))
}
