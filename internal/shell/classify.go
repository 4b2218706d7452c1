package shell

import "strings"

// Request is the classified form of one submitted line. Classification is
// pure; resolving and executing a request is the engine's job.
type Request interface{ request() }

// ChangeDir is a directory change, either typed with the cd keyword or
// rewritten from a shortcut. Target keeps the user's notation ("~", "-",
// "../..", relative or absolute paths); the engine interprets it.
type ChangeDir struct {
	Target string
}

// JumpProbe is a bare word that may name a subdirectory of the current
// directory. It is resolved speculatively and falls back to an ordinary
// command when the probe fails.
type JumpProbe struct {
	Word string
}

// RunCommand is an ordinary command line.
type RunCommand struct {
	Line string
}

func (ChangeDir) request()  {}
func (JumpProbe) request()  {}
func (RunCommand) request() {}

// Classify maps an alias-expanded, non-empty line to a request. Precedence:
// shortcuts, explicit cd, implicit jump, ordinary command.
func Classify(line string) Request {
	trimmed := strings.TrimSpace(line)

	// Shortcuts rewrite to directory changes. A run of N dots goes up N-1
	// levels; "~" goes home; "-" goes to the previous directory.
	switch {
	case isDotRun(trimmed):
		return ChangeDir{Target: upPath(len(trimmed) - 1)}
	case trimmed == "~":
		return ChangeDir{Target: "~"}
	case trimmed == "-":
		return ChangeDir{Target: "-"}
	}

	if trimmed == "cd" {
		return ChangeDir{}
	}
	if rest, ok := strings.CutPrefix(trimmed, "cd "); ok {
		return ChangeDir{Target: strings.TrimSpace(rest)}
	}

	if isBareWord(trimmed) {
		return JumpProbe{Word: trimmed}
	}

	return RunCommand{Line: trimmed}
}

func isDotRun(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r != '.' {
			return false
		}
	}
	return true
}

// upPath builds the relative path climbing n levels; n == 0 stays put.
func upPath(n int) string {
	if n <= 0 {
		return "."
	}
	parts := make([]string, n)
	for i := range parts {
		parts[i] = ".."
	}
	return strings.Join(parts, "/")
}

// isBareWord reports whether s is a single token safe to probe as a
// subdirectory name: letters, digits, dot, underscore, hyphen. Anything with
// spaces or shell metacharacters is never intercepted.
func isBareWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '.' || r == '_' || r == '-':
		default:
			return false
		}
	}
	return true
}
