package shell

import (
	"strings"
	"unicode"
)

// AliasTable maps a leading token to its expansion. The table is built once
// at startup and never mutated afterwards.
type AliasTable map[string]string

// DefaultAliases returns the built-in table used when no alias file is
// configured.
func DefaultAliases() AliasTable {
	return AliasTable{
		"ll": "ls -la",
		"la": "ls -A",
		"gs": "git status",
		"gl": "git log --oneline",
	}
}

// Expand substitutes the leading whitespace-delimited token if it matches an
// alias, re-appending the remaining text unchanged. The substituted text is
// not re-expanded.
func (t AliasTable) Expand(line string) string {
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
	if trimmed == "" {
		return line
	}

	head := trimmed
	rest := ""
	if i := strings.IndexFunc(trimmed, unicode.IsSpace); i >= 0 {
		head, rest = trimmed[:i], trimmed[i:]
	}

	expansion, ok := t[head]
	if !ok {
		return line
	}
	return expansion + rest
}
