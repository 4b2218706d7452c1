package shell

// LineKind tags a transcript line.
type LineKind string

const (
	LineCommand LineKind = "command"
	LineOutput  LineKind = "output"
	LineError   LineKind = "error"
)

// Line is one entry of a session transcript. Command lines also carry the
// directory and branch label as of submission time, so a past prompt can be
// rendered the way it looked when the user typed it.
type Line struct {
	Kind   LineKind `json:"kind"`
	Text   string   `json:"text"`
	Dir    string   `json:"dir,omitempty"`
	Branch string   `json:"branch,omitempty"`
}

func commandLine(text string, st State) Line {
	return Line{Kind: LineCommand, Text: text, Dir: st.CurrentDir, Branch: st.Branch}
}

func outputLine(text string) Line {
	return Line{Kind: LineOutput, Text: text}
}

func errorLine(text string) Line {
	return Line{Kind: LineError, Text: text}
}
