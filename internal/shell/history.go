package shell

import "strings"

// History is a deduplicated, capped command log with a recall cursor.
// The cursor counts backwards from the most recent entry; -1 means the user
// is not browsing. Methods are not safe for concurrent use; the owning
// session serializes access.
type History struct {
	entries []string
	limit   int
	cursor  int
	live    string
}

// NewHistory returns an empty history capped at limit entries.
func NewHistory(limit int) *History {
	return &History{limit: limit, cursor: -1}
}

// Record appends line as the most recent entry. An equal existing entry is
// relocated rather than duplicated, the oldest entry is evicted once over
// capacity, and any recall in progress ends.
func (h *History) Record(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	for i, e := range h.entries {
		if e == line {
			h.entries = append(h.entries[:i], h.entries[i+1:]...)
			break
		}
	}
	h.entries = append(h.entries, line)
	if h.limit > 0 && len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
	h.cursor = -1
}

// Prev steps one entry toward older history and returns it. When browsing
// starts, liveInput is snapshotted so Next can restore it later; on
// subsequent calls liveInput is ignored, which lets the user edit a recalled
// command and keep navigating. Repeated calls at the oldest entry return it
// again. ok is false when there is nothing to recall.
func (h *History) Prev(liveInput string) (entry string, ok bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.cursor == -1 {
		h.live = liveInput
	}
	if h.cursor+1 < len(h.entries) {
		h.cursor++
	}
	return h.entries[len(h.entries)-1-h.cursor], true
}

// Next steps one entry toward newer history. Stepping past the most recent
// entry ends browsing and returns the snapshotted live input. ok is false
// when not browsing.
func (h *History) Next() (entry string, ok bool) {
	if h.cursor == -1 {
		return "", false
	}
	h.cursor--
	if h.cursor == -1 {
		return h.live, true
	}
	return h.entries[len(h.entries)-1-h.cursor], true
}

// Browsing reports whether a recall is in progress.
func (h *History) Browsing() bool {
	return h.cursor != -1
}

// Entries returns a copy of the log, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Restore replaces the log with persisted entries, applying the cap.
func (h *History) Restore(entries []string) {
	if h.limit > 0 && len(entries) > h.limit {
		entries = entries[len(entries)-h.limit:]
	}
	h.entries = append([]string(nil), entries...)
	h.cursor = -1
}
