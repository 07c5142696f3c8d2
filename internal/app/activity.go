package app

import "sync"

// defaultActivityCap bounds the in-memory activity log.
const defaultActivityCap = 200

// ActivityLog is a bounded ring of recent log entries, shown by the Logs
// view. Oldest entries fall off when the ring is full.
type ActivityLog struct {
	mu      sync.Mutex
	entries []Entry
	start   int
	count   int
}

// NewActivityLog creates a log holding at most capacity entries. A
// capacity under one falls back to the default.
func NewActivityLog(capacity int) *ActivityLog {
	if capacity < 1 {
		capacity = defaultActivityCap
	}
	return &ActivityLog{entries: make([]Entry, capacity)}
}

// Append records an entry, evicting the oldest when full.
func (a *ActivityLog) Append(e Entry) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.count < len(a.entries) {
		a.entries[(a.start+a.count)%len(a.entries)] = e
		a.count++
		return
	}
	a.entries[a.start] = e
	a.start = (a.start + 1) % len(a.entries)
}

// Len returns the number of recorded entries.
func (a *ActivityLog) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.count
}

// Entries returns the recorded entries oldest first.
func (a *ActivityLog) Entries() []Entry {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]Entry, a.count)
	for i := 0; i < a.count; i++ {
		out[i] = a.entries[(a.start+i)%len(a.entries)]
	}
	return out
}
