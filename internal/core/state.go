package core

import (
	"sync"
)

// Entry is one processed key and the display it produced.
type Entry struct {
	Token   string
	Display string
	Failed  bool
}

// Tape keeps the most recent entries of a session in memory.
type Tape struct {
	mu      sync.RWMutex
	entries []Entry
	size    int
}

func NewTape(size int) *Tape {
	if size < 0 {
		size = 0
	}
	return &Tape{
		entries: make([]Entry, 0, size),
		size:    size,
	}
}

// Record appends an entry, dropping the oldest once the tape is full.
func (t *Tape) Record(e Entry) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.size == 0 {
		return
	}
	if len(t.entries) == t.size {
		copy(t.entries, t.entries[1:])
		t.entries = t.entries[:len(t.entries)-1]
	}
	t.entries = append(t.entries, e)
}

// Entries returns a copy of the recorded entries, oldest first.
func (t *Tape) Entries() []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	result := make([]Entry, len(t.entries))
	copy(result, t.entries)
	return result
}

func (t *Tape) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = t.entries[:0]
}

func (t *Tape) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}
