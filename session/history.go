package session

import "golang.org/x/exp/slices"

// DefaultHistoryCapacity is the number of recent searches kept by default.
const DefaultHistoryCapacity = 5

// History is a bounded log of recent queries. Once full, recording a new
// entry drops the oldest one.
type History struct {
	capacity int
	entries  []string
}

// NewHistory creates a History holding at most capacity entries.
// A capacity below one is raised to one.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{
		capacity: capacity,
		entries:  make([]string, 0, capacity),
	}
}

// Record appends word, evicting the oldest entry when the log is full.
func (h *History) Record(word string) {
	if len(h.entries) == h.capacity {
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:len(h.entries)-1]
	}
	h.entries = append(h.entries, word)
}

// Entries returns the recorded words, oldest first.
func (h *History) Entries() []string {
	return slices.Clone(h.entries)
}

func (h *History) Len() int { return len(h.entries) }

func (h *History) Cap() int { return h.capacity }
