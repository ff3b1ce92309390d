package conversation

import "strings"

// DefaultWindowCapacity is the context window capacity used when none is
// configured.
const DefaultWindowCapacity = 5

// Window is an ordered, fixed-capacity FIFO buffer of formatted "name: text"
// strings used to condition the next speaker call. Pushing past capacity
// evicts the oldest entry. Capacity is fixed at construction.
type Window struct {
	entries  []string
	capacity int
}

// NewWindow creates a window with the given capacity. Capacity must be at
// least 1.
func NewWindow(capacity int) (*Window, error) {
	if capacity < 1 {
		return nil, &ValidationError{
			Field:   "window_capacity",
			Value:   capacity,
			Message: "context window capacity must be at least 1",
		}
	}
	return &Window{capacity: capacity}, nil
}

// Push appends an entry, evicting the oldest one once capacity is exceeded.
func (w *Window) Push(entry string) {
	w.entries = append(w.entries, entry)
	if len(w.entries) > w.capacity {
		w.entries = w.entries[1:]
	}
}

// Entries returns a defensive copy of the current window content in order.
func (w *Window) Entries() []string {
	entries := make([]string, len(w.entries))
	copy(entries, w.entries)
	return entries
}

// Join returns the window content joined by newlines for prompt assembly.
func (w *Window) Join() string {
	return strings.Join(w.entries, "\n")
}

// Len returns the number of entries currently held.
func (w *Window) Len() int { return len(w.entries) }

// Capacity returns the fixed capacity.
func (w *Window) Capacity() int { return w.capacity }
