package router

import (
	"slices"

	"github.com/SwiftStorm-Studio/igf/pkg/igf"
)

// Stack holds the screens an actor has open, most recent on top.
// Opening a screen from inside another pushes it; closing removes it
// wherever it sits.
type Stack struct {
	entries []*igf.Screen
}

// NewStack creates a new empty stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]*igf.Screen, 0),
	}
}

// Push adds a screen on top. A screen already on the stack is moved to the top.
func (s *Stack) Push(screen *igf.Screen) {
	s.Remove(screen)
	s.entries = append(s.entries, screen)
}

// Pop removes and returns the top screen.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *igf.Screen {
	if len(s.entries) == 0 {
		return nil
	}
	top := s.entries[len(s.entries)-1]
	s.entries[len(s.entries)-1] = nil
	s.entries = s.entries[:len(s.entries)-1]
	return top
}

// Peek returns the top screen without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *igf.Screen {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1]
}

// Remove deletes screen from the stack and reports whether it was present.
func (s *Stack) Remove(screen *igf.Screen) bool {
	for i, e := range s.entries {
		if e == screen {
			s.entries = slices.Delete(s.entries, i, i+1)
			return true
		}
	}
	return false
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries from the stack.
func (s *Stack) Clear() {
	clear(s.entries)
	s.entries = s.entries[:0]
}
