package overlay

import "sync/atomic"

// Status is the status line shown by the panel. It is written by an
// external driver goroutine and read once per frame by the composition
// callback. The zero value holds the empty string.
type Status struct {
	v atomic.Pointer[string]
}

// Store replaces the status text.
func (s *Status) Store(msg string) {
	s.v.Store(&msg)
}

// Load returns the current status text.
func (s *Status) Load() string {
	if p := s.v.Load(); p != nil {
		return *p
	}
	return ""
}
