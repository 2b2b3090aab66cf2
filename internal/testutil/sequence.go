package testutil

import "sync"

// Sequence hands out 1, 2, 3, ... and can be rewound, so repeated runs of
// the same scenario number their evaluations identically.
type Sequence struct {
	mu sync.Mutex
	n  int
}

// Next advances the sequence and returns the new value.
func (s *Sequence) Next() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return s.n
}

// Current returns the last value handed out, or 0.
func (s *Sequence) Current() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.n
}

// Reset rewinds to 0.
func (s *Sequence) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n = 0
}
