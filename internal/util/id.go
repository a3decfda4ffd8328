package util

import (
	"sync"
	"time"
)

// IDSource hands out task identifiers derived from the creation time in
// Unix milliseconds. Identifiers are strictly increasing: when two are
// requested within the same millisecond, or the clock steps backwards, the
// next identifier is the previous one plus one.
type IDSource struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewIDSource creates an IDSource reading the wall clock.
func NewIDSource() *IDSource {
	return NewIDSourceWithClock(time.Now)
}

// NewIDSourceWithClock creates an IDSource reading the given clock (for testing).
func NewIDSourceWithClock(now func() time.Time) *IDSource {
	if now == nil {
		now = time.Now
	}
	return &IDSource{now: now}
}

// Next returns the next identifier.
func (s *IDSource) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}

// Last returns the most recently issued identifier, or 0 if none.
func (s *IDSource) Last() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}
