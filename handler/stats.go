package handler

import (
	"sync/atomic"

	"github.com/philipp01105/taglog/core"
)

// tagIndex maps built-in tags to counter slots; unknown tags share the last one
func tagIndex(t core.Tag) int {
	for i, known := range core.Tags {
		if t == known {
			return i
		}
	}
	return len(core.Tags)
}

// Stats tracks handler statistics
type Stats struct {
	written [len(core.Tags) + 1]atomic.Uint64
	failed  [len(core.Tags) + 1]atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementWritten atomically increments the written counter for a tag
func (s *Stats) IncrementWritten(t core.Tag) {
	s.written[tagIndex(t)].Add(1)
}

// IncrementFailed atomically increments the failed-write counter for a tag
func (s *Stats) IncrementFailed(t core.Tag) {
	s.failed[tagIndex(t)].Add(1)
}

// GetWritten returns the written count for a tag
func (s *Stats) GetWritten(t core.Tag) uint64 {
	return s.written[tagIndex(t)].Load()
}

// GetFailed returns the failed-write count for a tag
func (s *Stats) GetFailed(t core.Tag) uint64 {
	return s.failed[tagIndex(t)].Load()
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.written {
		s.written[i].Store(0)
		s.failed[i].Store(0)
	}
}

// Snapshot returns a snapshot of current stats
type Snapshot struct {
	Written      map[core.Tag]uint64
	Failed       map[core.Tag]uint64
	WrittenTotal uint64
	FailedTotal  uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{
		Written: make(map[core.Tag]uint64, len(core.Tags)),
		Failed:  make(map[core.Tag]uint64, len(core.Tags)),
	}
	for i, t := range core.Tags {
		w, f := s.written[i].Load(), s.failed[i].Load()
		snap.Written[t] = w
		snap.Failed[t] = f
	}
	for i := range s.written {
		snap.WrittenTotal += s.written[i].Load()
		snap.FailedTotal += s.failed[i].Load()
	}
	return snap
}
