package pipeline

import (
	"sync/atomic"
	"time"
)

// Stats counts samples through one pipeline. Written by the pipeline's
// single caller, read concurrently by the health endpoint.
type Stats struct {
	converted atomic.Uint64
	dropped   atomic.Uint64
	lastStamp atomic.Int64 // unix nanos of the last converted sample
}

func (s *Stats) markConverted(stamp time.Time) {
	s.converted.Add(1)
	s.lastStamp.Store(stamp.UnixNano())
}

func (s *Stats) markDropped() {
	s.dropped.Add(1)
}

// Converted reports samples emitted since startup.
func (s *Stats) Converted() uint64 { return s.converted.Load() }

// Dropped reports samples dropped since startup.
func (s *Stats) Dropped() uint64 { return s.dropped.Load() }

// LastStamp returns the stamp of the most recently converted sample, or the
// zero time if none converted yet.
func (s *Stats) LastStamp() time.Time {
	ns := s.lastStamp.Load()
	if ns == 0 {
		return time.Time{}
	}
	return time.Unix(0, ns)
}
