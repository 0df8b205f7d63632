package inmem

import "sync/atomic"

// DefaultSequence is the process-wide ID source shared by all event collections, so event IDs are never reused even
// when a new collection is created
var DefaultSequence = NewSequence()

// Sequence is a concurrency-safe ID source counting upwards from 1
type Sequence struct {
	last atomic.Uint64
}

// NewSequence creates a new sequence that starts at 1
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next returns the next ID of the sequence
func (s *Sequence) Next() uint64 {
	return s.last.Add(1)
}
