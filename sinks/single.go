package sinks

import (
	"sync"

	"github.com/arielf-camacho/route-stream/primitives"
)

var _ = primitives.Sink[int](&SingleSink[int]{})

// SingleSink is a sink that keeps the first value it receives and reports
// done right away, so a traversal handing values to it stops after one.
//
// Graphically, the SingleSink looks like this:
//
// -- 1 -- 2 -- 3 ---------------- | -->
//
// -> 1 |
type SingleSink[T any] struct {
	mu       sync.RWMutex
	result   T
	received bool
}

// SingleSinkBuilder is a fluent builder for SingleSink.
type SingleSinkBuilder[T any] struct{}

// Single creates a new SingleSinkBuilder for building a SingleSink.
func Single[T any]() *SingleSinkBuilder[T] {
	return &SingleSinkBuilder[T]{}
}

// Build creates the SingleSink.
func (b *SingleSinkBuilder[T]) Build() *SingleSink[T] {
	return &SingleSink[T]{}
}

// Handle keeps the value unless one was already received.
func (s *SingleSink[T]) Handle(value T) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.received {
		s.result = value
		s.received = true
	}

	return true, nil
}

// Result returns the received value, and whether there was one.
func (s *SingleSink[T]) Result() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result, s.received
}
