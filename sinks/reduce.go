package sinks

import (
	"context"
	"sync"

	"github.com/arielf-camacho/route-stream/primitives"
)

var _ = primitives.Sink[int](&ReduceSink[int, any]{})

// ReduceSink is a sink that reduces the values it receives to a single value
// using the given reduce function. A failure of the function, or a cancelled
// context, stops the traversal with that failure.
//
// Graphically, the ReduceSink looks like this:
//
// -- 1 -- 2 -- 3 -- 4 -- 5 ------- | -->
//
// -- ReduceSink f(result, value, index) = result + value --
//
// -> ----------------------- 15 -- |
type ReduceSink[IN, OUT any] struct {
	ctx          context.Context
	mu           sync.RWMutex
	errorHandler func(error, uint, IN, OUT)
	fn           func(result OUT, value IN, index uint) (OUT, error)

	index  uint
	result OUT
}

// ReduceSinkBuilder is a fluent builder for ReduceSink.
type ReduceSinkBuilder[IN, OUT any] struct {
	fn           func(result OUT, value IN, index uint) (OUT, error)
	ctx          context.Context
	initial      OUT
	errorHandler func(error, uint, IN, OUT)
}

// Reduce creates a new ReduceSinkBuilder for building a ReduceSink.
func Reduce[IN, OUT any](
	fn func(result OUT, value IN, index uint) (OUT, error),
	initial OUT,
) *ReduceSinkBuilder[IN, OUT] {
	if fn == nil {
		panic("fn cannot be nil")
	}

	return &ReduceSinkBuilder[IN, OUT]{
		fn:      fn,
		initial: initial,
		ctx:     context.Background(),
	}
}

// Context sets the context for the ReduceSink.
func (b *ReduceSinkBuilder[IN, OUT]) Context(
	ctx context.Context,
) *ReduceSinkBuilder[IN, OUT] {
	b.ctx = ctx
	return b
}

// ErrorHandler sets the error handler for the ReduceSink. It is called with
// the failure, the index and value that caused it, and the result so far.
func (b *ReduceSinkBuilder[IN, OUT]) ErrorHandler(
	handler func(error, uint, IN, OUT),
) *ReduceSinkBuilder[IN, OUT] {
	b.errorHandler = handler
	return b
}

// Build creates the ReduceSink.
func (b *ReduceSinkBuilder[IN, OUT]) Build() *ReduceSink[IN, OUT] {
	return &ReduceSink[IN, OUT]{
		fn:           b.fn,
		ctx:          b.ctx,
		errorHandler: b.errorHandler,
		result:       b.initial,
	}
}

// Handle accumulates the value into the result.
func (s *ReduceSink[IN, OUT]) Handle(value IN) (bool, error) {
	if err := s.ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.fn(s.result, value, s.index)
	if err != nil {
		if s.errorHandler != nil {
			s.errorHandler(err, s.index, value, s.result)
		}
		return false, err
	}

	s.result = result
	s.index++

	return false, nil
}

// Result returns the result (as of now) of the reduce operation.
func (s *ReduceSink[IN, OUT]) Result() OUT {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result
}
