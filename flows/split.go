package flows

import (
	"context"
	"iter"
	"sync"

	"github.com/arielf-camacho/route-stream/primitives"
)

// SplitFlow splits the values of its input in two, based on the given
// predicate function. Both outputs pull from the same input on demand: the
// values meant for the other output are kept until it asks for them. Both
// outputs should be consumed, or the input is never released.
//
// Graphically, the SplitFlow looks like this:
//
// -- 1 -- 2 -- 3 -- 4 -- 5 ------ | -->
//
// -- SplitFlow f(x) = x % 2 == 0 --
//
// Matching:
// ------- 2 ------- 4 ----------- | -->
//
// NonMatching:
// -- 1 ------- 3 ------- 5 ------ | -->
type SplitFlow[T any] struct {
	ctx          context.Context
	errorHandler func(error)
	predicate    func(T) (bool, error)
}

// SplitBuilder is a fluent builder for SplitFlow.
type SplitBuilder[T any] struct {
	ctx          context.Context
	errorHandler func(error)
	predicate    func(T) (bool, error)
}

// Split creates a new SplitBuilder for building a SplitFlow.
func Split[T any](predicate func(T) (bool, error)) *SplitBuilder[T] {
	if predicate == nil {
		panic("predicate cannot be nil")
	}

	return &SplitBuilder[T]{
		ctx:       context.Background(),
		predicate: predicate,
	}
}

// Context sets the context for the SplitFlow.
func (s *SplitBuilder[T]) Context(ctx context.Context) *SplitBuilder[T] {
	s.ctx = ctx
	return s
}

// ErrorHandler sets the error handler for the SplitFlow.
func (s *SplitBuilder[T]) ErrorHandler(handler func(error)) *SplitBuilder[T] {
	s.errorHandler = handler
	return s
}

// Build creates the SplitFlow.
func (s *SplitBuilder[T]) Build() *SplitFlow[T] {
	return &SplitFlow[T]{
		ctx:          s.ctx,
		errorHandler: s.errorHandler,
		predicate:    s.predicate,
	}
}

// Apply splits in into the values matching the predicate and the others. A
// failure of the input or of the predicate ends both outputs.
func (s *SplitFlow[T]) Apply(
	in primitives.Emitting[T],
) (matching, nonMatching primitives.Emitting[T]) {
	state := &splitState[T]{flow: s, in: sequenceOf(in)}
	return state.side(0), state.side(1)
}

type splitState[T any] struct {
	flow *SplitFlow[T]
	in   iter.Seq2[T, error]

	mu     sync.Mutex
	next   func() (T, error, bool)
	stop   func()
	queues [2][]T
	done   bool
	err    error
	ended  int
}

func (s *splitState[T]) side(index int) primitives.Emitting[T] {
	return &emission[T]{seq: func(yield func(T, error) bool) {
		defer s.release()

		for {
			v, err, ok := s.pull(index)
			if !ok {
				return
			}
			if err != nil {
				yield(v, err)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}}
}

func (s *splitState[T]) pull(index int) (T, error, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	for {
		if queue := s.queues[index]; len(queue) > 0 {
			s.queues[index] = queue[1:]
			return queue[0], nil, true
		}
		if s.done {
			return zero, s.err, s.err != nil
		}
		if err := s.flow.ctx.Err(); err != nil {
			s.finish(err)
			continue
		}
		if s.next == nil {
			s.next, s.stop = iter.Pull2(s.in)
		}

		v, err, ok := s.next()
		switch {
		case !ok:
			s.finish(nil)
		case err != nil:
			s.finish(err)
		default:
			passes, err := s.flow.predicate(v)
			if err != nil {
				if s.flow.errorHandler != nil {
					s.flow.errorHandler(err)
				}
				s.finish(err)
				continue
			}
			if passes {
				s.queues[0] = append(s.queues[0], v)
			} else {
				s.queues[1] = append(s.queues[1], v)
			}
		}
	}
}

func (s *splitState[T]) finish(err error) {
	s.done = true
	s.err = err
	if s.stop != nil {
		s.stop()
	}
}

func (s *splitState[T]) release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ended++
	if s.ended == 2 && s.stop != nil {
		s.stop()
	}
}
