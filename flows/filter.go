package flows

import (
	"context"

	"github.com/arielf-camacho/route-stream/primitives"
)

var _ = (primitives.Flow[int, int])(&FilterFlow[int]{})

// FilterFlow is a flow that filters the values of its input using the given
// predicate function. Only values for which the predicate returns true are
// passed through.
//
// Graphically, the FilterFlow looks like this:
//
// -- 1 -- 2 -- 3 -- 4 -- 5 -- | -->
//
// -- FilterFlow f(x) = x > 2 --
//
// ------------ 3 -- 4 -- 5 -- | -->
type FilterFlow[T any] struct {
	ctx context.Context

	errorHandler func(error)

	predicate func(T) (bool, error)
}

// FilterBuilder is a fluent builder for FilterFlow.
type FilterBuilder[T any] struct {
	predicate    func(T) (bool, error)
	ctx          context.Context
	errorHandler func(error)
}

// Filter creates a new FilterBuilder for building a FilterFlow.
func Filter[T any](predicate func(T) (bool, error)) *FilterBuilder[T] {
	if predicate == nil {
		panic("predicate cannot be nil")
	}

	return &FilterBuilder[T]{
		predicate: predicate,
		ctx:       context.Background(),
	}
}

// Context sets the context for the FilterFlow.
func (b *FilterBuilder[T]) Context(ctx context.Context) *FilterBuilder[T] {
	b.ctx = ctx
	return b
}

// ErrorHandler sets the error handler for the FilterFlow.
func (b *FilterBuilder[T]) ErrorHandler(handler func(error)) *FilterBuilder[T] {
	b.errorHandler = handler
	return b
}

// Build creates the FilterFlow.
func (b *FilterBuilder[T]) Build() *FilterFlow[T] {
	return &FilterFlow[T]{
		predicate:    b.predicate,
		ctx:          b.ctx,
		errorHandler: b.errorHandler,
	}
}

// Apply returns the values of in matching the predicate.
func (f *FilterFlow[T]) Apply(in primitives.Emitting[T]) primitives.Emitting[T] {
	source := sequenceOf(in)

	return &emission[T]{seq: func(yield func(T, error) bool) {
		var zero T

		for v, err := range source {
			if cancelled(f.ctx, yield) {
				return
			}
			if err != nil {
				yield(zero, err)
				return
			}

			passes, err := f.predicate(v)
			if err != nil {
				if f.errorHandler != nil {
					f.errorHandler(err)
				}
				yield(zero, err)
				return
			}
			if passes && !yield(v, nil) {
				return
			}
		}
	}}
}
