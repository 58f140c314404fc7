package sources

import (
	"context"
	"iter"

	"github.com/arielf-camacho/route-stream/assoc"
	"github.com/arielf-camacho/route-stream/primitives"
)

var _ = primitives.Source[any](&SingleSource[any]{})

// SingleSource is a source that emits a single value, obtained by calling
// its get function once per traversal. A failure of get ends the sequence
// with that failure, after notifying the error handler if any.
//
// Graphically, the SingleSource looks like this:
//
// -- SingleSource f(x) = 1 ----------
//
// -----------------------1 ---- | -->
type SingleSource[T any] struct {
	get func() (T, error)

	ctx          context.Context
	errorHandler func(error)
}

// SingleSourceBuilder is a fluent builder for SingleSource.
type SingleSourceBuilder[T any] struct {
	ctx          context.Context
	errorHandler func(error)
	get          func() (T, error)
}

// Single creates a new SingleSourceBuilder for building a SingleSource.
func Single[T any](get func() (T, error)) *SingleSourceBuilder[T] {
	if get == nil {
		panic("get cannot be nil")
	}

	return &SingleSourceBuilder[T]{
		get: get,
		ctx: context.Background(),
	}
}

// Build creates the SingleSource.
func (b *SingleSourceBuilder[T]) Build() *SingleSource[T] {
	return &SingleSource[T]{
		get:          b.get,
		ctx:          b.ctx,
		errorHandler: b.errorHandler,
	}
}

func (b *SingleSourceBuilder[T]) Context(
	ctx context.Context,
) *SingleSourceBuilder[T] {
	b.ctx = ctx
	return b
}

// ErrorHandler sets the error handler for the SingleSource.
func (b *SingleSourceBuilder[T]) ErrorHandler(
	handler func(error),
) *SingleSourceBuilder[T] {
	b.errorHandler = handler
	return b
}

func (s *SingleSource[T]) Sequence(*assoc.Association) iter.Seq2[T, error] {
	return s.Emit()
}

func (s *SingleSource[T]) Emit() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		if err := s.ctx.Err(); err != nil {
			var zero T
			yield(zero, err)
			return
		}

		value, err := s.get()
		if err != nil && s.errorHandler != nil {
			s.errorHandler(err)
		}

		yield(value, err)
	}
}
