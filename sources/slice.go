package sources

import (
	"context"
	"iter"

	"github.com/arielf-camacho/route-stream/assoc"
	"github.com/arielf-camacho/route-stream/primitives"
)

var _ = primitives.Source[any](&SliceSource[any]{})

// SliceSource is a source that emits the values of a given slice in order.
// Every traversal starts over from the first value. If the context is
// cancelled, the SliceSource stops and yields the context's error.
//
// Graphically, the SliceSource looks like this:
//
//	SliceSource (1, 2, 3, 4, 5, ...)
//
// -- 1 -- 2 -- 3 -- 4 -- 5 -- | -->
type SliceSource[T any] struct {
	slice []T
	ctx   context.Context
}

// SliceSourceBuilder is a fluent builder for SliceSource.
type SliceSourceBuilder[T any] struct {
	slice []T
	ctx   context.Context
}

// Slice creates a new SliceSourceBuilder for building a SliceSource.
func Slice[T any](slice []T) *SliceSourceBuilder[T] {
	return &SliceSourceBuilder[T]{
		slice: slice,
		ctx:   context.Background(),
	}
}

// Context sets the context for the SliceSource.
func (b *SliceSourceBuilder[T]) Context(
	ctx context.Context,
) *SliceSourceBuilder[T] {
	b.ctx = ctx
	return b
}

// Build creates the SliceSource.
func (b *SliceSourceBuilder[T]) Build() *SliceSource[T] {
	return &SliceSource[T]{
		slice: b.slice,
		ctx:   b.ctx,
	}
}

// Sequence returns the values of the slice.
func (s *SliceSource[T]) Sequence(*assoc.Association) iter.Seq2[T, error] {
	return s.Emit()
}

// Emit returns the values of the slice.
func (s *SliceSource[T]) Emit() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T

		for _, v := range s.slice {
			if err := s.ctx.Err(); err != nil {
				yield(zero, err)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}
