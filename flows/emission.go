package flows

import (
	"context"
	"iter"

	"github.com/arielf-camacho/route-stream/primitives"
)

var _ = primitives.Emitting[any](&emission[any]{})

// emission is the Emitting returned by the flows of this package. It is as
// restartable as the input it was built on.
type emission[T any] struct {
	seq iter.Seq2[T, error]
}

func (e *emission[T]) Emit() iter.Seq2[T, error] {
	return e.seq
}

// sequenceOf returns the sequence of in, an empty one when in is nil.
func sequenceOf[T any](in primitives.Emitting[T]) iter.Seq2[T, error] {
	if in == nil {
		return func(func(T, error) bool) {}
	}
	return in.Emit()
}

// cancelled yields the context's error, if any, and reports whether it did.
func cancelled[T any](ctx context.Context, yield func(T, error) bool) bool {
	err := ctx.Err()
	if err == nil {
		return false
	}

	var zero T
	yield(zero, err)
	return true
}
