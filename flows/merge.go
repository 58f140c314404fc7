package flows

import (
	"context"
	"iter"

	"github.com/samber/lo"

	"github.com/arielf-camacho/route-stream/primitives"
)

var _ = (primitives.Emitting[any])(&MergeFlow[any]{})

// MergeFlow merges several Emittings into one by pulling from them in turn,
// one value each, until all of them are exhausted. The first failure of any
// input ends the merge.
//
// Graphically, the MergeFlow looks like this:
//
// -- 1 ------- 3 ------- 5 -- | -->
//
// ------- 2 ------- 4 ------- | -->
//
// -- MergeFlow ---------- | -->
//
// -> 1 -- 2 -- 3 -- 4 -- 5 -- | -->
type MergeFlow[T any] struct {
	from []primitives.Emitting[T]

	ctx context.Context
}

// MergeBuilder is a fluent builder for MergeFlow.
type MergeBuilder[T any] struct {
	from []primitives.Emitting[T]
	ctx  context.Context
}

// Merge creates a new MergeBuilder for building a MergeFlow.
func Merge[T any](from ...primitives.Emitting[T]) *MergeBuilder[T] {
	return &MergeBuilder[T]{
		from: from,
		ctx:  context.Background(),
	}
}

// Context sets the context for the MergeFlow.
func (b *MergeBuilder[T]) Context(ctx context.Context) *MergeBuilder[T] {
	b.ctx = ctx
	return b
}

// Build creates the MergeFlow.
func (b *MergeBuilder[T]) Build() *MergeFlow[T] {
	return &MergeFlow[T]{
		from: b.from,
		ctx:  b.ctx,
	}
}

type pulled[T any] struct {
	next func() (T, error, bool)
	stop func()
}

// Emit returns the merged values.
func (m *MergeFlow[T]) Emit() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T

		all := lo.Map(m.from, func(e primitives.Emitting[T], _ int) *pulled[T] {
			next, stop := iter.Pull2(sequenceOf(e))
			return &pulled[T]{next: next, stop: stop}
		})
		defer func() {
			for _, p := range all {
				p.stop()
			}
		}()

		active := all
		for len(active) > 0 {
			var remaining []*pulled[T]
			for _, p := range active {
				if cancelled(m.ctx, yield) {
					return
				}

				v, err, ok := p.next()
				if !ok {
					continue
				}
				if err != nil {
					yield(zero, err)
					return
				}
				if !yield(v, nil) {
					return
				}
				remaining = append(remaining, p)
			}
			active = remaining
		}
	}
}
