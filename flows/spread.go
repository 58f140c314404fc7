package flows

import (
	"context"

	"github.com/samber/lo"

	"github.com/arielf-camacho/route-stream/primitives"
)

var _ = (primitives.Flow[int, int])(&SpreadFlow[int, int]{})

// SpreadFlow is a flow that spreads every value of its input into zero or
// more output values, emitted in order before the next input value is
// pulled.
//
// Graphically, the SpreadFlow looks like this:
//
// -- 1 ------- 2 ------- 3 ------- | -->
//
// -- SpreadFlow f(x) = [x, x*10] --
//
// -- 1 -- 10 - 2 -- 20 - 3 -- 30 - | -->
type SpreadFlow[IN, OUT any] struct {
	ctx context.Context

	fn func(IN) ([]OUT, error)
}

// SpreadBuilder is a fluent builder for SpreadFlow.
type SpreadBuilder[IN, OUT any] struct {
	ctx context.Context
	fn  func(IN) ([]OUT, error)
}

// Spread creates a new SpreadBuilder for building a SpreadFlow.
func Spread[IN, OUT any](fn func(IN) ([]OUT, error)) *SpreadBuilder[IN, OUT] {
	if fn == nil {
		panic("fn cannot be nil")
	}

	return &SpreadBuilder[IN, OUT]{
		ctx: context.Background(),
		fn:  fn,
	}
}

// Replicate creates a SpreadBuilder emitting every value n times.
func Replicate[T any](n int) *SpreadBuilder[T, T] {
	return Spread(func(v T) ([]T, error) {
		return lo.Times(n, func(int) T { return v }), nil
	})
}

// Context sets the context for the SpreadFlow.
func (b *SpreadBuilder[IN, OUT]) Context(ctx context.Context) *SpreadBuilder[IN, OUT] {
	b.ctx = ctx
	return b
}

// Build creates the SpreadFlow.
func (b *SpreadBuilder[IN, OUT]) Build() *SpreadFlow[IN, OUT] {
	return &SpreadFlow[IN, OUT]{
		ctx: b.ctx,
		fn:  b.fn,
	}
}

// Apply returns the spread values of in.
func (s *SpreadFlow[IN, OUT]) Apply(
	in primitives.Emitting[IN],
) primitives.Emitting[OUT] {
	source := sequenceOf(in)

	return &emission[OUT]{seq: func(yield func(OUT, error) bool) {
		var zero OUT

		for v, err := range source {
			if cancelled(s.ctx, yield) {
				return
			}
			if err != nil {
				yield(zero, err)
				return
			}

			spread, err := s.fn(v)
			if err != nil {
				yield(zero, err)
				return
			}
			for _, w := range spread {
				if !yield(w, nil) {
					return
				}
			}
		}
	}}
}
