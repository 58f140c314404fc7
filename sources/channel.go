package sources

import (
	"context"
	"iter"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/arielf-camacho/route-stream/assoc"
	"github.com/arielf-camacho/route-stream/logging"
	"github.com/arielf-camacho/route-stream/primitives"
)

// ErrAlreadyActive is yielded when a one-shot source is traversed twice.
var ErrAlreadyActive = errors.New("source is already streaming")

var _ = primitives.Source[any](&ChannelSource[any]{})

// ChannelSource is a source that emits the values of a given channel until it
// is closed or the context is cancelled. A channel cannot be rewound, so the
// ChannelSource can be traversed only once; later traversals yield
// ErrAlreadyActive.
//
// Receiving blocks the traversal until a value arrives, so the channel must
// be fed by someone else.
//
// Graphically, the ChannelSource looks like this:
//
// ---channel -> 1 -- 2 -- 3 -- 4 -- 5 -- | -->
//
// -- ChannelSource --------------------- | -->
//
// ------------- 1 -- 2 -- 3 -- 4 -- 5 -- | -->
type ChannelSource[T any] struct {
	channel <-chan T

	ctx       context.Context
	activated atomic.Bool
}

// ChannelSourceBuilder is a fluent builder for ChannelSource.
type ChannelSourceBuilder[T any] struct {
	ctx     context.Context
	channel <-chan T
}

// Channel creates a new ChannelSourceBuilder for building a ChannelSource.
func Channel[T any](channel <-chan T) *ChannelSourceBuilder[T] {
	return &ChannelSourceBuilder[T]{
		channel: channel,
		ctx:     context.Background(),
	}
}

// Context sets the context for the ChannelSource.
func (b *ChannelSourceBuilder[T]) Context(
	ctx context.Context,
) *ChannelSourceBuilder[T] {
	b.ctx = ctx
	return b
}

// Build creates the ChannelSource.
func (b *ChannelSourceBuilder[T]) Build() *ChannelSource[T] {
	return &ChannelSource[T]{
		channel: b.channel,
		ctx:     b.ctx,
	}
}

// Sequence returns the values received from the channel.
func (s *ChannelSource[T]) Sequence(ctx *assoc.Association) iter.Seq2[T, error] {
	return s.values(logging.FromContext(ctx))
}

// Emit returns the values received from the channel.
func (s *ChannelSource[T]) Emit() iter.Seq2[T, error] {
	return s.values(logging.FromContext(nil))
}

func (s *ChannelSource[T]) values(logger *logrus.Entry) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T

		if !s.activated.CompareAndSwap(false, true) {
			logger.Warn("ChannelSource is already streaming, cannot be traversed again")
			yield(zero, ErrAlreadyActive)
			return
		}

		for {
			select {
			case <-s.ctx.Done():
				yield(zero, s.ctx.Err())
				return
			case v, ok := <-s.channel:
				if !ok {
					return
				}
				if !yield(v, nil) {
					return
				}
			}
		}
	}
}
