package sinks

import (
	"context"

	"github.com/arielf-camacho/route-stream/primitives"
)

var _ = primitives.Sink[any](&ChannelSink[any]{})

// ChannelSink is a sink that sends the values it receives to a channel. A
// send blocks the traversal until the channel accepts the value or the
// context is cancelled, in which case the traversal stops with the context's
// error.
//
// Graphically, the ChannelSink looks like this:
//
// -- 1 -- 2 -- 3 -- | -->
//
// -- ChannelSink ----------
//
// -> channel <- 1, 2, 3
type ChannelSink[T any] struct {
	out chan<- T

	ctx context.Context
}

// NewChannelSink returns a new ChannelSink sending to the given channel.
func NewChannelSink[T any](
	channel chan<- T,
	opts ...ChannelSinkOption[T],
) *ChannelSink[T] {
	if channel == nil {
		panic("channel cannot be nil")
	}

	sink := &ChannelSink[T]{
		out: channel,
		ctx: context.Background(),
	}

	for _, opt := range opts {
		opt(sink)
	}

	return sink
}

// Handle sends the value to the channel.
func (c *ChannelSink[T]) Handle(value T) (bool, error) {
	if err := c.ctx.Err(); err != nil {
		return false, err
	}

	select {
	case <-c.ctx.Done():
		return false, c.ctx.Err()
	case c.out <- value:
		return false, nil
	}
}
