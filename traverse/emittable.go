package traverse

import (
	"iter"

	"github.com/arielf-camacho/route-stream/assoc"
	"github.com/arielf-camacho/route-stream/primitives"
)

var _ = primitives.Traversable[any](&Emittable[any, error]{})
var _ = primitives.Emittable[any, error](&Emittable[any, error]{})

// Emittable wraps a Traversable and presents it under both the pull
// (Traverse) and the push (Subscribe) call shapes. Only the pull shape is
// honoured: every subscription fails with ErrSubscribeUnsupported, so an
// Emittable never runs asynchronously.
//
// An Emittable holds nothing but the wrapped traversable: each Traverse call
// drives it again from its own starting point. It is single-consumer unless
// the wrapped traversable says otherwise.
//
// Graphically, traversing an Emittable looks like this:
//
//	Traverse(method, handler, ctx)
//	   |
//	   +-- method.Walk --> Step --> pull 1 --> handler(1)
//	                   --> Step --> pull 2 --> handler(2) --> done
type Emittable[V any, E error] struct {
	traversable primitives.Traversable[V]
}

// New wraps the given traversable. It panics when traversable is nil.
func New[V any, E error](traversable primitives.Traversable[V]) *Emittable[V, E] {
	if traversable == nil {
		panic("traversable cannot be nil")
	}

	return &Emittable[V, E]{traversable: traversable}
}

// Traverse walks the wrapped traversable with the given method, handing the
// values to handler. It returns what the method returns: true when a
// terminal result was located or consumed, false when the walk ended without
// one. Failures of the route (of channel E), of the handler and of the
// method are returned unchanged.
func (e *Emittable[V, E]) Traverse(
	method primitives.TraverseMethod,
	handler primitives.Handler[V],
	ctx *assoc.Association,
) (bool, error) {
	return Run(method, e.traversable, handler, ctx)
}

// Sequence returns the pull sequence of the wrapped traversable.
func (e *Emittable[V, E]) Sequence(ctx *assoc.Association) iter.Seq2[V, error] {
	return e.traversable.Sequence(ctx)
}

// Subscribe always fails: asynchronous subscription is not supported.
func (e *Emittable[V, E]) Subscribe(
	subscriber primitives.Subscriber[V],
	_ ...assoc.KeyValue,
) error {
	if err := requireArgs(argument{name: "subscriber", missing: isNil(subscriber)}); err != nil {
		return err
	}
	return unsupported()
}

// SubscribeChannel always fails: asynchronous subscription is not supported.
func (e *Emittable[V, E]) SubscribeChannel(
	subscriber primitives.ChannelSubscriber[V, E],
	_ ...assoc.KeyValue,
) error {
	if err := requireArgs(argument{name: "subscriber", missing: isNil(subscriber)}); err != nil {
		return err
	}
	return unsupported()
}

// SubscribeContext always fails: asynchronous subscription is not supported.
func (e *Emittable[V, E]) SubscribeContext(
	subscriber primitives.Subscriber[V],
	ctx *assoc.Association,
) error {
	if err := requireArgs(
		argument{name: "subscriber", missing: isNil(subscriber)},
		argument{name: "context", missing: ctx == nil},
	); err != nil {
		return err
	}
	return unsupported()
}

// SubscribeChannelContext always fails: asynchronous subscription is not
// supported.
func (e *Emittable[V, E]) SubscribeChannelContext(
	subscriber primitives.ChannelSubscriber[V, E],
	ctx *assoc.Association,
) error {
	if err := requireArgs(
		argument{name: "subscriber", missing: isNil(subscriber)},
		argument{name: "context", missing: ctx == nil},
	); err != nil {
		return err
	}
	return unsupported()
}
