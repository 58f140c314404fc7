package primitives

import "github.com/arielf-camacho/route-stream/assoc"

// Subscription follows the Reactive Streams subscription contract.
type Subscription interface {
	Request(n int64)
	Cancel()
}

// Subscriber follows the Reactive Streams subscriber contract.
type Subscriber[T any] interface {
	OnSubscribe(s Subscription)
	OnNext(value T)
	OnError(err error)
	OnComplete()
}

// ChannelSubscriber is a subscriber aware of the failure channel E: failures
// of the source are delivered typed through OnFailure, anything else through
// OnError.
type ChannelSubscriber[T any, E error] interface {
	OnSubscribe(s Subscription)
	OnNext(value T)
	OnFailure(err E)
	OnError(err error)
	OnComplete()
}

// Emittable is the push-style production contract. Context is passed either
// as key-value pairs or as an Association.
type Emittable[T any, E error] interface {
	Subscribe(s Subscriber[T], ctx ...assoc.KeyValue) error
	SubscribeChannel(s ChannelSubscriber[T, E], ctx ...assoc.KeyValue) error
	SubscribeContext(s Subscriber[T], ctx *assoc.Association) error
	SubscribeChannelContext(s ChannelSubscriber[T, E], ctx *assoc.Association) error
}
