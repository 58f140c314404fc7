package primitives

// Flow represents any object that transforms an Emitting of IN into an
// Emitting of OUT. Applying a flow must not pull from the input; values are
// pulled only when the returned Emitting is consumed.
type Flow[IN any, OUT any] interface {
	Apply(in Emitting[IN]) Emitting[OUT]
}
