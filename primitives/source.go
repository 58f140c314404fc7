package primitives

// Source is an interface that represents a source of data usable both as the
// emitting result of a route and as a standalone Traversable.
type Source[T any] interface {
	Traversable[T]
	Emitting[T]
}
