package primitives

// Sink represents any object that can receive the traversed values of type T.
// Its Handle method is a Handler.
type Sink[T any] interface {
	Handle(value T) (done bool, err error)
}
