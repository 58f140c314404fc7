package primitives

import "iter"

// Emitting is the value-producing result of a route. It is lazy and
// non-restartable: Emit is meant to be consumed once.
type Emitting[T any] interface {
	Emit() iter.Seq2[T, error]
}

// Flowing is the result of an action route, it produces no value.
type Flowing interface {
	Run() error
}
