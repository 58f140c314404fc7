package route

import (
	"iter"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/arielf-camacho/route-stream/primitives"
)

// ErrConsumed is yielded when an Emitting built by this package is emitted
// more than once.
var ErrConsumed = errors.New("emitting already consumed")

// Emitting is the value-producing result of a route.
type Emitting[V any] = primitives.Emitting[V]

// Flowing is the result of an action route.
type Flowing = primitives.Flowing

// Void is the value type of action traversals.
type Void = struct{}

var _ = primitives.Emitting[any](&generator[any]{})

// generator is a one-shot Emitting backed by a producing function.
type generator[V any] struct {
	activated atomic.Bool
	produce   func(yield func(V) bool) error
}

// Generate creates an Emitting from a producing function. The function is
// called lazily, on the first Emit, and must stop producing once yield
// returns false. Its error ends the sequence.
func Generate[V any](produce func(yield func(V) bool) error) Emitting[V] {
	if produce == nil {
		panic("produce cannot be nil")
	}

	return &generator[V]{produce: produce}
}

// Emit creates an Emitting of the given values.
func Emit[V any](values ...V) Emitting[V] {
	return Generate(func(yield func(V) bool) error {
		for _, v := range values {
			if !yield(v) {
				return nil
			}
		}
		return nil
	})
}

// FromSeq creates an Emitting of the values of seq.
func FromSeq[V any](seq iter.Seq[V]) Emitting[V] {
	return Generate(func(yield func(V) bool) error {
		for v := range seq {
			if !yield(v) {
				return nil
			}
		}
		return nil
	})
}

// Empty creates an Emitting without values.
func Empty[V any]() Emitting[V] {
	return Emit[V]()
}

// Failed creates an Emitting that fails right away with err.
func Failed[V any](err error) Emitting[V] {
	return Generate(func(func(V) bool) error {
		return err
	})
}

func (g *generator[V]) Emit() iter.Seq2[V, error] {
	return func(yield func(V, error) bool) {
		var zero V

		if !g.activated.CompareAndSwap(false, true) {
			yield(zero, ErrConsumed)
			return
		}

		stopped := false
		err := g.produce(func(v V) bool {
			if stopped {
				return false
			}
			if !yield(v, nil) {
				stopped = true
			}
			return !stopped
		})

		if err != nil && !stopped {
			yield(zero, err)
		}
	}
}

var _ = primitives.Flowing(FlowingFunc(nil))

// FlowingFunc adapts a function to the Flowing interface.
type FlowingFunc func() error

// Run calls f.
func (f FlowingFunc) Run() error {
	if f == nil {
		return nil
	}
	return f()
}

// Do creates a Flowing running fn.
func Do(fn func() error) Flowing {
	return FlowingFunc(fn)
}

// Done creates a Flowing that does nothing.
func Done() Flowing {
	return FlowingFunc(nil)
}
