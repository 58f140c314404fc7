package routes

import (
	"iter"

	"github.com/arielf-camacho/route-stream/assoc"
	"github.com/arielf-camacho/route-stream/primitives"
	"github.com/arielf-camacho/route-stream/route"
	"github.com/arielf-camacho/route-stream/traverse"
)

var _ = primitives.Traversable[any](&streamTraversable[any, any, error]{})
var _ = primitives.Traversable[route.Void](&actionTraversable[any, error]{})

// streamTraversable runs a bound stream route on every traversal and yields
// what its Emitting produces.
type streamTraversable[S, V any, E error] struct {
	call func(flow *route.Flow[S, E]) (route.Emitting[V], error)
}

// actionTraversable runs a bound action route on every traversal. It yields
// no value: the Flowing runs while the traversal pulls, and only its failure
// is reported.
type actionTraversable[S any, E error] struct {
	call func(flow *route.Flow[S, E]) (route.Flowing, error)
}

func stream[S, V any, E error](
	call func(flow *route.Flow[S, E]) (route.Emitting[V], error),
) *traverse.Emittable[V, E] {
	return traverse.New[V, E](&streamTraversable[S, V, E]{call: call})
}

func action[S any, E error](
	call func(flow *route.Flow[S, E]) (route.Flowing, error),
) *traverse.Emittable[route.Void, E] {
	return traverse.New[route.Void, E](&actionTraversable[S, E]{call: call})
}

func (s *streamTraversable[S, V, E]) Sequence(ctx *assoc.Association) iter.Seq2[V, error] {
	return func(yield func(V, error) bool) {
		var zero V

		flow, err := route.NewFlow[S, E](ctx)
		if err != nil {
			yield(zero, err)
			return
		}

		emitting, err := s.call(flow)
		if err != nil {
			yield(zero, err)
			return
		}
		if emitting == nil {
			return
		}

		for v, err := range emitting.Emit() {
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}

func (a *actionTraversable[S, E]) Sequence(ctx *assoc.Association) iter.Seq2[route.Void, error] {
	return func(yield func(route.Void, error) bool) {
		flow, err := route.NewFlow[S, E](ctx)
		if err != nil {
			yield(route.Void{}, err)
			return
		}

		flowing, err := a.call(flow)
		if err != nil {
			yield(route.Void{}, err)
			return
		}
		if flowing == nil {
			return
		}

		if err := flowing.Run(); err != nil {
			yield(route.Void{}, err)
		}
	}
}

func mustRoute(isNil bool) {
	if isNil {
		panic("route cannot be nil")
	}
}
