package traverse

import (
	"iter"

	"github.com/pkg/errors"

	"github.com/arielf-camacho/route-stream/assoc"
	"github.com/arielf-camacho/route-stream/primitives"
)

// Origin tells where a traversal failure came from.
type Origin uint8

const (
	// OriginNone means the traversal did not fail.
	OriginNone Origin = iota
	// OriginRoute means the traversed sequence failed: the route body, its
	// emitting result or the underlying traversable.
	OriginRoute
	// OriginHandler means the handler failed while receiving a value.
	OriginHandler
	// OriginMethod means the traverse method failed on its own.
	OriginMethod
)

func (o Origin) String() string {
	switch o {
	case OriginNone:
		return "none"
	case OriginRoute:
		return "route"
	case OriginHandler:
		return "handler"
	case OriginMethod:
		return "method"
	default:
		return "unknown"
	}
}

// Run drives traversable with method, handing every value to handler. It
// returns exactly what the method returns.
func Run[V any](
	method primitives.TraverseMethod,
	traversable primitives.Traversable[V],
	handler primitives.Handler[V],
	ctx *assoc.Association,
) (bool, error) {
	done, _, err := run(method, traversable, handler, ctx)
	return done, err
}

func run[V any](
	method primitives.TraverseMethod,
	traversable primitives.Traversable[V],
	handler primitives.Handler[V],
	ctx *assoc.Association,
) (bool, Origin, error) {
	if err := requireArgs(
		argument{name: "method", missing: method == nil},
		argument{name: "traversable", missing: traversable == nil},
		argument{name: "handler", missing: handler == nil},
	); err != nil {
		return false, OriginMethod, err
	}

	next, stop := iter.Pull2(traversable.Sequence(ctx))
	defer stop()

	w := &walker[V]{next: next, handler: handler}
	done, err := method.Walk(w, ctx)

	return done, w.originOf(err), err
}

var _ = primitives.Walker(&walker[any]{})

// walker binds a pulled sequence to its handler and remembers the origin of
// the last failure it reported.
type walker[V any] struct {
	next    func() (V, error, bool)
	handler primitives.Handler[V]

	failure error
	origin  Origin
}

func (w *walker[V]) Step() (primitives.Step, error) {
	value, err, ok := w.next()
	if !ok {
		return primitives.Exhausted, nil
	}
	if err != nil {
		return primitives.Exhausted, w.fail(OriginRoute, err)
	}

	done, err := w.handler(value)
	if err != nil {
		return primitives.Stopped, w.fail(OriginHandler, err)
	}
	if done {
		return primitives.Stopped, nil
	}

	return primitives.Advanced, nil
}

func (w *walker[V]) Skip() (bool, error) {
	_, err, ok := w.next()
	if !ok {
		return false, nil
	}
	if err != nil {
		return false, w.fail(OriginRoute, err)
	}

	return true, nil
}

func (w *walker[V]) fail(origin Origin, err error) error {
	w.failure = err
	w.origin = origin
	return err
}

func (w *walker[V]) originOf(err error) Origin {
	switch {
	case err == nil:
		return OriginNone
	case w.failure != nil && errors.Is(err, w.failure):
		return w.origin
	default:
		return OriginMethod
	}
}
