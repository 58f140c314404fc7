package traverse

import (
	"github.com/pkg/errors"

	"github.com/arielf-camacho/route-stream/assoc"
	"github.com/arielf-camacho/route-stream/primitives"
)

// Outcome is the tagged result of a traversal. It tells apart the failure of
// the route (channel E) from the failures of the handler (channels H1 and
// H2) without relying on the error types alone.
type Outcome[E, H1, H2 error] struct {
	// Done is the boolean returned by the traverse method.
	Done bool
	// Err is the failure, unchanged, or nil.
	Err error
	// Origin tells where Err came from.
	Origin Origin
}

// Failed reports whether the traversal failed.
func (o Outcome[E, H1, H2]) Failed() bool {
	return o.Err != nil
}

// Route returns the failure of the route when it is of channel E.
func (o Outcome[E, H1, H2]) Route() (E, bool) {
	return as[E](o.Err, o.Origin == OriginRoute)
}

// Handler1 returns the failure of the handler when it is of channel H1.
func (o Outcome[E, H1, H2]) Handler1() (H1, bool) {
	return as[H1](o.Err, o.Origin == OriginHandler)
}

// Handler2 returns the failure of the handler when it is of channel H2.
func (o Outcome[E, H1, H2]) Handler2() (H2, bool) {
	return as[H2](o.Err, o.Origin == OriginHandler)
}

// Classify traverses the emittable like Emittable.Traverse does and tags the
// result with the origin of the failure. H1 and H2 name the failure channels
// of the handler.
func Classify[H1, H2 error, V any, E error](
	emittable *Emittable[V, E],
	method primitives.TraverseMethod,
	handler primitives.Handler[V],
	ctx *assoc.Association,
) Outcome[E, H1, H2] {
	if err := requireArgs(argument{name: "emittable", missing: emittable == nil}); err != nil {
		return Outcome[E, H1, H2]{Err: err, Origin: OriginMethod}
	}

	done, origin, err := run(method, emittable.traversable, handler, ctx)
	return Outcome[E, H1, H2]{Done: done, Err: err, Origin: origin}
}

func as[T error](err error, matches bool) (T, bool) {
	var target T
	if err == nil || !matches {
		return target, false
	}
	if !errors.As(err, &target) {
		return target, false
	}
	return target, true
}
