package route

import (
	"github.com/sirupsen/logrus"

	"github.com/arielf-camacho/route-stream/assoc"
	"github.com/arielf-camacho/route-stream/logging"
)

// StateKey is the association key holding the initial state of a Flow. The
// value is decoded into the state type with mapstructure.
const StateKey = "state"

// Flow is the per-traversal context handed to a route. It carries the
// traversal's association, a mutable state of type S, and pins the primary
// failure channel E of the composition.
//
// A Flow belongs to exactly one traversal and must not be shared.
type Flow[S any, E error] struct {
	ctx    *assoc.Association
	state  S
	logger *logrus.Entry
}

// NewFlow creates the Flow of a traversal running with the given context.
// The initial state is decoded from the StateKey entry when present.
func NewFlow[S any, E error](ctx *assoc.Association) (*Flow[S, E], error) {
	flow := &Flow[S, E]{
		ctx:    ctx,
		logger: logging.FromContext(ctx),
	}

	if _, err := assoc.DecodeKey(ctx, StateKey, &flow.state); err != nil {
		return nil, err
	}

	return flow, nil
}

// Context returns the association of the traversal.
func (f *Flow[S, E]) Context() *assoc.Association {
	return f.ctx
}

// State returns the current state.
func (f *Flow[S, E]) State() S {
	return f.state
}

// SetState replaces the current state.
func (f *Flow[S, E]) SetState(state S) {
	f.state = state
}

// Logger returns the logger of the traversal.
func (f *Flow[S, E]) Logger() *logrus.Entry {
	return f.logger
}

// Fail logs err as the failure of the route and returns it, so a route body
// can write `return nil, flow.Fail(err)`. Only failures of the pinned
// channel E are accepted.
func (f *Flow[S, E]) Fail(err E) error {
	f.logger.WithError(err).Debug("route failed")
	return err
}
