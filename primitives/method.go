package primitives

import "github.com/arielf-camacho/route-stream/assoc"

// Step is the result of pulling one value from a Walker.
type Step uint8

const (
	// Advanced means a value was delivered and the handler asked for more.
	Advanced Step = iota
	// Stopped means a value was delivered and the handler reported done.
	Stopped
	// Exhausted means the sequence has no more values.
	Exhausted
)

func (s Step) String() string {
	switch s {
	case Advanced:
		return "advanced"
	case Stopped:
		return "stopped"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Walker is a traversal in progress: a Traversable bound to a Handler. It is
// what a TraverseMethod drives.
type Walker interface {
	// Step pulls the next value and hands it to the handler.
	Step() (Step, error)

	// Skip pulls the next value without handing it to the handler. It
	// reports false when the sequence is exhausted.
	Skip() (bool, error)
}

// TraverseMethod encapsulates a walking algorithm. Walk returns true when
// the traversal located or consumed a terminal result and false when it
// ended without one. Errors raised by the sequence or the handler must be
// returned unchanged.
type TraverseMethod interface {
	Walk(w Walker, ctx *assoc.Association) (bool, error)
}

// TraverseMethodFunc adapts a function to the TraverseMethod interface.
type TraverseMethodFunc func(w Walker, ctx *assoc.Association) (bool, error)

// Walk calls f(w, ctx).
func (f TraverseMethodFunc) Walk(w Walker, ctx *assoc.Association) (bool, error) {
	return f(w, ctx)
}
