package primitives

import (
	"iter"

	"github.com/arielf-camacho/route-stream/assoc"
)

// Traversable represents a pull-based sequence of values of type T. It is
// never walked directly by callers, a TraverseMethod drives it.
type Traversable[T any] interface {
	// Sequence returns the values of the traversable for the given context.
	// Each call starts over from the traversable's own starting point. A pair
	// with a non-nil error ends the sequence; the value of that pair is
	// meaningless.
	Sequence(ctx *assoc.Association) iter.Seq2[T, error]
}

// Handler is the callback receiving each traversed value. Returning done as
// true asks the walk to stop because a terminal result was found. A non-nil
// error terminates the walk and is returned to the caller unchanged.
type Handler[T any] func(value T) (done bool, err error)
