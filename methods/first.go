package methods

import (
	"github.com/arielf-camacho/route-stream/assoc"
	"github.com/arielf-camacho/route-stream/primitives"
)

var _ = primitives.TraverseMethod(&FirstMethod{})

// FirstMethod short-circuits after the first value: the handler receives at
// most one value, and the walk reports true when there was one.
//
// Graphically, the FirstMethod looks like this:
//
// -- 1 -- 2 -- 3 -- | -->
//
// -- First ------------
//
// -> 1 |          true
type FirstMethod struct{}

// First returns the short-circuiting method.
func First() *FirstMethod {
	return &FirstMethod{}
}

// Walk delivers the first value, if any.
func (m *FirstMethod) Walk(w primitives.Walker, _ *assoc.Association) (bool, error) {
	step, err := w.Step()
	if err != nil {
		return false, err
	}

	return step != primitives.Exhausted, nil
}

func (m *FirstMethod) String() string {
	return NameFirst
}
