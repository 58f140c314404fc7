package methods

import (
	"github.com/arielf-camacho/route-stream/assoc"
	"github.com/arielf-camacho/route-stream/primitives"
)

var _ = primitives.TraverseMethod(&ForwardMethod{})

// ForwardMethod walks eagerly from the first value to the last, stopping
// only when the handler reports done or fails.
//
// Graphically, the ForwardMethod looks like this:
//
// -- 1 -- 2 -- 3 -- 4 -- 5 -- | -->
//
// -- Forward -------------------
//
// -> 1 -- 2 -- 3 -- 4 -- 5 -- | false
type ForwardMethod struct{}

// Forward returns the eager-forward method.
func Forward() *ForwardMethod {
	return &ForwardMethod{}
}

// Walk steps until the handler reports done (true) or the sequence is
// exhausted (false).
func (m *ForwardMethod) Walk(w primitives.Walker, _ *assoc.Association) (bool, error) {
	for {
		step, err := w.Step()
		if err != nil {
			return false, err
		}

		switch step {
		case primitives.Stopped:
			return true, nil
		case primitives.Exhausted:
			return false, nil
		}
	}
}

func (m *ForwardMethod) String() string {
	return NameForward
}
