package methods

import (
	"fmt"

	"github.com/arielf-camacho/route-stream/assoc"
	"github.com/arielf-camacho/route-stream/primitives"
)

var _ = primitives.TraverseMethod(&LimitMethod{})
var _ = primitives.TraverseMethod(&SkipMethod{})

// LimitMethod walks forward but hands at most n values to the handler. The
// walk reports true only when the handler reported done.
//
// Graphically, the LimitMethod looks like this:
//
// -- 1 -- 2 -- 3 -- 4 -- 5 -- | -->
//
// -- Limit(3) -------------------
//
// -> 1 -- 2 -- 3 |            false
type LimitMethod struct {
	n uint
}

// Limit returns a method delivering at most n values.
func Limit(n uint) *LimitMethod {
	return &LimitMethod{n: n}
}

// Walk steps at most n times.
func (m *LimitMethod) Walk(w primitives.Walker, _ *assoc.Association) (bool, error) {
	for i := uint(0); i < m.n; i++ {
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

	return false, nil
}

func (m *LimitMethod) String() string {
	return fmt.Sprintf("%s(%d)", NameLimit, m.n)
}

// SkipMethod discards the first n values, then lets another method walk the
// rest.
//
// Graphically, the SkipMethod looks like this:
//
// -- 1 -- 2 -- 3 -- 4 -- 5 -- | -->
//
// -- Skip(2, Forward) -----------
//
// -------------3 -- 4 -- 5 -- | false
type SkipMethod struct {
	n    uint
	next primitives.TraverseMethod
}

// Skip returns a method discarding n values before handing the walk to
// next. It panics when next is nil.
func Skip(n uint, next primitives.TraverseMethod) *SkipMethod {
	if next == nil {
		panic("next method cannot be nil")
	}

	return &SkipMethod{n: n, next: next}
}

// Walk skips n values and delegates to the next method. When the sequence
// ends while skipping, it reports false.
func (m *SkipMethod) Walk(w primitives.Walker, ctx *assoc.Association) (bool, error) {
	for i := uint(0); i < m.n; i++ {
		more, err := w.Skip()
		if err != nil {
			return false, err
		}
		if !more {
			return false, nil
		}
	}

	return m.next.Walk(w, ctx)
}

func (m *SkipMethod) String() string {
	return fmt.Sprintf("skip(%d, %v)", m.n, m.next)
}
