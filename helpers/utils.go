package helpers

import (
	"iter"

	"github.com/arielf-camacho/route-stream/assoc"
	"github.com/arielf-camacho/route-stream/primitives"
	"github.com/arielf-camacho/route-stream/traverse"
)

// Collect collects the values of the given sequence into a slice and returns
// it. On the first error, the function returns the values collected so far
// along with that error.
func Collect[T any](source iter.Seq2[T, error]) ([]T, error) {
	var result []T
	for v, err := range source {
		if err != nil {
			return result, err
		}
		result = append(result, v)
	}

	return result, nil
}

// Drain pulls the given sequence until it ends, discarding the values.
func Drain[T any](source iter.Seq2[T, error]) error {
	for _, err := range source {
		if err != nil {
			return err
		}
	}

	return nil
}

// Traverse drives the traversable with method and collects every value the
// handler received. It returns the collected values, the method's boolean
// and the failure, if any.
func Traverse[T any](
	method primitives.TraverseMethod,
	traversable primitives.Traversable[T],
	ctx *assoc.Association,
) ([]T, bool, error) {
	collector := NewCollector[T]()
	done, err := traverse.Run(method, traversable, collector.Handle, ctx)
	return collector.Items(), done, err
}
