package flows

import (
	"context"
	"iter"
	"sync"

	"github.com/arielf-camacho/route-stream/primitives"
)

var _ = (primitives.Flow[byte, int])(&MapFlow[byte, int]{})

// MapFlow is a flow that maps the values of its input using the given
// transformation function. The first failure of the function ends the
// output with that failure.
//
// With a parallelism above one, up to that many values are pulled and
// transformed concurrently; they are still emitted in input order.
//
// Graphically, the MapFlow looks like this:
//
// -- 1 -- 2 -- 3 -- 4 -- 5  -- | -->
//
// -- MapFlow f(x) = x*2 --
//
// -- 2 -- 4 -- 6 -- 8 -- 10 -- | -->
type MapFlow[IN any, OUT any] struct {
	ctx context.Context

	parallelism  uint
	errorHandler func(error)

	fn func(IN) (OUT, error)
}

// MapBuilder is a fluent builder for MapFlow.
type MapBuilder[IN any, OUT any] struct {
	fn           func(IN) (OUT, error)
	ctx          context.Context
	parallelism  uint
	errorHandler func(error)
}

// Map creates a new MapBuilder for building a MapFlow.
func Map[IN, OUT any](
	fn func(IN) (OUT, error),
) *MapBuilder[IN, OUT] {
	if fn == nil {
		panic("fn cannot be nil")
	}

	return &MapBuilder[IN, OUT]{
		fn:          fn,
		parallelism: 1,
		ctx:         context.Background(),
	}
}

// Context sets the context for the MapFlow.
func (b *MapBuilder[IN, OUT]) Context(
	ctx context.Context,
) *MapBuilder[IN, OUT] {
	b.ctx = ctx
	return b
}

// Parallelism sets the parallelism level for the MapFlow.
func (b *MapBuilder[IN, OUT]) Parallelism(
	p uint,
) *MapBuilder[IN, OUT] {
	b.parallelism = p
	return b
}

// ErrorHandler sets the error handler for the MapFlow.
func (b *MapBuilder[IN, OUT]) ErrorHandler(
	handler func(error),
) *MapBuilder[IN, OUT] {
	b.errorHandler = handler
	return b
}

// Build creates the MapFlow.
func (b *MapBuilder[IN, OUT]) Build() *MapFlow[IN, OUT] {
	return &MapFlow[IN, OUT]{
		fn:           b.fn,
		ctx:          b.ctx,
		parallelism:  b.parallelism,
		errorHandler: b.errorHandler,
	}
}

// Apply returns the mapped values of in.
func (m *MapFlow[IN, OUT]) Apply(
	in primitives.Emitting[IN],
) primitives.Emitting[OUT] {
	if m.parallelism <= 1 {
		return &emission[OUT]{seq: m.sync(sequenceOf(in))}
	}
	return &emission[OUT]{seq: m.async(sequenceOf(in))}
}

func (m *MapFlow[IN, OUT]) sync(in iter.Seq2[IN, error]) iter.Seq2[OUT, error] {
	return func(yield func(OUT, error) bool) {
		var zero OUT

		for v, err := range in {
			if cancelled(m.ctx, yield) {
				return
			}
			if err != nil {
				yield(zero, err)
				return
			}

			transformed, err := m.fn(v)
			if err != nil {
				m.fail(err)
				yield(zero, err)
				return
			}

			if !yield(transformed, nil) {
				return
			}
		}
	}
}

// async pulls batches of up to parallelism values and transforms each batch
// concurrently.
func (m *MapFlow[IN, OUT]) async(in iter.Seq2[IN, error]) iter.Seq2[OUT, error] {
	return func(yield func(OUT, error) bool) {
		var zero OUT

		next, stop := iter.Pull2(in)
		defer stop()

		batch := make([]IN, 0, m.parallelism)
		results := make([]OUT, m.parallelism)
		failures := make([]error, m.parallelism)

		for {
			if cancelled(m.ctx, yield) {
				return
			}

			batch = batch[:0]
			var upstream error
			for len(batch) < int(m.parallelism) {
				v, err, ok := next()
				if !ok {
					break
				}
				if err != nil {
					upstream = err
					break
				}
				batch = append(batch, v)
			}

			var wg sync.WaitGroup
			for i, v := range batch {
				wg.Add(1)
				go func(i int, v IN) {
					defer wg.Done()
					results[i], failures[i] = m.fn(v)
				}(i, v)
			}
			wg.Wait()

			for i := range batch {
				if failures[i] != nil {
					m.fail(failures[i])
					yield(zero, failures[i])
					return
				}
				if !yield(results[i], nil) {
					return
				}
			}

			if upstream != nil {
				yield(zero, upstream)
				return
			}
			if len(batch) < int(m.parallelism) {
				return
			}
		}
	}
}

func (m *MapFlow[IN, OUT]) fail(err error) {
	if m.errorHandler != nil {
		m.errorHandler(err)
	}
}
