package flows

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/arielf-camacho/route-stream/primitives"
)

// ErrNotConvertible is yielded by a PassThroughFlow without a conversion
// function when a value is not of the output type.
var ErrNotConvertible = errors.New("value is not convertible")

var _ = primitives.Flow[int, any](&PassThroughFlow[int, any]{})

// PassThroughFlow is a flow that passes the values of its input through,
// converting them to the output type. Without a conversion function, values
// are type-asserted to OUT. An optional tap observes every value on its way.
type PassThroughFlow[IN any, OUT any] struct {
	ctx context.Context

	convert func(IN) (OUT, error)
	tap     func(IN)
}

// PassThroughBuilder is a fluent builder for PassThroughFlow.
type PassThroughBuilder[IN any, OUT any] struct {
	ctx     context.Context
	convert func(IN) (OUT, error)
	tap     func(IN)
}

// PassThrough creates a new PassThroughBuilder for building a
// PassThroughFlow.
func PassThrough[IN any, OUT any]() *PassThroughBuilder[IN, OUT] {
	return &PassThroughBuilder[IN, OUT]{
		ctx:     context.Background(),
		convert: defaultConvert[IN, OUT],
	}
}

// Context sets the context for the PassThroughFlow.
func (b *PassThroughBuilder[IN, OUT]) Context(
	ctx context.Context,
) *PassThroughBuilder[IN, OUT] {
	b.ctx = ctx
	return b
}

// Convert sets the conversion function of the PassThroughFlow.
func (b *PassThroughBuilder[IN, OUT]) Convert(
	convert func(IN) OUT,
) *PassThroughBuilder[IN, OUT] {
	if convert != nil {
		b.convert = func(v IN) (OUT, error) { return convert(v), nil }
	}
	return b
}

// Tap sets a function observing every value passing through.
func (b *PassThroughBuilder[IN, OUT]) Tap(
	tap func(IN),
) *PassThroughBuilder[IN, OUT] {
	b.tap = tap
	return b
}

// Build creates the PassThroughFlow.
func (b *PassThroughBuilder[IN, OUT]) Build() *PassThroughFlow[IN, OUT] {
	return &PassThroughFlow[IN, OUT]{
		ctx:     b.ctx,
		convert: b.convert,
		tap:     b.tap,
	}
}

// Apply returns the converted values of in.
func (p *PassThroughFlow[IN, OUT]) Apply(
	in primitives.Emitting[IN],
) primitives.Emitting[OUT] {
	source := sequenceOf(in)

	return &emission[OUT]{seq: func(yield func(OUT, error) bool) {
		var zero OUT

		for v, err := range source {
			if cancelled(p.ctx, yield) {
				return
			}
			if err != nil {
				yield(zero, err)
				return
			}

			if p.tap != nil {
				p.tap(v)
			}

			w, err := p.convert(v)
			if err != nil {
				yield(zero, err)
				return
			}
			if !yield(w, nil) {
				return
			}
		}
	}}
}

func defaultConvert[IN any, OUT any](v IN) (OUT, error) {
	w, ok := any(v).(OUT)
	if !ok {
		return w, errors.WithMessage(ErrNotConvertible, fmt.Sprintf("%T to %T", v, w))
	}
	return w, nil
}
