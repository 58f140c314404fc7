package flows

import (
	"github.com/arielf-camacho/route-stream/primitives"
)

var _ = primitives.Flow[int, string](&chained[int, bool, string]{})

// ToFlow composes two flows whose types differ. If you have a flow of
// Flow[int, string] and another of Flow[string, float64], ToFlow returns the
// Flow[int, float64] applying both, one after the other.
//
//	Example of usage:
//
//	from := flows.Map(func(x int) (string, error) { return strconv.Itoa(x), nil }).Build()
//	to := flows.Map(func(x string) (float64, error) { return strconv.ParseFloat(x, 64) }).Build()
//	both := flows.ToFlow(from, to)
func ToFlow[IN, OUT, NEXT any](
	from primitives.Flow[IN, OUT],
	to primitives.Flow[OUT, NEXT],
) primitives.Flow[IN, NEXT] {
	if from == nil || to == nil {
		panic("flows cannot be nil")
	}

	return &chained[IN, OUT, NEXT]{from: from, to: to}
}

// SourceToFlow applies the flow to the values of the source. Nothing is
// pulled until the returned Emitting is consumed.
//
//	Example of usage:
//
//	source := sources.Slice([]int{1, 2, 3}).Build()
//	flow := flows.Map(func(x int) (string, error) { return strconv.Itoa(x), nil }).Build()
//	strings := flows.SourceToFlow(source, flow)
func SourceToFlow[IN, OUT any](
	source primitives.Emitting[IN],
	flow primitives.Flow[IN, OUT],
) primitives.Emitting[OUT] {
	if flow == nil {
		panic("flow cannot be nil")
	}

	return flow.Apply(source)
}

type chained[IN, OUT, NEXT any] struct {
	from primitives.Flow[IN, OUT]
	to   primitives.Flow[OUT, NEXT]
}

func (c *chained[IN, OUT, NEXT]) Apply(
	in primitives.Emitting[IN],
) primitives.Emitting[NEXT] {
	return c.to.Apply(c.from.Apply(in))
}
