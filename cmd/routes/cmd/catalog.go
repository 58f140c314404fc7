package cmd

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/arielf-camacho/route-stream/assoc"
	"github.com/arielf-camacho/route-stream/flows"
	"github.com/arielf-camacho/route-stream/primitives"
	"github.com/arielf-camacho/route-stream/route"
	"github.com/arielf-camacho/route-stream/routes"
	"github.com/arielf-camacho/route-stream/sinks"
	"github.com/arielf-camacho/route-stream/traverse"
)

// ErrBadArgument is returned when a catalog route is given an argument it
// cannot use.
var ErrBadArgument = errors.New("bad argument")

// ErrUnknownRoute is returned when no catalog route has the given name.
var ErrUnknownRoute = errors.New("unknown route")

// invocation is what a catalog entry needs to traverse its route.
type invocation struct {
	method primitives.TraverseMethod
	ctx    *assoc.Association
	out    io.Writer
}

// entry is a route of the catalog, bound from command line arguments.
type entry struct {
	usage       string
	description string
	arity       int
	run         func(args []string, inv invocation) (bool, error)
}

type plain = route.Flow[struct{}, error]

// counter is the state of the count route.
type counter struct {
	Start int `mapstructure:"start"`
	Step  int `mapstructure:"step"`
}

var catalog = map[string]entry{
	"sum": {
		usage:       "sum <a> <b>",
		description: "emits a+b",
		arity:       2,
		run: func(args []string, inv invocation) (bool, error) {
			values, err := ints(args)
			if err != nil {
				return false, err
			}
			return write(routes.Stream2(sumRoute, values[0], values[1]), inv)
		},
	},
	"range": {
		usage:       "range <from> <to> <step>",
		description: "emits from, from+step, ... while below to",
		arity:       3,
		run: func(args []string, inv invocation) (bool, error) {
			values, err := ints(args)
			if err != nil {
				return false, err
			}
			return write(routes.Stream3(rangeRoute, values[0], values[1], values[2]), inv)
		},
	},
	"repeat": {
		usage:       "repeat <word> <times>",
		description: "emits word the given number of times",
		arity:       2,
		run: func(args []string, inv invocation) (bool, error) {
			values, err := ints(args[1:])
			if err != nil {
				return false, err
			}
			return write(routes.Stream2(repeatRoute, args[0], values[0]), inv)
		},
	},
	"count": {
		usage:       "count <n>",
		description: "emits n values counting from state.start by state.step",
		arity:       1,
		run: func(args []string, inv invocation) (bool, error) {
			values, err := ints(args)
			if err != nil {
				return false, err
			}
			return write(routes.Stream1(countRoute, values[0]), inv)
		},
	},
	"even-squares": {
		usage:       "even-squares <n>",
		description: "emits the squares of the even numbers below n",
		arity:       1,
		run: func(args []string, inv invocation) (bool, error) {
			values, err := ints(args)
			if err != nil {
				return false, err
			}
			return write(routes.Stream1(evenSquaresRoute, values[0]), inv)
		},
	},
	"echo": {
		usage:       "echo <message>",
		description: "writes message, emits nothing",
		arity:       1,
		run: func(args []string, inv invocation) (bool, error) {
			return write(routes.Action1(echoRoute(inv.out), args[0]), inv)
		},
	},
}

// lookup returns the catalog entry with the given name, checking the
// number of arguments.
func lookup(name string, args []string) (entry, error) {
	e, ok := catalog[name]
	if !ok {
		return entry{}, errors.Wrapf(ErrUnknownRoute, "%q", name)
	}
	if len(args) != e.arity {
		return entry{}, errors.Wrapf(
			ErrBadArgument, "%s expects %d arguments, got %d", name, e.arity, len(args),
		)
	}
	return e, nil
}

// names returns the names of the catalog routes, sorted.
func names() []string {
	keys := lo.Keys(catalog)
	slices.Sort(keys)
	return keys
}

func write[V any, E error](emittable *traverse.Emittable[V, E], inv invocation) (bool, error) {
	sink := sinks.Writer[V](inv.out).Build()
	return emittable.Traverse(inv.method, sink.Handle, inv.ctx)
}

func ints(args []string) ([]int, error) {
	values := make([]int, 0, len(args))
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errors.Wrapf(ErrBadArgument, "%q is not an integer", arg)
		}
		values = append(values, v)
	}
	return values, nil
}

func sumRoute(_ *plain, a, b int) (route.Emitting[int], error) {
	return route.Emit(a + b), nil
}

func rangeRoute(_ *plain, from, to, step int) (route.Emitting[int], error) {
	if step <= 0 {
		return nil, errors.Wrapf(ErrBadArgument, "step must be positive, got %d", step)
	}

	return route.FromSeq(upTo(from, to, step)), nil
}

func repeatRoute(_ *plain, word string, times int) (route.Emitting[string], error) {
	if times < 0 {
		return nil, errors.Wrapf(ErrBadArgument, "times cannot be negative, got %d", times)
	}

	return flows.Replicate[string](times).Build().Apply(route.Emit(word)), nil
}

func countRoute(flow *route.Flow[counter, error], n int) (route.Emitting[int], error) {
	if flow.State().Step == 0 {
		flow.SetState(counter{Start: flow.State().Start, Step: 1})
	}

	return route.Generate(func(yield func(int) bool) error {
		for i := 0; i < n; i++ {
			state := flow.State()
			if !yield(state.Start) {
				return nil
			}
			state.Start += state.Step
			flow.SetState(state)
		}
		return nil
	}), nil
}

func evenSquaresRoute(_ *plain, n int) (route.Emitting[int], error) {
	even := flows.Filter(func(x int) (bool, error) { return x%2 == 0, nil }).Build()
	square := flows.Map(func(x int) (int, error) { return x * x, nil }).Build()

	return flows.ToFlow[int, int, int](even, square).Apply(route.FromSeq(upTo(0, n, 1))), nil
}

func echoRoute(out io.Writer) route.Route1[*plain, string, route.Flowing] {
	return func(flow *plain, message string) (route.Flowing, error) {
		return route.Do(func() error {
			flow.Logger().WithField("message", message).Debug("echo")
			_, err := fmt.Fprintln(out, message)
			return err
		}), nil
	}
}

func upTo(from, to, step int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := from; i < to; i += step {
			if !yield(i) {
				return
			}
		}
	}
}
