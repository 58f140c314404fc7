package traverse_test

import (
	"iter"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arielf-camacho/route-stream/assoc"
	"github.com/arielf-camacho/route-stream/primitives"
	"github.com/arielf-camacho/route-stream/traverse"
)

// countingTraversable yields 1..n and counts how many times it was started.
type countingTraversable struct {
	n      int
	starts int
	fail   error
}

func (c *countingTraversable) Sequence(*assoc.Association) iter.Seq2[int, error] {
	return func(yield func(int, error) bool) {
		c.starts++
		for i := 1; i <= c.n; i++ {
			if !yield(i, nil) {
				return
			}
		}
		if c.fail != nil {
			yield(0, c.fail)
		}
	}
}

type mockMethod struct {
	mock.Mock
}

func (m *mockMethod) Walk(w primitives.Walker, ctx *assoc.Association) (bool, error) {
	args := m.Called(w, ctx)
	return args.Bool(0), args.Error(1)
}

// forward steps until the walker stops or is exhausted.
var forward = primitives.TraverseMethodFunc(
	func(w primitives.Walker, _ *assoc.Association) (bool, error) {
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
	},
)

func collect(values *[]int) primitives.Handler[int] {
	return func(v int) (bool, error) {
		*values = append(*values, v)
		return false, nil
	}
}

func TestNew_NilPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { traverse.New[int, error](nil) })
}

func TestEmittable_TraverseReturnsMethodResult(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		done bool
		err  error
	}{
		"done":      {done: true},
		"exhausted": {done: false},
		"failed":    {done: false, err: errors.New("method failed")},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// Given
			ctx := assoc.Of(assoc.KV("k", "v"))
			method := &mockMethod{}
			method.On("Walk", mock.Anything, ctx).Return(c.done, c.err).Once()
			emittable := traverse.New[int, error](&countingTraversable{n: 3})

			// When
			done, err := emittable.Traverse(method, func(int) (bool, error) { return false, nil }, ctx)

			// Then
			assert.Equal(t, c.done, done)
			assert.Equal(t, c.err, err)
			method.AssertExpectations(t)
		})
	}
}

func TestEmittable_TraverseIsTransparent(t *testing.T) {
	t.Parallel()

	// Given
	source := &countingTraversable{n: 5}
	emittable := traverse.New[int, error](source)

	var direct []int
	_, err := traverse.Run(forward, primitives.Traversable[int](source), collect(&direct), nil)
	require.NoError(t, err)

	// When
	var adapted []int
	done, err := emittable.Traverse(forward, collect(&adapted), nil)

	// Then
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, adapted)
	assert.Equal(t, direct, adapted)
}

func TestEmittable_TraverseRedrives(t *testing.T) {
	t.Parallel()

	// Given
	source := &countingTraversable{n: 2}
	emittable := traverse.New[int, error](source)

	// When
	var first, second []int
	_, err1 := emittable.Traverse(forward, collect(&first), nil)
	_, err2 := emittable.Traverse(forward, collect(&second), nil)

	// Then
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, 2, source.starts)
	assert.Equal(t, []int{1, 2}, first)
	assert.Equal(t, first, second)
}

func TestEmittable_TraverseStopsOnDone(t *testing.T) {
	t.Parallel()

	emittable := traverse.New[int, error](&countingTraversable{n: 10})

	var seen []int
	done, err := emittable.Traverse(forward, func(v int) (bool, error) {
		seen = append(seen, v)
		return v == 3, nil
	}, nil)

	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, []int{1, 2, 3}, seen)
}

func TestEmittable_TraversePropagatesFailures(t *testing.T) {
	t.Parallel()

	routeErr := errors.New("route failed")
	handlerErr := errors.New("handler failed")

	cases := map[string]struct {
		source      *countingTraversable
		handler     primitives.Handler[int]
		expectedErr error
		expectedN   int
	}{
		"route-failure": {
			source:      &countingTraversable{n: 2, fail: routeErr},
			handler:     func(int) (bool, error) { return false, nil },
			expectedErr: routeErr,
			expectedN:   2,
		},
		"handler-failure-ends-walk": {
			source: &countingTraversable{n: 5},
			handler: func(v int) (bool, error) {
				if v == 2 {
					return false, handlerErr
				}
				return false, nil
			},
			expectedErr: handlerErr,
			expectedN:   2,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// Given
			emittable := traverse.New[int, error](c.source)
			calls := 0
			handler := func(v int) (bool, error) {
				calls++
				return c.handler(v)
			}

			// When
			done, err := emittable.Traverse(forward, handler, nil)

			// Then
			assert.False(t, done)
			assert.Same(t, c.expectedErr, err)
			assert.Equal(t, c.expectedN, calls)
		})
	}
}

func TestRun_MissingArguments(t *testing.T) {
	t.Parallel()

	_, err := traverse.Run[int](nil, nil, nil, nil)

	assert.ErrorIs(t, err, traverse.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "method is nil")
	assert.Contains(t, err.Error(), "traversable is nil")
	assert.Contains(t, err.Error(), "handler is nil")
}

func TestEmittable_Sequence(t *testing.T) {
	t.Parallel()

	emittable := traverse.New[int, error](&countingTraversable{n: 3})

	var values []int
	for v, err := range emittable.Sequence(nil) {
		require.NoError(t, err)
		values = append(values, v)
	}

	assert.Equal(t, []int{1, 2, 3}, values)
}
