package sinks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arielf-camacho/route-stream/methods"
	"github.com/arielf-camacho/route-stream/sources"
	"github.com/arielf-camacho/route-stream/traverse"
)

func TestReduceSink_Handle(t *testing.T) {
	t.Parallel()

	items := []int{1, 2, 3, 4, 5}

	cases := map[string]struct {
		expected int
		items    []int
		subject  func() *ReduceSink[int, int]
	}{
		"sums-all-values": {
			expected: 15,
			items:    items,
			subject: func() *ReduceSink[int, int] {
				return Reduce(func(result, value int, _ uint) (int, error) {
					return result + value, nil
				}, 0).Build()
			},
		},
		"multiplies-all-values": {
			expected: 120,
			items:    items,
			subject: func() *ReduceSink[int, int] {
				return Reduce(func(result, value int, _ uint) (int, error) {
					return result * value, nil
				}, 1).Build()
			},
		},
		"finds-maximum-value": {
			expected: 5,
			items:    []int{3, 5, 1},
			subject: func() *ReduceSink[int, int] {
				return Reduce(func(result, value int, _ uint) (int, error) {
					return max(result, value), nil
				}, 0).Build()
			},
		},
		"weights-by-index": {
			expected: 0*1 + 1*2 + 2*3,
			items:    []int{1, 2, 3},
			subject: func() *ReduceSink[int, int] {
				return Reduce(func(result, value int, index uint) (int, error) {
					return result + int(index)*value, nil
				}, 0).Build()
			},
		},
		"empty-input-returns-initial": {
			expected: 42,
			items:    nil,
			subject: func() *ReduceSink[int, int] {
				return Reduce(func(result, value int, _ uint) (int, error) {
					return result + value, nil
				}, 42).Build()
			},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// Given
			sink := c.subject()
			source := sources.Slice(c.items).Build()

			// When
			done, err := traverse.Run(methods.Forward(), source, sink.Handle, nil)

			// Then
			assert.NoError(t, err)
			assert.False(t, done)
			assert.Equal(t, c.expected, sink.Result())
		})
	}
}

func TestReduceSink_ErrorHandling(t *testing.T) {
	t.Parallel()

	// Given
	var handled error
	var handledIndex uint
	var handledResult int
	sink := Reduce(func(result, value int, _ uint) (int, error) {
		if value == 3 {
			return result, assert.AnError
		}
		return result + value, nil
	}, 0).ErrorHandler(func(err error, index uint, _ int, result int) {
		handled, handledIndex, handledResult = err, index, result
	}).Build()
	source := sources.Slice([]int{1, 2, 3, 4, 5}).Build()

	// When
	_, err := traverse.Run(methods.Forward(), source, sink.Handle, nil)

	// Then
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, assert.AnError, handled)
	assert.Equal(t, uint(2), handledIndex)
	assert.Equal(t, 3, handledResult)
	assert.Equal(t, 3, sink.Result())
}

func TestReduceSink_ContextCancellation(t *testing.T) {
	t.Parallel()

	// Given
	ctx, cancel := context.WithCancel(context.Background())
	sink := Reduce(func(result, value int, _ uint) (int, error) {
		if value == 2 {
			cancel()
		}
		return result + value, nil
	}, 0).Context(ctx).Build()
	source := sources.Slice([]int{1, 2, 3, 4}).Build()

	// When
	_, err := traverse.Run(methods.Forward(), source, sink.Handle, nil)

	// Then
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, sink.Result())
}

func TestReduce_NilPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { Reduce[int, int](nil, 0) })
}
