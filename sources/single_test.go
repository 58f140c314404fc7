package sources_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arielf-camacho/route-stream/helpers"
	"github.com/arielf-camacho/route-stream/sources"
)

func TestSingleSource_Sequence(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	cases := map[string]struct {
		expected         []int
		expectedErr      error
		expectedHandled  error
		expectedGetCalls int
		get              func() (int, error)
		ctx              func() context.Context
	}{
		"emits-value": {
			expected:         []int{7},
			expectedGetCalls: 1,
			get:              func() (int, error) { return 7, nil },
		},
		"failure-reaches-handler-and-sequence": {
			expected:         nil,
			expectedErr:      boom,
			expectedHandled:  boom,
			expectedGetCalls: 1,
			get:              func() (int, error) { return 0, boom },
		},
		"cancelled-context-does-not-call-get": {
			expected:         nil,
			expectedErr:      context.Canceled,
			expectedGetCalls: 0,
			get:              func() (int, error) { return 1, nil },
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// Given
			calls := 0
			var handled error
			builder := sources.
				Single(func() (int, error) { calls++; return c.get() }).
				ErrorHandler(func(err error) { handled = err })
			if c.ctx != nil {
				builder = builder.Context(c.ctx())
			}
			source := builder.Build()

			// When
			values, err := helpers.Collect(source.Sequence(nil))

			// Then
			assert.Equal(t, c.expected, values)
			assert.ErrorIs(t, err, c.expectedErr)
			assert.Equal(t, c.expectedHandled, handled)
			assert.Equal(t, c.expectedGetCalls, calls)
		})
	}
}

func TestSingleSource_CallsGetPerTraversal(t *testing.T) {
	t.Parallel()

	n := 0
	source := sources.Single(func() (int, error) { n++; return n, nil }).Build()

	first, _ := helpers.Collect(source.Emit())
	second, _ := helpers.Collect(source.Emit())

	assert.Equal(t, []int{1}, first)
	assert.Equal(t, []int{2}, second)
}

func TestSingle_NilPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { sources.Single[int](nil) })
}
