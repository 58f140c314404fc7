package sinks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arielf-camacho/route-stream/methods"
	"github.com/arielf-camacho/route-stream/sinks"
	"github.com/arielf-camacho/route-stream/sources"
	"github.com/arielf-camacho/route-stream/traverse"
)

func TestSingleSink_Handle(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		expected         int
		expectedReceived bool
		expectedDone     bool
		items            []int
	}{
		"receives-single-value": {
			expected:         42,
			expectedReceived: true,
			expectedDone:     true,
			items:            []int{42},
		},
		"receives-zero-value": {
			expected:         0,
			expectedReceived: true,
			expectedDone:     true,
			items:            []int{0},
		},
		"empty-input": {
			expected:         0,
			expectedReceived: false,
			expectedDone:     false,
			items:            nil,
		},
		"stops-after-first-value": {
			expected:         1,
			expectedReceived: true,
			expectedDone:     true,
			items:            []int{1, 2, 3},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// Given
			sink := sinks.Single[int]().Build()
			source := sources.Slice(c.items).Build()

			// When
			done, err := traverse.Run(methods.Forward(), source, sink.Handle, nil)

			// Then
			assert.NoError(t, err)
			assert.Equal(t, c.expectedDone, done)
			value, received := sink.Result()
			assert.Equal(t, c.expected, value)
			assert.Equal(t, c.expectedReceived, received)
		})
	}
}

func TestSingleSink_KeepsFirstValue(t *testing.T) {
	t.Parallel()

	sink := sinks.Single[string]().Build()

	_, _ = sink.Handle("first")
	_, _ = sink.Handle("second")

	value, ok := sink.Result()
	assert.True(t, ok)
	assert.Equal(t, "first", value)
}
