package route_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arielf-camacho/route-stream/route"
)

func drain[V any](e route.Emitting[V]) ([]V, error) {
	var values []V
	for v, err := range e.Emit() {
		if err != nil {
			return values, err
		}
		values = append(values, v)
	}
	return values, nil
}

func TestEmitting(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	cases := map[string]struct {
		expected    []int
		expectedErr error
		subject     func() route.Emitting[int]
	}{
		"emits-values-in-order": {
			expected: []int{1, 2, 3},
			subject:  func() route.Emitting[int] { return route.Emit(1, 2, 3) },
		},
		"empty": {
			expected: nil,
			subject:  func() route.Emitting[int] { return route.Empty[int]() },
		},
		"from-seq": {
			expected: []int{4, 5},
			subject:  func() route.Emitting[int] { return route.FromSeq(slices.Values([]int{4, 5})) },
		},
		"failed": {
			expected:    nil,
			expectedErr: boom,
			subject:     func() route.Emitting[int] { return route.Failed[int](boom) },
		},
		"generate-fails-after-values": {
			expected:    []int{1, 2},
			expectedErr: boom,
			subject: func() route.Emitting[int] {
				return route.Generate(func(yield func(int) bool) error {
					if !yield(1) || !yield(2) {
						return nil
					}
					return boom
				})
			},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// Given
			e := c.subject()

			// When
			values, err := drain(e)

			// Then
			assert.Equal(t, c.expected, values)
			assert.ErrorIs(t, err, c.expectedErr)
		})
	}
}

func TestEmitting_IsOneShot(t *testing.T) {
	t.Parallel()

	// Given
	e := route.Emit(1, 2)
	_, err := drain(e)
	assert.NoError(t, err)

	// When
	values, err := drain(e)

	// Then
	assert.Empty(t, values)
	assert.ErrorIs(t, err, route.ErrConsumed)
}

func TestGenerate_IsLazyAndStopsEarly(t *testing.T) {
	t.Parallel()

	// Given
	calls := 0
	produced := 0
	e := route.Generate(func(yield func(int) bool) error {
		calls++
		for i := 0; i < 10; i++ {
			produced++
			if !yield(i) {
				return errors.New("ignored after stop")
			}
		}
		return nil
	})
	assert.Zero(t, calls)

	// When
	var got []int
	for v, err := range e.Emit() {
		assert.NoError(t, err)
		got = append(got, v)
		if v == 2 {
			break
		}
	}

	// Then
	assert.Equal(t, 1, calls)
	assert.Equal(t, 3, produced)
	assert.Equal(t, []int{0, 1, 2}, got)
}

func TestGenerate_NilPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { route.Generate[int](nil) })
}

func TestFlowing(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	runs := 0

	assert.NoError(t, route.Done().Run())
	assert.NoError(t, route.Do(func() error { runs++; return nil }).Run())
	assert.ErrorIs(t, route.Do(func() error { return boom }).Run(), boom)
	assert.Equal(t, 1, runs)
}
