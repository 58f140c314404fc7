package methods_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arielf-camacho/route-stream/assoc"
	"github.com/arielf-camacho/route-stream/helpers"
	"github.com/arielf-camacho/route-stream/methods"
	"github.com/arielf-camacho/route-stream/sources"
)

func TestFromConfig(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		expected    []int
		expectedErr error
		cfg         methods.Config
	}{
		"empty-is-forward": {
			expected: []int{1, 2, 3, 4},
			cfg:      methods.Config{},
		},
		"forward": {
			expected: []int{1, 2, 3, 4},
			cfg:      methods.Config{Method: "forward"},
		},
		"first-ignores-case": {
			expected: []int{1},
			cfg:      methods.Config{Method: " First "},
		},
		"limit": {
			expected: []int{1, 2},
			cfg:      methods.Config{Method: "limit", Limit: 2},
		},
		"limit-with-skip": {
			expected: []int{2, 3},
			cfg:      methods.Config{Method: "limit", Limit: 2, Skip: 1},
		},
		"logged": {
			expected: []int{1},
			cfg:      methods.Config{Method: "first", Log: true},
		},
		"unknown": {
			expectedErr: methods.ErrUnknownMethod,
			cfg:         methods.Config{Method: "backwards"},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// Given
			source := sources.Slice([]int{1, 2, 3, 4}).Build()

			// When
			method, err := methods.FromConfig(c.cfg)

			// Then
			if c.expectedErr != nil {
				assert.ErrorIs(t, err, c.expectedErr)
				assert.Nil(t, method)
				return
			}
			require.NoError(t, err)
			values, _, err := helpers.Traverse[int](method, source, nil)
			assert.NoError(t, err)
			assert.Equal(t, c.expected, values)
		})
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		expected    []int
		expectedErr bool
		ctx         *assoc.Association
	}{
		"nil-association-is-forward": {
			expected: []int{1, 2, 3},
			ctx:      nil,
		},
		"without-entry-is-forward": {
			expected: []int{1, 2, 3},
			ctx:      assoc.Of(assoc.KV("other", 1)),
		},
		"from-map": {
			expected: []int{2},
			ctx: assoc.Of(assoc.KV(methods.ContextKey, map[string]any{
				"method": "first",
				"skip":   "1",
			})),
		},
		"from-struct": {
			expected: []int{1, 2},
			ctx: assoc.Of(assoc.KV(methods.ContextKey, methods.Config{
				Method: "limit",
				Limit:  2,
			})),
		},
		"undecodable-entry": {
			expectedErr: true,
			ctx:         assoc.Of(assoc.KV(methods.ContextKey, "first")),
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// Given
			source := sources.Slice([]int{1, 2, 3}).Build()

			// When
			method, err := methods.FromContext(c.ctx)

			// Then
			if c.expectedErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			values, _, err := helpers.Traverse[int](method, source, c.ctx)
			assert.NoError(t, err)
			assert.Equal(t, c.expected, values)
		})
	}
}
