package traverse_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/arielf-camacho/route-stream/assoc"
	"github.com/arielf-camacho/route-stream/primitives"
	"github.com/arielf-camacho/route-stream/traverse"
)

type sourceError struct{ msg string }

func (e *sourceError) Error() string { return e.msg }

type validationError struct{ value int }

func (e *validationError) Error() string { return "invalid value" }

type storageError struct{ key string }

func (e *storageError) Error() string { return "storage failed for " + e.key }

func TestClassify(t *testing.T) {
	t.Parallel()

	methodErr := errors.New("method gave up")

	cases := map[string]struct {
		source         *countingTraversable
		handler        primitives.Handler[int]
		method         primitives.TraverseMethod
		expectedOrigin traverse.Origin
		expectedDone   bool
		check          func(t *testing.T, o traverse.Outcome[*sourceError, *validationError, *storageError])
	}{
		"completed": {
			source:         &countingTraversable{n: 3},
			handler:        func(v int) (bool, error) { return v == 2, nil },
			method:         forward,
			expectedOrigin: traverse.OriginNone,
			expectedDone:   true,
			check: func(t *testing.T, o traverse.Outcome[*sourceError, *validationError, *storageError]) {
				assert.False(t, o.Failed())
				_, ok := o.Route()
				assert.False(t, ok)
			},
		},
		"route-failure": {
			source:         &countingTraversable{n: 1, fail: &sourceError{msg: "disk"}},
			handler:        func(int) (bool, error) { return false, nil },
			method:         forward,
			expectedOrigin: traverse.OriginRoute,
			check: func(t *testing.T, o traverse.Outcome[*sourceError, *validationError, *storageError]) {
				e, ok := o.Route()
				assert.True(t, ok)
				assert.Equal(t, "disk", e.msg)
				_, ok = o.Handler1()
				assert.False(t, ok)
				_, ok = o.Handler2()
				assert.False(t, ok)
			},
		},
		"first-handler-channel": {
			source:         &countingTraversable{n: 3},
			handler:        func(v int) (bool, error) { return false, &validationError{value: v} },
			method:         forward,
			expectedOrigin: traverse.OriginHandler,
			check: func(t *testing.T, o traverse.Outcome[*sourceError, *validationError, *storageError]) {
				h1, ok := o.Handler1()
				assert.True(t, ok)
				assert.Equal(t, 1, h1.value)
				_, ok = o.Handler2()
				assert.False(t, ok)
				_, ok = o.Route()
				assert.False(t, ok)
			},
		},
		"second-handler-channel-wrapped": {
			source: &countingTraversable{n: 3},
			handler: func(int) (bool, error) {
				return false, errors.Wrap(&storageError{key: "k1"}, "saving")
			},
			method:         forward,
			expectedOrigin: traverse.OriginHandler,
			check: func(t *testing.T, o traverse.Outcome[*sourceError, *validationError, *storageError]) {
				h2, ok := o.Handler2()
				assert.True(t, ok)
				assert.Equal(t, "k1", h2.key)
				_, ok = o.Handler1()
				assert.False(t, ok)
			},
		},
		"handler-error-of-route-type-is-not-a-route-failure": {
			source:         &countingTraversable{n: 3},
			handler:        func(int) (bool, error) { return false, &sourceError{msg: "fake"} },
			method:         forward,
			expectedOrigin: traverse.OriginHandler,
			check: func(t *testing.T, o traverse.Outcome[*sourceError, *validationError, *storageError]) {
				_, ok := o.Route()
				assert.False(t, ok)
			},
		},
		"method-failure": {
			source:  &countingTraversable{n: 3},
			handler: func(int) (bool, error) { return false, nil },
			method: primitives.TraverseMethodFunc(func(primitives.Walker, *assoc.Association) (bool, error) {
				return false, methodErr
			}),
			expectedOrigin: traverse.OriginMethod,
			check: func(t *testing.T, o traverse.Outcome[*sourceError, *validationError, *storageError]) {
				assert.Same(t, methodErr, o.Err)
			},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// Given
			emittable := traverse.New[int, *sourceError](c.source)

			// When
			outcome := traverse.Classify[*validationError, *storageError](emittable, c.method, c.handler, nil)

			// Then
			assert.Equal(t, c.expectedOrigin, outcome.Origin)
			assert.Equal(t, c.expectedDone, outcome.Done)
			c.check(t, outcome)
		})
	}
}

func TestClassify_NilEmittable(t *testing.T) {
	t.Parallel()

	// Given
	var emittable *traverse.Emittable[int, *sourceError]
	forward := primitives.TraverseMethodFunc(func(primitives.Walker, *assoc.Association) (bool, error) {
		return true, nil
	})

	// When
	outcome := traverse.Classify[*validationError, *storageError](
		emittable, forward, func(int) (bool, error) { return false, nil }, nil,
	)

	// Then
	assert.False(t, outcome.Done)
	assert.ErrorIs(t, outcome.Err, traverse.ErrInvalidArgument)
	assert.Contains(t, outcome.Err.Error(), "emittable is nil")
	assert.Equal(t, traverse.OriginMethod, outcome.Origin)
}

func TestOrigin_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "none", traverse.OriginNone.String())
	assert.Equal(t, "route", traverse.OriginRoute.String())
	assert.Equal(t, "handler", traverse.OriginHandler.String())
	assert.Equal(t, "method", traverse.OriginMethod.String())
}
