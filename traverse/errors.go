package traverse

import (
	"reflect"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

var (
	// ErrSubscribeUnsupported is returned by every push-style subscription:
	// an Emittable is traversed synchronously only.
	ErrSubscribeUnsupported = errors.New("subscription unsupported")

	// ErrInvalidArgument is returned when a required argument is missing.
	ErrInvalidArgument = errors.New("invalid argument")
)

type argument struct {
	name    string
	missing bool
}

// requireArgs reports every missing argument at once.
func requireArgs(args ...argument) error {
	var result *multierror.Error
	for _, arg := range args {
		if arg.missing {
			result = multierror.Append(result, errors.Wrapf(ErrInvalidArgument, "%s is nil", arg.name))
		}
	}
	return result.ErrorOrNil()
}

// isNil reports whether v is nil, including a nil pointer, map, slice, func
// or chan held by a non-nil interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

func unsupported() error {
	return errors.WithMessage(ErrSubscribeUnsupported, "synchronous traversal only")
}
