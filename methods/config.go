package methods

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/arielf-camacho/route-stream/assoc"
	"github.com/arielf-camacho/route-stream/primitives"
)

// ContextKey is the association key holding a method configuration.
const ContextKey = "traverse"

// Method names accepted by FromConfig.
const (
	NameForward = "forward"
	NameFirst   = "first"
	NameLimit   = "limit"
)

// ErrUnknownMethod is returned when a configuration names no known method.
var ErrUnknownMethod = errors.New("unknown traverse method")

// Config describes a traverse method.
type Config struct {
	// Method is one of forward, first, limit. Empty means forward.
	Method string `mapstructure:"method"`
	// Limit is the number of values delivered by the limit method.
	Limit uint `mapstructure:"limit"`
	// Skip is the number of values discarded before walking.
	Skip uint `mapstructure:"skip"`
	// Log wraps the method with Logged.
	Log bool `mapstructure:"log"`
}

// FromConfig builds the method described by cfg.
func FromConfig(cfg Config) (primitives.TraverseMethod, error) {
	var method primitives.TraverseMethod

	switch strings.ToLower(strings.TrimSpace(cfg.Method)) {
	case "", NameForward:
		method = Forward()
	case NameFirst:
		method = First()
	case NameLimit:
		method = Limit(cfg.Limit)
	default:
		return nil, errors.Wrapf(ErrUnknownMethod, "%q", cfg.Method)
	}

	if cfg.Skip > 0 {
		method = Skip(cfg.Skip, method)
	}
	if cfg.Log {
		method = Logged(method, nil)
	}

	return method, nil
}

// FromContext builds the method configured under ContextKey in ctx. Without
// such an entry it returns Forward.
func FromContext(ctx *assoc.Association) (primitives.TraverseMethod, error) {
	var cfg Config
	if _, err := assoc.DecodeKey(ctx, ContextKey, &cfg); err != nil {
		return nil, err
	}

	return FromConfig(cfg)
}
