package methods

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/arielf-camacho/route-stream/assoc"
	"github.com/arielf-camacho/route-stream/logging"
	"github.com/arielf-camacho/route-stream/primitives"
)

var _ = primitives.TraverseMethod(&LoggedMethod{})

// LoggedMethod decorates a method with logging: every walk is logged at
// debug level, and failures at warn level. Nothing else changes.
type LoggedMethod struct {
	method primitives.TraverseMethod
	logger *logrus.Entry
}

// Logged decorates method. When logger is nil, the logger of each walk's
// association is used (see logging.FromContext).
func Logged(method primitives.TraverseMethod, logger *logrus.Entry) *LoggedMethod {
	if method == nil {
		panic("method cannot be nil")
	}

	return &LoggedMethod{method: method, logger: logger}
}

// Walk delegates to the decorated method and logs the result.
func (m *LoggedMethod) Walk(w primitives.Walker, ctx *assoc.Association) (bool, error) {
	logger := m.logger
	if logger == nil {
		logger = logging.FromContext(ctx)
	}
	logger = logger.WithField("method", fmt.Sprint(m.method))

	started := time.Now()
	logger.Debug("traversal started")

	done, err := m.method.Walk(w, ctx)

	logger = logger.WithFields(logrus.Fields{
		"done":    done,
		"elapsed": time.Since(started),
	})
	if err != nil {
		logger.WithError(err).Warn("traversal failed")
	} else {
		logger.Debug("traversal finished")
	}

	return done, err
}

func (m *LoggedMethod) String() string {
	return fmt.Sprint(m.method)
}
