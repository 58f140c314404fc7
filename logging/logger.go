package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/arielf-camacho/route-stream/assoc"
)

// ContextKey is the association key under which a traversal looks up its
// logger. The value may be a *logrus.Logger or a *logrus.Entry.
const ContextKey = "logger"

// Options configures a logger built with New.
type Options struct {
	// Verbose enables debug level logging.
	Verbose bool
	// DisableColor disables colored output of the text formatter.
	DisableColor bool
	// JSON switches to the JSON formatter.
	JSON bool
	// Output is where the logger writes, stderr when nil.
	Output io.Writer
}

// New creates a configured logger. It writes to stderr unless told otherwise
// so that stdout stays free for emitted values.
func New(opts Options) *logrus.Logger {
	logger := logrus.New()
	Configure(logger, opts)
	return logger
}

// Configure applies opts to an existing logger.
func Configure(logger *logrus.Logger, opts Options) {
	logger.SetOutput(os.Stderr)
	if opts.Output != nil {
		logger.SetOutput(opts.Output)
	}

	logger.SetLevel(logrus.InfoLevel)
	if opts.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	if opts.JSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			DisableColors: opts.DisableColor,
			FullTimestamp: true,
		})
	}
}

// NewNop returns a logger discarding everything.
func NewNop() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// FromContext returns the logger carried by the association, or an entry of
// the standard logrus logger when there is none.
func FromContext(ctx *assoc.Association) *logrus.Entry {
	if v, ok := ctx.Get(ContextKey); ok {
		switch l := v.(type) {
		case *logrus.Entry:
			return l
		case *logrus.Logger:
			return logrus.NewEntry(l)
		}
	}

	return logrus.NewEntry(logrus.StandardLogger())
}
