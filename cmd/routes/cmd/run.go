package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arielf-camacho/route-stream/assoc"
	"github.com/arielf-camacho/route-stream/logging"
	"github.com/arielf-camacho/route-stream/methods"
	"github.com/arielf-camacho/route-stream/metrics"
	"github.com/arielf-camacho/route-stream/primitives"
)

var longRunCmdDescription = `Run a catalog route with the given arguments and write every value it
emits to stdout, one per line.

The traversal context is read from a YAML mapping (--context). Its "state"
entry seeds the state of the route, its "traverse" entry configures the
traverse method; flags override the latter.`

var exampleForRunCmd = `
routes run sum 3 4
routes run range 0 100 5 --method limit --limit 3
routes run count 5 --context ctx.yaml --metrics
ROUTES_METHOD=first routes run repeat hello 10
`

type runOpts struct {
	contextFile string
	metrics     bool
}

// NewRunCmd creates the run command.
func NewRunCmd(v *viper.Viper, logger *logrus.Logger) *cobra.Command {
	opts := &runOpts{}

	runCmd := &cobra.Command{
		Use:     "run <route> [args...]",
		Short:   "Run a catalog route and print what it emits",
		Long:    longRunCmdDescription,
		Example: exampleForRunCmd,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := lookup(args[0], args[1:])
			if err != nil {
				return err
			}

			ctx, err := loadContext(opts.contextFile)
			if err != nil {
				return err
			}
			ctx = ctx.With(assoc.KV(logging.ContextKey, logger))

			method, err := methodFor(v, ctx)
			if err != nil {
				return err
			}

			var reg *prometheus.Registry
			if opts.metrics {
				reg = prometheus.NewRegistry()
				method = metrics.Instrument(method, metrics.MustNewCollector(reg), "")
			}

			log := logger.WithFields(logrus.Fields{"route": args[0], "method": fmt.Sprint(method)})
			log.Debug("running route")

			done, err := e.run(args[1:], invocation{
				method: method,
				ctx:    ctx,
				out:    cmd.OutOrStdout(),
			})
			if err != nil {
				return errors.Wrapf(err, "run %s", args[0])
			}
			log.WithField("done", done).Debug("route finished")

			if reg != nil {
				return writeMetrics(cmd, reg)
			}
			return nil
		},
	}

	runCmd.Flags().StringVarP(&opts.contextFile, "context", "c", "", "YAML file holding the traversal context")
	runCmd.Flags().BoolVar(&opts.metrics, "metrics", false, "print the traversal metrics to stderr when done")
	runCmd.Flags().String("method", "", "traverse method: forward, first or limit")
	runCmd.Flags().Uint("limit", 0, "number of values delivered by the limit method")
	runCmd.Flags().Uint("skip", 0, "number of values discarded before traversing")
	_ = v.BindPFlag("method", runCmd.Flags().Lookup("method"))
	_ = v.BindPFlag("limit", runCmd.Flags().Lookup("limit"))
	_ = v.BindPFlag("skip", runCmd.Flags().Lookup("skip"))

	return runCmd
}

func loadContext(path string) (*assoc.Association, error) {
	if path == "" {
		return assoc.Empty(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read context")
	}

	ctx, err := assoc.FromYAML(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parse context %s", path)
	}

	return ctx, nil
}

// methodFor builds the traverse method from the context's "traverse" entry,
// overridden by whatever the flags, the environment or the config file set.
func methodFor(v *viper.Viper, ctx *assoc.Association) (primitives.TraverseMethod, error) {
	var cfg methods.Config
	if _, err := assoc.DecodeKey(ctx, methods.ContextKey, &cfg); err != nil {
		return nil, errors.Wrap(err, "decode traverse method")
	}

	if v.IsSet("method") && v.GetString("method") != "" {
		cfg.Method = v.GetString("method")
	}
	if v.IsSet("limit") && v.GetUint("limit") > 0 {
		cfg.Limit = v.GetUint("limit")
	}
	if v.IsSet("skip") && v.GetUint("skip") > 0 {
		cfg.Skip = v.GetUint("skip")
	}
	cfg.Log = cfg.Log || v.GetBool("debug")

	return methods.FromConfig(cfg)
}

func writeMetrics(cmd *cobra.Command, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}

	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(cmd.ErrOrStderr(), family); err != nil {
			return errors.Wrap(err, "write metrics")
		}
	}

	return nil
}
