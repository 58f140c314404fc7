package cmd

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arielf-camacho/route-stream/logging"
)

// EnvPrefix prefixes the environment variables read by the routes tool.
const EnvPrefix = "ROUTES"

type rootOpts struct {
	cfgFile     string
	debugModeOn bool
	jsonLogs    bool
	colorMode   string
}

const (
	colorModeNever  = "never"
	colorModeAlways = "always"
)

var longRootCmdDescription = `routes binds step functions ("routes") to their arguments and
traverses the values they emit with a configurable traverse method.
`

// NewRootCmd creates the routes command with all its subcommands. The
// returned command carries its own configuration, so several of them can
// coexist.
func NewRootCmd() *cobra.Command {
	opts := &rootOpts{}
	v := viper.New()
	logger := logrus.New()

	rootCmd := &cobra.Command{
		Use:           "routes",
		Short:         "Run catalog routes and traverse what they emit.",
		Long:          longRootCmdDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(v, opts); err != nil {
				return err
			}

			logging.Configure(logger, logging.Options{
				Verbose:      v.GetBool("debug"),
				DisableColor: opts.colorMode == colorModeNever,
				JSON:         v.GetBool("json"),
				Output:       cmd.ErrOrStderr(),
			})
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file of the routes tool")
	rootCmd.PersistentFlags().BoolVarP(&opts.debugModeOn, "debug", "d", false, "turn on debug mode")
	rootCmd.PersistentFlags().BoolVar(&opts.jsonLogs, "json", false, "log in JSON")
	rootCmd.PersistentFlags().StringVar(&opts.colorMode, "color", colorModeAlways, "set the log color mode, never or always")
	_ = v.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = v.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))

	rootCmd.AddCommand(
		NewRunCmd(v, logger),
		NewListCmd(),
		NewVersionCmd(),
	)

	return rootCmd
}

// Execute runs the routes command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logrus.Errorf("routes-%s: %v", Version, err)
		os.Exit(1)
	}
}

// initConfig reads in the config file, if any, and the environment.
func initConfig(v *viper.Viper, opts *rootOpts) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if opts.cfgFile == "" {
		return nil
	}

	v.SetConfigFile(opts.cfgFile)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "read config %s", opts.cfgFile)
	}

	return nil
}
