package cmd

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Version is the version of the routes tool, set at build time.
var Version = "dev"

// Info describes the build of the routes tool.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`
	Platform  string `json:"platform" yaml:"platform"`
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	var (
		shortPrint bool
		output     string
	)

	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print version info",
		Args:    cobra.NoArgs,
		Example: `routes version`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output != "yaml" && output != "json" {
				return errors.New("output format must be yaml or json")
			}
			if shortPrint {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), Version)
				return err
			}

			info := Info{
				Version:   Version,
				GoVersion: runtime.Version(),
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			}

			var data []byte
			var err error
			if output == "json" {
				data, err = json.MarshalIndent(info, "", "  ")
				data = append(data, '\n')
			} else {
				data, err = yaml.Marshal(info)
			}
			if err != nil {
				return errors.Wrap(err, "marshal version info")
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	versionCmd.Flags().BoolVar(&shortPrint, "short", false, "If true, print just the version number.")
	versionCmd.Flags().StringVarP(&output, "output", "o", "yaml", "choose `yaml` or `json` format to print version info")

	return versionCmd
}
