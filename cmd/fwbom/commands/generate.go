package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.trai.ch/fwbom/internal/app"
	"go.trai.ch/zerr"
)

const (
	flagBuildDir      = "build-dir"
	flagOutput        = "output"
	flagConfig        = "config"
	flagName          = "name"
	flagExcludeFile   = "exclude-file"
	flagCPEFile       = "cpe-file"
	flagRequireCPE    = "require-cpe"
	flagIgnoreCPEFile = "ignore-cpe-file"
	flagDiff          = "diff"
	flagWorkers       = "workers"
	flagJSONLog       = "json-log"
)

// jsonSwitch is implemented by loggers that can change their output format.
type jsonSwitch interface {
	SetJSON(enabled bool)
}

func (c *CLI) newGenerateCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Inventory a build directory and write its SBOM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return zerr.Wrap(err, "failed to bind flags")
			}

			if v.GetBool(flagJSONLog) {
				if js, ok := c.logger.(jsonSwitch); ok {
					js.SetJSON(true)
				}
			}

			res, err := c.app.Run(cmd.Context(), app.RunOptions{
				BuildDir:      v.GetString(flagBuildDir),
				Output:        v.GetString(flagOutput),
				ConfigPath:    v.GetString(flagConfig),
				Name:          v.GetString(flagName),
				ExcludeFile:   v.GetString(flagExcludeFile),
				CPEFile:       v.GetString(flagCPEFile),
				IgnoreCPEFile: v.GetString(flagIgnoreCPEFile),
				RequireCPE:    v.GetBool(flagRequireCPE),
				Diff:          v.GetBool(flagDiff),
				Workers:       v.GetInt(flagWorkers),
			})
			if err != nil {
				return err
			}

			if summary := renderReport(res.Report); summary != "" {
				_, _ = fmt.Fprint(cmd.ErrOrStderr(), summary)
			}
			if res.Output != "-" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), res.Output)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringP(flagBuildDir, "b", ".", "OpenWrt build directory")
	flags.StringP(flagOutput, "o", "", "Output path of the document, - for stdout (default sbom-output/<name>.cdx.json)")
	flags.StringP(flagConfig, "c", "", "Configuration file (default <build-dir>/fwbom.yaml)")
	flags.StringP(flagName, "N", "", "Name of the firmware root component")
	flags.StringP(flagExcludeFile, "E", "", "File listing packages to leave out")
	flags.StringP(flagCPEFile, "a", "", "JSON or YAML file mapping package names to CPE identifiers")
	flags.Bool(flagRequireCPE, false, "Fail when a package has no CPE identifier")
	flags.String(flagIgnoreCPEFile, "", "File listing packages exempt from the CPE requirement")
	flags.Bool(flagDiff, false, "Also write the list of packages without CPE identifier")
	flags.Int(flagWorkers, 0, "Number of parallel extraction workers (default number of CPUs)")
	flags.Bool(flagJSONLog, false, "Log in JSON format")
	return cmd
}
