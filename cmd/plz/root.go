package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	cfgFile string
	output  string
	cfg     *Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "plz",
		Short: "Tools for plz programs",
		Long: `plz lexes, parses, formats, and checks programs written in plz,
a small language of let bindings, assignments, and print statements
over 32-bit integer arithmetic.

Commands read a file path, or standard input when the path is "-".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// glog refuses to log until the go flag set reports parsed.
			if !flag.Parsed() {
				_ = flag.CommandLine.Parse(nil)
			}
			return a.loadConfig(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $PLZ_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", "", "output format: text, json or yaml")
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	rootCmd.AddCommand(
		newTokensCmd(a),
		newParseCmd(a),
		newFmtCmd(a),
		newCheckCmd(a),
	)
	return rootCmd
}

// loadConfig reads the config file and applies flag overrides.
func (a *app) loadConfig(cmd *cobra.Command) error {
	cfg, err := LoadConfig(a.cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("output") {
		if err := checkOutputFormat(a.output); err != nil {
			return err
		}
		cfg.Output.Format = a.output
	}
	a.cfg = cfg
	glog.V(1).Infof("config loaded: %+v", *cfg)
	return nil
}

// readSource returns the contents of path, or of stdin for "-".
func readSource(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return b, nil
}

// sourceName is the label used for path in diagnostics.
func sourceName(path string) string {
	if path == "-" {
		return "<stdin>"
	}
	return path
}
