package main

import (
	"bytes"
	"fmt"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/woozymasta/plz"
)

func newFmtCmd(a *app) *cobra.Command {
	var (
		write   bool
		compact bool
	)

	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Print a program in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if write && path == "-" {
				return fmt.Errorf("-w cannot be used with standard input")
			}
			if cmd.Flags().Changed("compact") {
				a.cfg.Format.Compact = compact
			}

			p, src, err := a.parseFile(cmd, path)
			if err != nil {
				return err
			}

			if !write {
				return plz.Encode(cmd.OutOrStdout(), p, a.cfg.formatOptions())
			}

			formatted, err := plz.Format(p, a.cfg.formatOptions())
			if err != nil {
				return err
			}
			if bytes.Equal(src, formatted) {
				glog.V(1).Infof("%s: already formatted", path)
				return nil
			}
			if err := plz.EncodeFile(path, p, a.cfg.formatOptions()); err != nil {
				return err
			}
			glog.Infof("%s: rewritten", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "write result to the source file instead of stdout")
	cmd.Flags().BoolVar(&compact, "compact", false, "omit spaces around operators")
	return cmd
}
