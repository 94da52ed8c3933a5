package main

import (
	"bytes"
	"fmt"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/woozymasta/plz"
)

func newParseCmd(a *app) *cobra.Command {
	var maxDepth int

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Print the syntax tree of a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("max-depth") {
				a.cfg.Parse.MaxDepth = maxDepth
			}
			p, _, err := a.parseFile(cmd, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.cfg.Output.Format == outputText {
				for _, st := range p.Statements {
					fmt.Fprintln(out, st)
				}
				return nil
			}
			return writeStructured(out, a.cfg.Output.Format, buildTree(p))
		},
	}

	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "maximum parenthesis nesting, 0 for unlimited")
	return cmd
}

// parseFile reads and parses path with the configured options.
// It also returns the raw source.
func (a *app) parseFile(cmd *cobra.Command, path string) (*plz.Program, []byte, error) {
	src, err := readSource(cmd, path)
	if err != nil {
		return nil, nil, err
	}
	p, err := plz.Decode(bytes.NewReader(src), a.cfg.parseOptions())
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", sourceName(path), err)
	}
	glog.V(1).Infof("%s: parsed %d statements", sourceName(path), len(p.Statements))
	return p, src, nil
}
