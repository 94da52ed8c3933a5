package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/woozymasta/plz"
)

// errCheckFailed is returned when validation reports an error-level issue.
var errCheckFailed = errors.New("check failed")

// checkReport is the serialized result of the check command.
type checkReport struct {
	File   string      `json:"file" yaml:"file"`
	Issues []plz.Issue `json:"issues" yaml:"issues"`
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Report semantic problems in a program",
		Long: `check parses a program and reports undeclared or redeclared variables,
unused bindings, and division by a literal zero.

The command fails when at least one error-level issue is found.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := a.parseFile(cmd, args[0])
			if err != nil {
				return err
			}

			name := sourceName(args[0])
			issues := plz.Validate(p, a.cfg.validateOptions())

			out := cmd.OutOrStdout()
			if a.cfg.Output.Format == outputText {
				for _, it := range issues {
					fmt.Fprintf(out, "%s:%s\n", name, it)
				}
			} else {
				report := checkReport{File: name, Issues: issues}
				if report.Issues == nil {
					report.Issues = []plz.Issue{}
				}
				if err := writeStructured(out, a.cfg.Output.Format, report); err != nil {
					return err
				}
			}

			if plz.HasErrors(issues) {
				return fmt.Errorf("%s: %w", name, errCheckFailed)
			}
			return nil
		},
	}
}
