package main

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/woozymasta/plz"
)

func newTokensCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the token stream of a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}
			return a.runTokens(cmd, args[0], src)
		},
	}
}

func (a *app) runTokens(cmd *cobra.Command, path string, src []byte) error {
	out := cmd.OutOrStdout()
	lx := plz.NewLexer(src)

	if a.cfg.Output.Format == outputText {
		n := 0
		for tok, err := range lx.Tokens() {
			if err != nil {
				return fmt.Errorf("%s: %w", sourceName(path), err)
			}
			fmt.Fprintf(out, "%s\t%s\n", tok.Pos, tok)
			n++
		}
		glog.V(1).Infof("%s: %d tokens", sourceName(path), n)
		return nil
	}

	entries := []tokenEntry{}
	for tok, err := range lx.Tokens() {
		if err != nil {
			return fmt.Errorf("%s: %w", sourceName(path), err)
		}
		entries = append(entries, newTokenEntry(tok))
	}
	glog.V(1).Infof("%s: %d tokens", sourceName(path), len(entries))
	return writeStructured(out, a.cfg.Output.Format, entries)
}
