package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"balparse/internal/diagfmt"
	"balparse/internal/driver"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] file.bal",
		Short: "Tokenize a Ballerina source file",
		Long:  `Tokenize prints the token stream of a source file, trivia included`,
		Args:  cobra.ExactArgs(1),
		RunE:  runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	ss, err := startSession(cmd, args[0])
	if err != nil {
		return err
	}
	defer ss.close(cmd)

	batch, err := driver.TokenizeFile(commandContext(cmd), args[0], ss.opts)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	res := batch.Files[0]
	reportErr := ss.report(cmd.ErrOrStderr(), batch)
	if res.File == nil {
		return reportErr
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		err = diagfmt.FormatTokensJSON(out, res.Tokens)
	default:
		err = diagfmt.FormatTokensPretty(out, res.Tokens, batch.FileSet)
	}
	if err != nil {
		return err
	}
	return reportErr
}
