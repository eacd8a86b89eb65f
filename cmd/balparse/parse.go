package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"balparse/internal/diagfmt"
	"balparse/internal/driver"
)

var parseFormats = map[string]bool{"tree": true, "json": true, "msgpack": true, "events": true}

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] <file.bal|directory>",
		Short: "Parse Ballerina sources into a concrete syntax tree",
		Long: `Parse builds the concrete syntax tree of a source file, or of every .bal
file under a directory, and prints it in the selected format`,
		Args: cobra.ExactArgs(1),
		RunE: runParse,
	}
	cmd.Flags().String("format", "tree", "output format (tree|json|msgpack|events)")
	cmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	cmd.Flags().Bool("spans", false, "show byte spans in tree output")
	cmd.Flags().Bool("trivia", false, "show whitespace and comments in tree output")
	cmd.Flags().Bool("cache", false, "reuse trees from the user cache directory")
	cmd.Flags().Bool("drop-cache", false, "clear the tree cache before parsing")
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	target := args[0]
	st, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	ss, err := startSession(cmd, target)
	if err != nil {
		return err
	}
	defer ss.close(cmd)

	format := ss.Format
	if format == "" {
		format = "tree"
	}
	if !parseFormats[format] {
		return fmt.Errorf("unknown format: %s", format)
	}
	if err := openCache(cmd, ss); err != nil {
		return err
	}

	ctx := commandContext(cmd)
	out := cmd.OutOrStdout()
	var batch *driver.Batch
	if st.IsDir() {
		batch, err = parseDir(cmd, ss, target)
	} else {
		batch, err = driver.ParseFile(ctx, target, ss.opts)
	}
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	errOut := cmd.ErrOrStderr()
	reportErr := ss.report(errOut, batch)
	if err := writeParseOutput(cmd, ss, out, format, batch, st.IsDir()); err != nil {
		return err
	}
	if st.IsDir() && !ss.quiet {
		failed := 0
		for i := range batch.Files {
			if batch.Files[i].HasErrors() {
				failed++
			}
		}
		warn(errOut, "parsed %d files, %d with errors", len(batch.Files), failed)
	}
	return reportErr
}

func parseDir(cmd *cobra.Command, ss *session, dir string) (*driver.Batch, error) {
	ctx := commandContext(cmd)
	out := cmd.OutOrStdout()
	if ss.quiet || !shouldUseTUI(ss.ui, out) {
		return driver.ParseDir(ctx, dir, ss.opts)
	}
	files, err := driver.ListSources(dir)
	if err != nil {
		return nil, err
	}
	return parseDirWithUI(ctx, out, dir, files, ss.opts)
}

func writeParseOutput(cmd *cobra.Command, ss *session, out io.Writer, format string, batch *driver.Batch, many bool) error {
	jsonOpts := diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true}
	switch format {
	case "json":
		docs := make([]diagfmt.FileJSON, 0, len(batch.Files))
		for _, r := range batch.Files {
			if r.Tree != nil {
				docs = append(docs, diagfmt.BuildFileJSON(r.Tree, r.Root, r.Bag.Items(), batch.FileSet, jsonOpts))
			}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if !many && len(docs) == 1 {
			return enc.Encode(docs[0])
		}
		return enc.Encode(docs)
	case "msgpack":
		for _, r := range batch.Files {
			if r.Tree == nil {
				continue
			}
			if err := diagfmt.FormatMsgpack(out, r.Tree, r.Root, r.Bag.Items(), batch.FileSet, jsonOpts); err != nil {
				return err
			}
		}
		return nil
	case "events":
		enc := json.NewEncoder(out)
		for _, r := range batch.Files {
			if r.Tree == nil {
				continue
			}
			if many {
				if err := enc.Encode(diagfmt.EventJSON{Event: "file", Text: r.Path}); err != nil {
					return err
				}
			}
			if err := diagfmt.FormatEvents(out, r.Tree, r.Root); err != nil {
				return err
			}
		}
		return nil
	}

	spans, err := cmd.Flags().GetBool("spans")
	if err != nil {
		return err
	}
	trivia, err := cmd.Flags().GetBool("trivia")
	if err != nil {
		return err
	}
	treeOpts := diagfmt.TreeOpts{Color: ss.useColor(out), Spans: spans, Trivia: trivia}
	for i, r := range batch.Files {
		if r.Tree == nil {
			continue
		}
		if many && !ss.quiet {
			if i > 0 {
				if _, err := fmt.Fprintln(out); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(out, "== %s ==\n", batch.FileSet.DisplayPath(r.File.ID)); err != nil {
				return err
			}
		}
		if err := diagfmt.FormatTree(out, r.Tree, r.Root, treeOpts); err != nil {
			return err
		}
	}
	return nil
}

func openCache(cmd *cobra.Command, ss *session) error {
	useCache, _ := cmd.Flags().GetBool("cache")
	drop, _ := cmd.Flags().GetBool("drop-cache")
	if !useCache && !drop {
		return nil
	}
	cache, err := driver.OpenDiskCache("balparse")
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	if drop {
		if err := cache.DropAll(); err != nil {
			return fmt.Errorf("failed to clear cache: %w", err)
		}
	}
	if useCache {
		ss.opts.Cache = cache
	}
	return nil
}
