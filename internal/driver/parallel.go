package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"balparse/internal/source"
	"balparse/internal/trace"
)

// ListSources returns every .bal file under dir in lexical order. Hidden
// directories and Ballerina's target directory are skipped.
func ListSources(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != dir && (strings.HasPrefix(name, ".") || name == "target") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	slices.Sort(files)
	return files, nil
}

// TokenizeDir lexes every source file under dir in parallel.
func TokenizeDir(ctx context.Context, dir string, opts Options) (*Batch, error) {
	files, err := ListSources(dir)
	if err != nil {
		return nil, err
	}
	return runFiles(ctx, dir, files, false, opts)
}

// ParseDir parses every source file under dir in parallel. Results keep
// the order of ListSources regardless of completion order.
func ParseDir(ctx context.Context, dir string, opts Options) (*Batch, error) {
	files, err := ListSources(dir)
	if err != nil {
		return nil, err
	}
	return runFiles(ctx, dir, files, true, opts)
}

func (w *work) begin(name string, files int) *trace.Span {
	return trace.Begin(w.opts.tracer(), trace.ScopeDriver, name).
		WithExtra("files", strconv.Itoa(files))
}

// runFiles loads paths up front, since FileSet is not safe for concurrent
// writes, then hands each file to a worker. Each worker writes only its
// own slot of the result slice.
func runFiles(ctx context.Context, base string, paths []string, parse bool, opts Options) (*Batch, error) {
	maxErr, err := opts.maxErrors()
	if err != nil {
		return nil, err
	}
	fileSet := source.NewFileSetWithBase(base)
	batch := &Batch{FileSet: fileSet, Files: make([]FileResult, len(paths))}
	if len(paths) == 0 {
		return batch, nil
	}

	name := "tokenize"
	if parse {
		name = "parse"
	}
	w := &work{parse: parse, opts: &opts, maxErr: maxErr}
	w.run = w.begin(name, len(paths))

	ids := make([]source.FileID, len(paths))
	loadErrs := make([]error, len(paths))
	for i, p := range paths {
		ids[i], loadErrs[i] = fileSet.Load(p)
		opts.emit(Event{File: p, Stage: StageLoad, Status: StatusQueued})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.jobs(len(paths)))
	for i, p := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if loadErrs[i] != nil {
				batch.Files[i] = w.loadFailure(p, loadErrs[i])
				return nil
			}
			batch.Files[i] = w.process(p, fileSet.Get(ids[i]))
			return nil
		})
	}
	err = g.Wait()
	status := StatusDone
	if err != nil {
		status = StatusError
	} else if batch.HasErrors() {
		status = StatusError
	}
	opts.emit(Event{Stage: StageParse, Status: status, Err: err})
	w.run.End(string(status))
	return batch, err
}
