package driver

import (
	"context"

	"balparse/internal/source"
)

// ParseFile lexes and parses a single file.
func ParseFile(ctx context.Context, path string, opts Options) (*Batch, error) {
	return runFiles(ctx, "", []string{path}, true, opts)
}

// ParseSource parses content held in memory, such as standard input. name
// is used for display only.
func ParseSource(ctx context.Context, name string, content []byte, opts Options) (*Batch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	maxErr, err := opts.maxErrors()
	if err != nil {
		return nil, err
	}
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, content)
	w := &work{parse: true, opts: &opts, maxErr: maxErr}
	w.run = w.begin("parse", 1)
	res := w.process(name, fs.Get(id))
	w.run.End("")
	return &Batch{FileSet: fs, Files: []FileResult{res}}, nil
}
