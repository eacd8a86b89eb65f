package diagfmt

import (
	"testing"

	"balparse/internal/parser"
	"balparse/internal/source"
)

func parseVirtual(t *testing.T, name, src string) (*source.FileSet, parser.Result) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, []byte(src))
	return fs, parser.ParseFile(fs.Get(id), parser.Options{})
}
