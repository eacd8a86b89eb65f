package driver

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"balparse/internal/cst"
	"balparse/internal/diag"
	"balparse/internal/lexer"
	"balparse/internal/parser"
	"balparse/internal/source"
	"balparse/internal/token"
	"balparse/internal/trace"
)

// FileResult is the outcome for one source file. File is nil when the file
// could not be loaded; the bag then holds the I/O diagnostic. Tree is nil
// for tokenize runs.
type FileResult struct {
	Path   string
	File   *source.File
	Tokens []token.Token
	Tree   *cst.Tree
	Root   cst.NodeID
	Bag    *diag.Bag
	// Cached is set when the tree came from the disk cache.
	Cached bool
}

func (r *FileResult) HasErrors() bool {
	return r.Bag != nil && r.Bag.HasErrors()
}

// Batch holds the results of one run in input order.
type Batch struct {
	FileSet *source.FileSet
	Files   []FileResult
}

func (b *Batch) HasErrors() bool {
	for i := range b.Files {
		if b.Files[i].HasErrors() {
			return true
		}
	}
	return false
}

// TokenizeFile lexes a single file.
func TokenizeFile(ctx context.Context, path string, opts Options) (*Batch, error) {
	return runFiles(ctx, "", []string{path}, false, opts)
}

type work struct {
	parse  bool
	opts   *Options
	maxErr uint
	run    *trace.Span
}

// process lexes and, for parse runs, parses one loaded file. Syntax
// problems end up in the bag; nothing here returns an error.
func (w *work) process(path string, file *source.File) FileResult {
	opts := w.opts
	bag := diag.NewBag(opts.MaxDiagnostics)
	rep := opts.reporter(bag)

	fsp := w.run.File(path)
	started := time.Now()

	if w.parse && opts.Cache != nil {
		if res, ok := w.fromCache(fsp, path, file, bag, rep); ok {
			status := w.finish(res, StageParse, started)
			fsp.WithExtra("cache", "hit").End(string(status))
			return res
		}
	}

	opts.emit(Event{File: path, Stage: StageLex, Status: StatusWorking})
	lexStart := time.Now()
	lsp := fsp.Child(trace.ScopePass, "lex")
	toks := lexer.Tokenize(file, lexer.Options{Reporter: rep})
	lsp.WithExtra("tokens", strconv.Itoa(len(toks))).End("")
	opts.record("lex "+path, time.Since(lexStart), fmt.Sprintf("%d tokens", len(toks)))

	res := FileResult{Path: path, File: file, Tokens: toks, Bag: bag}
	stage := StageLex
	if w.parse {
		stage = StageParse
		opts.emit(Event{File: path, Stage: StageParse, Status: StatusWorking})
		parseStart := time.Now()
		pr := parser.ParseTokens(file.ID, toks, parser.Options{
			MaxErrors:   w.maxErr,
			Reporter:    rep,
			TraceParent: fsp,
		})
		res.Tree, res.Root = pr.Tree, pr.Root
		opts.record("parse "+path, time.Since(parseStart), fmt.Sprintf("%d nodes", pr.Tree.Nodes.Len()))
		if opts.Cache != nil && !bag.Full() {
			if err := opts.Cache.put(file, pr.Tree, pr.Root, bag.Items()); err != nil {
				fsp.Point(trace.ScopeFile, "cache", "store failed: "+err.Error())
			}
		}
	}

	status := w.finish(res, stage, started)
	fsp.WithExtra("diagnostics", strconv.Itoa(bag.Len())).End(string(status))
	return res
}

// finish emits the final progress event for res and returns its status.
func (w *work) finish(res FileResult, stage Stage, started time.Time) Status {
	errs := errorCount(res.Bag)
	status := StatusDone
	if errs > 0 {
		status = StatusError
	}
	w.opts.emit(Event{
		File:    res.Path,
		Stage:   stage,
		Status:  status,
		Errors:  errs,
		Cached:  res.Cached,
		Elapsed: time.Since(started),
	})
	return status
}

// fromCache rebuilds the result of a previous parse of identical content.
// Cached diagnostics go through rep so that caps and dedup still apply.
func (w *work) fromCache(fsp *trace.Span, path string, file *source.File, bag *diag.Bag, rep diag.Reporter) (FileResult, bool) {
	tr, root, diags, ok, err := w.opts.Cache.get(file)
	if err != nil {
		fsp.Point(trace.ScopeFile, "cache", "load failed: "+err.Error())
	}
	if !ok {
		return FileResult{}, false
	}
	res := FileResult{Path: path, File: file, Tokens: tr.Tokens, Tree: tr, Root: root, Bag: bag, Cached: true}
	for _, d := range diags {
		rep.Report(d)
	}
	w.opts.record("parse "+path, 0, "cached")
	return res, true
}

func errorCount(bag *diag.Bag) int {
	n := 0
	for _, d := range bag.Items() {
		if d.Severity == diag.SevError {
			n++
		}
	}
	return n
}

// loadFailure is the result for a file that could not be read.
func (w *work) loadFailure(path string, err error) FileResult {
	bag := diag.NewBag(w.opts.MaxDiagnostics)
	diag.ReportError(w.opts.reporter(bag), diag.IOLoadFileError, source.Span{}, "failed to load file: "+err.Error()).Emit()
	w.opts.emit(Event{File: path, Stage: StageLoad, Status: StatusError, Err: err, Errors: 1})
	return FileResult{Path: path, Bag: bag}
}
