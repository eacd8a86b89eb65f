package parser

import (
	"fmt"

	"fortio.org/safecast"

	"balparse/internal/cst"
	"balparse/internal/diag"
	"balparse/internal/lexer"
	"balparse/internal/source"
	"balparse/internal/token"
	"balparse/internal/trace"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	// Reporter receives every recorded diagnostic in addition to Result.Diagnostics.
	Reporter diag.Reporter
	// Listener is replayed over the finished tree: Enter and Exit at every
	// rule boundary, Token for every token and missing child.
	Listener cst.Listener
	Tracer   trace.Tracer
	// TraceParent, when set, nests the parse span under it and wins over Tracer.
	TraceParent *trace.Span
}

// Enough reports whether the error budget is exhausted.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Tree        *cst.Tree
	Root        cst.NodeID
	Diagnostics []diag.Diagnostic
}

// HasErrors reports whether any error-severity diagnostic was recorded.
func (r Result) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == diag.SevError {
			return true
		}
	}
	return false
}

// Parser holds the state of one parse. It is not safe for concurrent use;
// independent parses share nothing.
type Parser struct {
	toks []token.Token
	pos  int
	tree *cst.Tree
	opts Options

	diags []diag.Diagnostic
	// recovering suppresses reports until the next token is matched.
	recovering bool
	// eofReported is set once an unterminated construct was reported.
	eofReported bool
	lastSpan    source.Span
	// inTypeTest is set while parsing the type after 'is', where a '?'
	// followed by an expression is the conditional operator.
	inTypeTest bool
	// noArrow is set inside a streaming query header, where name => starts
	// the streaming action rather than an arrow function.
	noArrow bool
	span    *trace.Span
}

func newParser(file source.FileID, toks []token.Token, opts Options) *Parser {
	if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
		var sp source.Span
		if len(toks) > 0 {
			sp = toks[len(toks)-1].Span.AtEnd()
		} else {
			sp = source.Span{File: file}
		}
		toks = append(toks[:len(toks):len(toks)], token.Token{Kind: token.EOF, Span: sp})
	}
	if _, err := safecast.Conv[uint32](len(toks)); err != nil {
		panic(fmt.Errorf("token stream too large: %w", err))
	}
	if opts.Tracer == nil {
		opts.Tracer = trace.Nop
	}
	p := &Parser{
		toks: toks,
		tree: cst.NewTree(file, toks),
		opts: opts,
	}
	if opts.TraceParent != nil {
		p.span = opts.TraceParent.Child(trace.ScopePass, "parse")
	} else {
		p.span = trace.Begin(opts.Tracer, trace.ScopePass, "parse")
	}
	return p
}

func (p *Parser) result(root cst.NodeID) Result {
	p.tree.Root = root
	if p.opts.Listener != nil {
		cst.Walk(p.tree, root, p.opts.Listener)
	}
	p.span.WithExtra("nodes", fmt.Sprint(p.tree.Nodes.Len())).
		WithExtra("diagnostics", fmt.Sprint(len(p.diags))).
		End("")
	return Result{Tree: p.tree, Root: root, Diagnostics: p.diags}
}

// ParseTokens parses a complete compilation unit. An EOF token is appended
// when the stream does not end with one.
func ParseTokens(file source.FileID, toks []token.Token, opts Options) Result {
	p := newParser(file, toks, opts)
	return p.result(p.parseCompilationUnit())
}

// ParseFile lexes file with the reference lexer and parses the result.
// Lexical diagnostics come first in Result.Diagnostics.
func ParseFile(file *source.File, opts Options) Result {
	var lexDiags []diag.Diagnostic
	lexRep := diag.ReporterFunc(func(d diag.Diagnostic) {
		lexDiags = append(lexDiags, d)
		if opts.Reporter != nil {
			opts.Reporter.Report(d)
		}
	})
	toks := lexer.Tokenize(file, lexer.Options{Reporter: lexRep})
	res := ParseTokens(file.ID, toks, opts)
	if len(lexDiags) > 0 {
		res.Diagnostics = append(lexDiags, res.Diagnostics...)
	}
	return res
}

// ParseExpression parses a single expression followed by EOF.
func ParseExpression(file source.FileID, toks []token.Token, opts Options) Result {
	p := newParser(file, toks, opts)
	return p.result(p.fragment(p.parseExpression))
}

// ParseType parses a single type descriptor followed by EOF.
func ParseType(file source.FileID, toks []token.Token, opts Options) Result {
	p := newParser(file, toks, opts)
	return p.result(p.fragment(p.parseTypeDescriptor))
}

// ParseStatement parses a single statement followed by EOF.
func ParseStatement(file source.FileID, toks []token.Token, opts Options) Result {
	p := newParser(file, toks, opts)
	return p.result(p.fragment(p.parseStatement))
}

// fragment runs rule and folds trailing tokens and EOF into the returned
// node, so that the root still covers the whole stream.
func (p *Parser) fragment(rule func() cst.NodeID) cst.NodeID {
	id := rule()
	if !p.at(token.EOF) {
		p.err(diag.SynUnexpectedToken, "unexpected tokens after fragment", token.EOF)
		p.tree.Extend(id, p.skip(nil)...)
	}
	p.tree.Extend(id, p.advance())
	return id
}

// parseCompilationUnit is the top-level loop: imports, namespace
// declarations and definitions in file order, then EOF.
func (p *Parser) parseCompilationUnit() cst.NodeID {
	var kids []cst.Child
	for !p.at(token.EOF) {
		if p.opts.Enough() {
			kids = p.skip(kids)
			break
		}
		before := p.pos
		if id, ok := p.parseTopLevel(); ok {
			kids = append(kids, node(id))
		}
		if p.pos == before {
			p.err(diag.SynExpectDefinition, "expected import, namespace declaration or definition")
			kids = p.resyncTop(kids)
		}
	}
	kids = append(kids, p.advance())
	return p.finish(cst.CompilationUnit, kids...)
}
