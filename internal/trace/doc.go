// Package trace records where time goes in a balparse run.
//
// Spans nest: the driver opens a "driver" span, each file gets a "file"
// span, and inside it the "lex" and "parse" passes get their own. At the
// debug level the parser adds a point event for every syntax error it
// recovers from, naming the diagnostic code and the token it stopped at.
//
//	balparse parse --trace=- --trace-level=detail ./src
//
// Events go to a StreamTracer (written immediately as text or NDJSON), a
// RingTracer (the last N events kept in memory and dumped on failure), or
// both through a MultiTracer. Nop is used when tracing is off.
//
// The tracer travels in a context:
//
//	ctx = trace.WithTracer(ctx, tr)
//	run := trace.Begin(trace.FromContext(ctx), trace.ScopeDriver, "parse")
//	fsp := run.File(path)
//	fsp.Child(trace.ScopePass, "lex").End("")
//	fsp.End("")
//	run.End("")
package trace
