package trace

import (
	"sync/atomic"
	"time"
)

var (
	seq     atomic.Uint64
	spanIDs atomic.Uint64
	// open counts emitted spans that have not ended yet.
	open atomic.Int64
)

// NextSeq returns the next event sequence number.
func NextSeq() uint64 { return seq.Add(1) }

// Span is an open begin/end pair.
//
// A span whose scope is filtered out emits nothing, but it still hands
// out children: a lex pass under a filtered file span attaches to the
// nearest emitted ancestor.
type Span struct {
	tracer  Tracer
	id      uint64 // 0 when the span emits nothing
	parent  uint64
	anchor  uint64 // parent ID given to children
	scope   Scope
	name    string
	file    string
	started time.Time
	extra   map[string]string
}

// Begin starts a root span.
func Begin(t Tracer, scope Scope, name string) *Span {
	return begin(t, scope, name, "", 0)
}

// Child starts a span nested under s. The child inherits the source file.
func (s *Span) Child(scope Scope, name string) *Span {
	if s == nil {
		return begin(Nop, scope, name, "", 0)
	}
	return begin(s.tracer, scope, name, s.file, s.anchor)
}

// File starts a file-scope span for path under s.
func (s *Span) File(path string) *Span {
	if s == nil {
		return begin(Nop, ScopeFile, "file", path, 0)
	}
	return begin(s.tracer, ScopeFile, "file", path, s.anchor)
}

func begin(t Tracer, scope Scope, name, file string, parent uint64) *Span {
	if t == nil {
		t = Nop
	}
	s := &Span{tracer: t, parent: parent, anchor: parent, scope: scope, name: name, file: file}
	if !t.Enabled() || !t.Level().ShouldEmit(scope) {
		return s
	}
	s.id = spanIDs.Add(1)
	s.anchor = s.id
	s.started = time.Now()
	open.Add(1)
	t.Emit(&Event{
		Time:     s.started,
		Seq:      NextSeq(),
		Kind:     KindSpanBegin,
		Scope:    scope,
		SpanID:   s.id,
		ParentID: parent,
		File:     file,
		Name:     name,
	})
	return s
}

// End emits the end event and returns the time since the span began.
// Ending an inert span is a no-op.
func (s *Span) End(detail string) time.Duration {
	if s == nil || s.id == 0 {
		return 0
	}
	open.Add(-1)
	d := time.Since(s.started)
	s.tracer.Emit(&Event{
		Time:     time.Now(),
		Seq:      NextSeq(),
		Kind:     KindSpanEnd,
		Scope:    s.scope,
		SpanID:   s.id,
		ParentID: s.parent,
		File:     s.file,
		Name:     s.name,
		Detail:   detail,
		Extra:    s.extra,
	})
	s.id = 0
	return d
}

// WithExtra attaches key=value to the end event.
func (s *Span) WithExtra(key, value string) *Span {
	if s == nil || s.id == 0 {
		return s
	}
	if s.extra == nil {
		s.extra = make(map[string]string, 2)
	}
	s.extra[key] = value
	return s
}

// Point emits an instant event attributed to the span's file.
func (s *Span) Point(scope Scope, name, detail string) {
	if s == nil {
		return
	}
	point(s.tracer, scope, name, detail, s.file, s.anchor)
}

// Point emits an instant event outside any span.
func Point(t Tracer, scope Scope, name, detail string) {
	point(t, scope, name, detail, "", 0)
}

func point(t Tracer, scope Scope, name, detail, file string, parent uint64) {
	if t == nil || !t.Enabled() || !t.Level().ShouldEmit(scope) {
		return
	}
	t.Emit(&Event{
		Time:     time.Now(),
		Seq:      NextSeq(),
		Kind:     KindPoint,
		Scope:    scope,
		ParentID: parent,
		File:     file,
		Name:     name,
		Detail:   detail,
	})
}

// Open reports how many emitted spans are still running.
func Open() int64 { return open.Load() }
