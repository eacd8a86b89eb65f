package trace

import "time"

// Kind is the type of a trace event.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1
	KindSpanEnd
	// KindPoint is an instant event such as a recovered syntax error.
	KindPoint
	KindHeartbeat
)

var kindNames = []string{
	KindSpanBegin: "begin",
	KindSpanEnd:   "end",
	KindPoint:     "point",
	KindHeartbeat: "heartbeat",
}

func (k Kind) String() string { return nameOf(kindNames, k) }

// Scope is the granularity of an event. Lower values are coarser.
type Scope uint8

const (
	// ScopeDriver covers a whole command: one tokenize or parse run.
	ScopeDriver Scope = iota + 1
	// ScopePass covers the lex and parse passes over one unit.
	ScopePass
	// ScopeFile covers the work done for a single source file.
	ScopeFile
	// ScopeNode is used for events inside the parser, such as recovery.
	ScopeNode
)

var scopeNames = []string{
	ScopeDriver: "driver",
	ScopePass:   "pass",
	ScopeFile:   "file",
	ScopeNode:   "node",
}

func (s Scope) String() string { return nameOf(scopeNames, s) }

// Event is a single trace record.
type Event struct {
	Time     time.Time
	Seq      uint64
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64 // 0 for a root span
	File     string // source path for file spans and their children
	Name     string // "parse", "lex", "file"
	Detail   string
	Extra    map[string]string
}
