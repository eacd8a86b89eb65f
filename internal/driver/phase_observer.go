package driver

import "time"

// Stage is the step a file is in.
type Stage string

const (
	StageLoad  Stage = "load"
	StageLex   Stage = "lex"
	StageParse Stage = "parse"
)

// Status reports where a file is within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Event reports progress for one file, or for the whole run when File is
// empty. Errors counts error diagnostics once a file is done; Cached marks
// a tree served from the disk cache.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Errors  int
	Cached  bool
	Elapsed time.Duration
}

// ProgressSink receives events from driver workers. OnEvent may be called
// from several goroutines at once.
type ProgressSink interface {
	OnEvent(Event)
}

// SinkFunc adapts a function to ProgressSink.
type SinkFunc func(Event)

func (f SinkFunc) OnEvent(ev Event) { f(ev) }

// ChanSink forwards events to a channel, for the terminal progress view.
type ChanSink chan<- Event

func (c ChanSink) OnEvent(ev Event) { c <- ev }

func (o *Options) emit(ev Event) {
	if o.Progress != nil {
		o.Progress.OnEvent(ev)
	}
}
