package main

import (
	"io"

	"github.com/spf13/cobra"

	"balparse/internal/diagfmt"
	"balparse/internal/driver"
	"balparse/internal/observ"
)

// session is the per-command state shared by tokenize and parse.
type session struct {
	*settings
	opts     driver.Options
	cleanups []func()
}

func startSession(cmd *cobra.Command, target string) (*session, error) {
	s, err := loadSettings(cmd, target)
	if err != nil {
		return nil, err
	}
	ss := &session{settings: s}
	stopProf, err := setupProfiling(cmd, s)
	if err != nil {
		return nil, err
	}
	ss.cleanups = append(ss.cleanups, stopProf)
	tracer, stopTrace, err := setupTracing(cmd, s)
	if err != nil {
		ss.close(cmd)
		return nil, err
	}
	ss.cleanups = append(ss.cleanups, stopTrace)

	ss.opts = driver.Options{
		MaxDiagnostics: s.MaxDiagnostics,
		Jobs:           s.Jobs,
		Dedup:          true,
		Tracer:         tracer,
	}
	if s.timings {
		ss.opts.Timer = observ.NewTimer()
	}
	return ss, nil
}

// close prints timings and stops tracing and profiling, newest first.
func (ss *session) close(cmd *cobra.Command) {
	if ss.timings {
		printTimings(cmd.ErrOrStderr(), ss.opts.Timer)
	}
	for i := len(ss.cleanups) - 1; i >= 0; i-- {
		ss.cleanups[i]()
	}
	ss.cleanups = nil
}

// report prints the diagnostics of every file to errOut and returns
// errSyntax when any of them is an error.
func (ss *session) report(errOut io.Writer, batch *driver.Batch) error {
	opts := diagfmt.PrettyOpts{
		Color:        ss.useColor(errOut),
		ShowNotes:    true,
		ShowExpected: true,
	}
	for i := range batch.Files {
		bag := batch.Files[i].Bag
		if bag == nil || bag.Len() == 0 {
			continue
		}
		bag.Sort()
		if err := diagfmt.Pretty(errOut, bag, batch.FileSet, opts); err != nil {
			return err
		}
		if n := bag.Dropped(); n > 0 && !ss.quiet {
			warn(errOut, "%s: %d more diagnostics not shown", batch.Files[i].Path, n)
		}
	}
	if batch.HasErrors() {
		return errSyntax
	}
	return nil
}
