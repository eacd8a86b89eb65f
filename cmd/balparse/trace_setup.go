package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"balparse/internal/trace"
)

// setupTracing builds the tracer described by s, attaches it to the command
// context and returns it with a cleanup that flushes and closes it.
func setupTracing(cmd *cobra.Command, s *settings) (trace.Tracer, func(), error) {
	level, err := trace.ParseLevel(s.Trace.Level)
	if err != nil {
		return nil, nil, err
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(commandContext(cmd), trace.Nop))
		return trace.Nop, func() {}, nil
	}
	mode, err := trace.ParseMode(s.Trace.Mode)
	if err != nil {
		return nil, nil, err
	}
	heartbeat, err := cmd.Flags().GetDuration("trace-heartbeat")
	if err != nil {
		return nil, nil, err
	}

	cfg := trace.Config{Level: level, Mode: mode, Heartbeat: heartbeat}
	switch s.Trace.Output {
	case "", "-", "stderr":
		cfg.Output = cmd.ErrOrStderr()
	case "stdout":
		cfg.Output = cmd.OutOrStdout()
	default:
		cfg.OutputPath = s.Trace.Output
	}
	tracer, err := trace.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	cmd.SetContext(trace.WithTracer(commandContext(cmd), tracer))

	hb := trace.StartHeartbeat(tracer, heartbeat)
	cleanup := func() {
		hb.Stop()
		errOut := cmd.ErrOrStderr()
		if err := tracer.Flush(); err != nil {
			warn(errOut, "trace: flush error: %v", err)
		}
		if err := tracer.Close(); err != nil {
			warn(errOut, "trace: close error: %v", err)
		}
	}
	return tracer, cleanup, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func warn(w io.Writer, format string, args ...any) {
	if w == nil {
		w = os.Stderr
	}
	_, _ = fmt.Fprintf(w, format+"\n", args...)
}
