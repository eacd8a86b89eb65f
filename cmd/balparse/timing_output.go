package main

import (
	"io"

	"balparse/internal/observ"
)

func printTimings(out io.Writer, timer *observ.Timer) {
	if timer == nil {
		return
	}
	if _, err := io.WriteString(out, timer.Summary()); err != nil {
		warn(out, "timings: %v", err)
	}
}
