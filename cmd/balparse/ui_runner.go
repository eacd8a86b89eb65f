package main

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"balparse/internal/driver"
	"balparse/internal/ui"
)

type batchOutcome struct {
	batch *driver.Batch
	err   error
}

// parseDirWithUI runs ParseDir while a progress view consumes its events.
// The view exits once the driver closes the event channel.
func parseDirWithUI(ctx context.Context, out io.Writer, dir string, files []string, opts driver.Options) (*driver.Batch, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan batchOutcome, 1)

	go func() {
		opts.Progress = driver.ChanSink(events)
		batch, err := driver.ParseDir(ctx, dir, opts)
		outcomeCh <- batchOutcome{batch: batch, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("parsing "+dir, files, events)
	program := tea.NewProgram(model, tea.WithOutput(out))
	_, uiErr := program.Run()
	// A view that quit early must not leave the driver blocked on a full channel.
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.batch, uiErr
	}
	return outcome.batch, outcome.err
}
