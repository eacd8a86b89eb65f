package main

import (
	"github.com/spf13/cobra"

	"balparse/internal/prof"
)

// setupProfiling starts the profiles requested on the command line. The
// returned cleanup is safe to call more than once.
func setupProfiling(cmd *cobra.Command, s *settings) (func(), error) {
	session, err := prof.Start(prof.Options{CPU: s.cpuProfile, Mem: s.memProfile, Trace: s.rtTrace})
	if err != nil {
		return nil, err
	}
	cleaned := false
	return func() {
		if cleaned {
			return
		}
		cleaned = true
		if err := session.Stop(); err != nil {
			warn(cmd.ErrOrStderr(), "profile: %v", err)
		}
	}, nil
}
