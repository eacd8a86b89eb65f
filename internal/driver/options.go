package driver

import (
	"fmt"
	"runtime"

	"fortio.org/safecast"

	"balparse/internal/diag"
	"balparse/internal/observ"
	"balparse/internal/trace"
)

// SourceExt is the extension ParseDir and TokenizeDir look for.
const SourceExt = ".bal"

// Options configures a driver run. The zero value parses with no caps,
// GOMAXPROCS workers and no tracing.
type Options struct {
	// MaxDiagnostics caps the diagnostics kept per file; 0 keeps all.
	MaxDiagnostics int
	Jobs           int
	// Dedup drops repeated diagnostics with the same code and span.
	Dedup    bool
	Tracer   trace.Tracer
	Timer    *observ.Timer
	Progress ProgressSink
	// Cache, when set, serves parse results for unchanged content.
	Cache *DiskCache
}

func (o *Options) jobs(files int) int {
	j := o.Jobs
	if j <= 0 {
		j = runtime.GOMAXPROCS(0)
	}
	return max(1, min(j, files))
}

func (o *Options) tracer() trace.Tracer {
	if o.Tracer == nil {
		return trace.Nop
	}
	return o.Tracer
}

func (o *Options) maxErrors() (uint, error) {
	if o.MaxDiagnostics < 0 {
		return 0, nil
	}
	n, err := safecast.Conv[uint](o.MaxDiagnostics)
	if err != nil {
		return 0, fmt.Errorf("max diagnostics: %w", err)
	}
	return n, nil
}

// reporter returns the reporter feeding bag, wrapped for deduplication
// when requested.
func (o *Options) reporter(bag *diag.Bag) diag.Reporter {
	var r diag.Reporter = diag.BagReporter{Bag: bag}
	if o.Dedup {
		r = diag.NewDedupReporter(r)
	}
	return r
}
