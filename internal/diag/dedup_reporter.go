package diag

import "balparse/internal/source"

type dedupKey struct {
	code  Code
	kind  Kind
	file  source.FileID
	start uint32
	end   uint32
}

// DedupReporter suppresses diagnostics repeating the code, kind and primary
// span of one already forwarded.
type DedupReporter struct {
	next Reporter
	seen map[dedupKey]struct{}
}

func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{
		next: next,
		seen: make(map[dedupKey]struct{}),
	}
}

func (r *DedupReporter) Report(d Diagnostic) {
	if r == nil {
		return
	}
	key := dedupKey{
		code:  d.Code,
		kind:  d.Kind,
		file:  d.Primary.File,
		start: d.Primary.Start,
		end:   d.Primary.End,
	}
	if _, ok := r.seen[key]; ok {
		return
	}
	r.seen[key] = struct{}{}
	if r.next != nil {
		r.next.Report(d)
	}
}
