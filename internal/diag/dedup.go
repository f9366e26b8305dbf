package diag

// DedupReporter wraps another Reporter and suppresses duplicate warnings
// with the same message and recoverable flag. Engines replay the same
// malformed construct many times; the first report is the useful one.
type DedupReporter struct {
	next       Reporter
	seen       map[Warning]struct{}
	suppressed int
}

// NewDedupReporter returns a Reporter that filters out duplicates while
// forwarding unique warnings to the provided reporter.
func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{
		next: next,
		seen: make(map[Warning]struct{}),
	}
}

func (r *DedupReporter) Warn(message string, recoverable bool) {
	if r == nil {
		return
	}
	key := Warning{Message: message, Recoverable: recoverable}
	if _, ok := r.seen[key]; ok {
		r.suppressed++
		return
	}
	r.seen[key] = struct{}{}
	if r.next != nil {
		r.next.Warn(message, recoverable)
	}
}

// Suppressed returns how many duplicate warnings were swallowed.
func (r *DedupReporter) Suppressed() int {
	if r == nil {
		return 0
	}
	return r.suppressed
}
