package diag

// MultiReporter fans every warning out to all given reporters. Nil entries
// are skipped, so callers can pass optional sinks without checking.
func MultiReporter(reporters ...Reporter) Reporter {
	kept := make(multiReporter, 0, len(reporters))
	for _, r := range reporters {
		if r != nil {
			kept = append(kept, r)
		}
	}
	return kept
}

type multiReporter []Reporter

func (m multiReporter) Warn(message string, recoverable bool) {
	for _, r := range m {
		r.Warn(message, recoverable)
	}
}
