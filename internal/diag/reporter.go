package diag

// Warning is one emitted diagnostic record.
type Warning struct {
	Message     string
	Recoverable bool
}

// Reporter is the minimal contract for emitting warnings from producers.
// Implementations: Bag (collects), ConsoleReporter (prints), DedupReporter
// (filters), Nop.
type Reporter interface {
	Warn(message string, recoverable bool)
}

// nopReporter discards every warning.
type nopReporter struct{}

func (nopReporter) Warn(string, bool) {}

// Nop is the package-level singleton reporter that discards everything.
var Nop Reporter = nopReporter{}
