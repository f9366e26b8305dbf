package diag

// Bag collects warnings up to a limit, counting the overflow instead of
// growing without bound.
type Bag struct {
	items   []Warning
	max     int
	dropped int
}

// NewBag creates a bag that keeps at most max warnings. A non-positive max
// falls back to a generous default.
func NewBag(max int) *Bag {
	if max <= 0 {
		max = 256
	}
	return &Bag{
		items: make([]Warning, 0, max),
		max:   max,
	}
}

// Warn implements Reporter.
func (b *Bag) Warn(message string, recoverable bool) {
	if b == nil {
		return
	}
	if len(b.items) >= b.max {
		b.dropped++
		return
	}
	b.items = append(b.items, Warning{Message: message, Recoverable: recoverable})
}

// Len returns the number of collected warnings.
func (b *Bag) Len() int {
	if b == nil {
		return 0
	}
	return len(b.items)
}

// Dropped returns how many warnings were discarded after the bag filled up.
func (b *Bag) Dropped() int {
	if b == nil {
		return 0
	}
	return b.dropped
}

// Items returns a read-only view of the collected warnings.
// Callers must not modify the returned slice.
func (b *Bag) Items() []Warning {
	if b == nil {
		return nil
	}
	return b.items
}

// HasUnrecoverable reports whether any collected warning was flagged
// non-recoverable.
func (b *Bag) HasUnrecoverable() bool {
	if b == nil {
		return false
	}
	for i := range b.items {
		if !b.items[i].Recoverable {
			return true
		}
	}
	return false
}
