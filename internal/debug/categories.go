package debug

import (
	"sort"
	"strings"
)

// CategoryAll enables every category when present in the set.
const CategoryAll = "all"

// Categories is the set of enabled debug categories. The nil map enables
// nothing.
type Categories map[string]struct{}

// ParseCategories converts a comma-separated list ("tracestack,typesetter")
// into a set. Whitespace around names is ignored, empty names are dropped.
// The empty string yields an empty set.
func ParseCategories(s string) Categories {
	set := Categories{}
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		set[strings.ToLower(name)] = struct{}{}
	}
	return set
}

// Enabled reports whether the given category is active.
func (c Categories) Enabled(category string) bool {
	if len(c) == 0 {
		return false
	}
	if _, ok := c[CategoryAll]; ok {
		return true
	}
	_, ok := c[strings.ToLower(category)]
	return ok
}

// List returns the enabled category names in sorted order.
func (c Categories) List() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String returns the comma-separated form, suitable for round-tripping
// through ParseCategories.
func (c Categories) String() string {
	return strings.Join(c.List(), ",")
}
