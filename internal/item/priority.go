package item

import "fmt"

// Priority is the closed set of item priorities.
type Priority uint8

// Priorities in display order, highest first. The zero value is medium so an
// unset Priority is already normalized.
const (
	PriorityMedium Priority = iota
	PriorityHigh
	PriorityLow
)

// DefaultPriority is used for absent or unrecognized priority values.
const DefaultPriority = PriorityMedium

var priorityNames = map[Priority]string{
	PriorityHigh:   "high",
	PriorityMedium: "medium",
	PriorityLow:    "low",
}

// Priorities returns all priorities ordered from highest to lowest.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// PriorityNames returns the wire names of all priorities, highest first.
func PriorityNames() []string {
	ps := Priorities()
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.String()
	}
	return names
}

// ParsePriority maps a wire name to a Priority. Matching is exact; anything
// else (including different case) coerces to DefaultPriority.
func ParsePriority(s string) Priority {
	p, ok := LookupPriority(s)
	if !ok {
		return DefaultPriority
	}
	return p
}

// LookupPriority reports whether s names a priority exactly.
func LookupPriority(s string) (Priority, bool) {
	for p, name := range priorityNames {
		if name == s {
			return p, true
		}
	}
	return DefaultPriority, false
}

// String returns the wire name.
func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return priorityNames[DefaultPriority]
}

// Rank orders priorities for sorting: 0 is highest.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityLow:
		return 2 //nolint:mnd // lowest rank
	default:
		return 1
	}
}

// Next cycles high → medium → low → high.
func (p Priority) Next() Priority {
	ps := Priorities()
	return ps[(p.Rank()+1)%len(ps)]
}

// MarshalText implements encoding.TextMarshaler.
func (p Priority) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names coerce to
// DefaultPriority rather than failing.
func (p *Priority) UnmarshalText(text []byte) error {
	*p = ParsePriority(string(text))
	return nil
}

// GoString makes %#v output readable in test failures.
func (p Priority) GoString() string {
	return fmt.Sprintf("item.Priority(%q)", p.String())
}
