// Package view derives the visible slice of the collection and its summary
// counts from the current filter and search query.
package view

import (
	"strings"

	"github.com/twiced-technology-gmbh/flowdo/internal/item"
)

// Filter restricts visible items by completion state.
type Filter uint8

// Filter modes. The zero value shows everything.
const (
	FilterAll Filter = iota
	FilterActive
	FilterDone
)

var filterNames = [...]string{
	FilterAll:    "all",
	FilterActive: "active",
	FilterDone:   "done",
}

// Filters returns every filter mode in display order.
func Filters() []Filter {
	return []Filter{FilterAll, FilterActive, FilterDone}
}

// FilterNames returns the wire names of all filter modes.
func FilterNames() []string {
	return append([]string(nil), filterNames[:]...)
}

// ParseFilter maps a mode name to a Filter; unknown names behave as all.
func ParseFilter(s string) Filter {
	for i, name := range filterNames {
		if name == s {
			return Filter(i)
		}
	}
	return FilterAll
}

// String returns the mode name.
func (f Filter) String() string {
	if int(f) < len(filterNames) {
		return filterNames[f]
	}
	return filterNames[FilterAll]
}

// Next cycles all → active → done → all.
func (f Filter) Next() Filter {
	return Filter((int(f) + 1) % len(filterNames))
}

// MarshalText implements encoding.TextMarshaler.
func (f Filter) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Filter) UnmarshalText(text []byte) error {
	*f = ParseFilter(string(text))
	return nil
}

// Projection is what a front end renders.
type Projection struct {
	Filter  Filter      `json:"filter"`
	Query   string      `json:"query,omitempty"`
	Visible []item.Item `json:"items"`
	// Active and Total always describe the whole collection.
	Active int `json:"active"`
	Total  int `json:"total"`
}

// Project computes the visible items, in collection order, plus global
// counts. An item is visible when it passes both the filter and the search.
func Project(items []item.Item, f Filter, query string) Projection {
	q := normalizeQuery(query)
	p := Projection{
		Filter:  f,
		Query:   strings.TrimSpace(query),
		Visible: make([]item.Item, 0, len(items)),
		Total:   len(items),
	}
	for _, it := range items {
		if !it.Done {
			p.Active++
		}
		if matchesFilter(it, f) && matchesQuery(it, q) {
			p.Visible = append(p.Visible, it)
		}
	}
	return p
}

// Matches reports whether a single item passes filter and query.
func Matches(it item.Item, f Filter, query string) bool {
	return matchesFilter(it, f) && matchesQuery(it, normalizeQuery(query))
}

// Done returns the number of completed items in the whole collection.
func (p Projection) Done() int {
	return p.Total - p.Active
}

func matchesFilter(it item.Item, f Filter) bool {
	switch f {
	case FilterActive:
		return !it.Done
	case FilterDone:
		return it.Done
	default:
		return true
	}
}

// matchesQuery expects an already normalized query.
func matchesQuery(it item.Item, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(it.Text), q)
}

func normalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}
