package view

import "github.com/twiced-technology-gmbh/flowdo/internal/item"

// PriorityCount holds per-priority totals.
type PriorityCount struct {
	Priority item.Priority `json:"priority"`
	Active   int           `json:"active"`
	Done     int           `json:"done"`
}

// Stats summarizes the whole collection.
type Stats struct {
	Total      int             `json:"total"`
	Active     int             `json:"active"`
	Done       int             `json:"done"`
	Priorities []PriorityCount `json:"priorities"`
}

// Summarize counts items by state and priority. Priorities are listed
// high to low, including those with no items.
func Summarize(items []item.Item) Stats {
	prios := item.Priorities()
	s := Stats{
		Total:      len(items),
		Priorities: make([]PriorityCount, len(prios)),
	}
	for i, p := range prios {
		s.Priorities[i].Priority = p
	}
	for _, it := range items {
		pc := &s.Priorities[it.Priority.Rank()]
		if it.Done {
			s.Done++
			pc.Done++
		} else {
			s.Active++
			pc.Active++
		}
	}
	return s
}
