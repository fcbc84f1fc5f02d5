package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/twiced-technology-gmbh/flowdo/internal/activity"
	"github.com/twiced-technology-gmbh/flowdo/internal/item"
	"github.com/twiced-technology-gmbh/flowdo/internal/view"
)

// ItemCompact renders items in one-line-per-record compact format.
func ItemCompact(w io.Writer, items []item.Item) {
	if len(items) == 0 {
		fmt.Fprintln(os.Stderr, "No items found.")
		return
	}

	for _, it := range items {
		fmt.Fprintln(w, formatItemLine(it))
	}
}

// ItemDetailCompact renders a single item with its timestamp.
func ItemDetailCompact(w io.Writer, it item.Item) {
	fmt.Fprintln(w, formatItemLine(it))
	fmt.Fprintln(w, "  id:"+it.ID+" created:"+it.CreatedAt.String())
}

// StatsCompact renders statistics on two lines.
func StatsCompact(w io.Writer, name string, s view.Stats) {
	fmt.Fprintf(w, "%s (%d items, %d active, %d done)\n", name, s.Total, s.Active, s.Done)
	parts := make([]string, 0, len(s.Priorities))
	for _, pc := range s.Priorities {
		parts = append(parts, pc.Priority.String()+"="+strconv.Itoa(pc.Active)+"/"+strconv.Itoa(pc.Active+pc.Done))
	}
	fmt.Fprintln(w, "Priority: "+strings.Join(parts, " "))
}

// ActivityCompact renders journal entries one per line.
func ActivityCompact(w io.Writer, entries []activity.Entry) {
	for _, e := range entries {
		line := e.Timestamp.Local().Format("2006-01-02T15:04:05") + " " + e.Action
		if e.ItemID != "" {
			line += " " + item.Item{ID: e.ItemID}.ShortID()
		}
		if e.Detail != "" {
			line += " " + e.Detail
		}
		fmt.Fprintln(w, line)
	}
}

// formatItemLine builds the one-line representation of an item.
func formatItemLine(it item.Item) string {
	check := "[ ]"
	if it.Done {
		check = "[x]"
	}
	return check + " " + it.ShortID() + " [" + it.Priority.String() + "] " + it.Text
}
