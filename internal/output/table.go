package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/twiced-technology-gmbh/flowdo/internal/activity"
	"github.com/twiced-technology-gmbh/flowdo/internal/item"
	"github.com/twiced-technology-gmbh/flowdo/internal/view"
)

const maxText = 60

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("244"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true)
	checkStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))

	// Priority colors matching the TUI palette.
	priorityStyles = map[string]lipgloss.Style{
		"high":   lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		"medium": lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		"low":    lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	}
)

// DisableColor strips all styling from table output and forces the ASCII
// profile for everything rendered through lipgloss.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
	headerStyle = lipgloss.NewStyle()
	dimStyle = lipgloss.NewStyle()
	doneStyle = lipgloss.NewStyle()
	checkStyle = lipgloss.NewStyle()
	priorityStyles = map[string]lipgloss.Style{}
	markdownStyle = noTTYStyle
}

// ItemTable renders items as a formatted table.
func ItemTable(w io.Writer, items []item.Item) {
	if len(items) == 0 {
		fmt.Fprintln(os.Stderr, "No items found.")
		return
	}

	const pad = 2
	idW, prioW, textW := 10, 10, 6
	for _, it := range items {
		prioW = max(prioW, len(it.Priority.String())+pad)
		textW = max(textW, min(lipgloss.Width(it.Text)+pad, maxText+pad))
	}

	header := fmt.Sprintf("%-3s %-*s %-*s %-*s %s",
		"", idW, "ID", prioW, "PRIORITY", textW, "TEXT", "CREATED")
	fmt.Fprintln(w, headerStyle.Render(strings.TrimRight(header, " ")))

	for _, it := range items {
		text := truncate(it.Text, maxText)
		if it.Done {
			text = doneStyle.Render(text)
		}
		row := fmt.Sprintf("%s %s %s %s %s",
			padRight(checkbox(it.Done), 3),
			padRight(it.ShortID(), idW),
			padRight(styledValue(it.Priority.String(), priorityStyles), prioW),
			padRight(text, textW),
			dimStyle.Render(it.CreatedAt.String()))
		fmt.Fprintln(w, strings.TrimRight(row, " "))
	}
}

// Summary renders the status line shown under every list.
func Summary(w io.Writer, p view.Projection) {
	line := SummaryLine(p)
	if p.Filter != view.FilterAll || p.Query != "" {
		line += dimStyle.Render(fmt.Sprintf("  (showing %d, filter %s", len(p.Visible), p.Filter))
		if p.Query != "" {
			line += dimStyle.Render(fmt.Sprintf(", search %q", p.Query))
		}
		line += dimStyle.Render(")")
	}
	fmt.Fprintln(w, line)
}

// SummaryLine formats the active and total counts.
func SummaryLine(p view.Projection) string {
	return strconv.Itoa(p.Active) + " active · " + strconv.Itoa(p.Total) + " total"
}

// StatsTable renders collection statistics.
func StatsTable(w io.Writer, name string, s view.Stats) {
	fmt.Fprintln(w, lipgloss.NewStyle().Bold(true).Render(name))
	fmt.Fprintf(w, "Total: %d items (%d active, %d done)\n\n", s.Total, s.Active, s.Done)

	header := fmt.Sprintf("%-12s %8s %8s", "PRIORITY", "ACTIVE", "DONE")
	fmt.Fprintln(w, headerStyle.Render(header))

	const prioColW = 12
	for _, pc := range s.Priorities {
		fmt.Fprintf(w, "%s %8d %8d\n",
			padRight(styledValue(pc.Priority.String(), priorityStyles), prioColW),
			pc.Active, pc.Done)
	}
}

// ActivityTable renders journal entries, oldest first.
func ActivityTable(w io.Writer, entries []activity.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "No activity recorded.")
		return
	}

	header := fmt.Sprintf("%-16s %-10s %-10s %s", "TIME", "ACTION", "ITEM", "DETAIL")
	fmt.Fprintln(w, headerStyle.Render(header))
	for _, e := range entries {
		row := fmt.Sprintf("%s %-10s %s %s",
			dimStyle.Render(e.Timestamp.Local().Format("2006-01-02 15:04")),
			e.Action,
			padRight(shortID(e.ItemID), 10), //nolint:mnd // column width
			truncate(e.Detail, maxText))
		fmt.Fprintln(w, strings.TrimRight(row, " "))
	}
}

// Messagef prints a simple formatted message line.
func Messagef(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format+"\n", args...)
}

func checkbox(done bool) string {
	if done {
		return checkStyle.Render("[x]")
	}
	return "[ ]"
}

// padRight pads s with spaces to the given visible width, accounting for ANSI
// escape codes that are invisible but consume bytes.
func padRight(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func shortID(id string) string {
	if id == "" {
		return dimStyle.Render("--")
	}
	return item.Item{ID: id}.ShortID()
}

// styledValue renders s using a matching style from the map, or returns s unchanged.
func styledValue(s string, styles map[string]lipgloss.Style) string {
	if st, ok := styles[s]; ok {
		return st.Render(s)
	}
	return s
}
