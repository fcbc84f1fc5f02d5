// Package tui implements the interactive terminal list for flowdo.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/twiced-technology-gmbh/flowdo/internal/app"
	"github.com/twiced-technology-gmbh/flowdo/internal/item"
	"github.com/twiced-technology-gmbh/flowdo/internal/view"
)

// mode represents the current screen state.
type mode int

const (
	modeList mode = iota
	modeAdd
	modeSearch
	modeConfirmDelete
	modeConfirmClear
)

const (
	textCharLimit = 500
	listChrome    = 7 // title, tabs, input, blank, status, help, error
	minRows       = 1
)

// Options configures the list model.
type Options struct {
	Name        string
	Priority    item.Priority
	ShowCreated bool
}

// List is the top-level bubbletea model.
type List struct {
	app    *app.App
	opts   Options
	keys   keyMap
	ikeys  inputKeys
	help   help.Model
	input  textinput.Model
	search textinput.Model

	mode     mode
	priority item.Priority
	cursor   int
	offset   int
	width    int
	height   int
	err      error

	// Delete confirmation.
	deleteID   string
	deleteText string

	// Clear done confirmation.
	clearCount int
}

// New creates a List model over a.
func New(a *app.App, opts Options) *List {
	input := textinput.New()
	input.Placeholder = "What needs doing?"
	input.Prompt = "+ "
	input.CharLimit = textCharLimit

	search := textinput.New()
	search.Placeholder = "search"
	search.Prompt = "/ "
	search.SetValue(a.Search())

	return &List{
		app:      a,
		opts:     opts,
		keys:     defaultKeys(),
		ikeys:    defaultInputKeys(),
		help:     help.New(),
		input:    input,
		search:   search,
		priority: opts.Priority,
	}
}

// Init implements tea.Model.
func (l *List) Init() tea.Cmd {
	return nil
}

// ReloadMsg is sent by the file watcher to re-read persisted state.
type ReloadMsg struct{}

// Update implements tea.Model.
func (l *List) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return l.handleKey(msg)
	case tea.WindowSizeMsg:
		l.width = msg.Width
		l.height = msg.Height
		l.help.Width = msg.Width
		l.input.Width = max(msg.Width-len(l.input.Prompt)-len("medium  "), 1)
		l.search.Width = max(msg.Width-len(l.search.Prompt), 1)
		l.ensureVisible()
		return l, nil
	case ReloadMsg:
		l.app.Reload()
		l.clampCursor()
		return l, nil
	}
	return l, nil
}

func (l *List) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return l, tea.Quit
	}

	switch l.mode {
	case modeAdd:
		return l.handleAddKey(msg)
	case modeSearch:
		return l.handleSearchKey(msg)
	case modeConfirmDelete:
		return l.handleDeleteKey(msg)
	case modeConfirmClear:
		return l.handleClearKey(msg)
	default:
		return l.handleListKey(msg)
	}
}

func (l *List) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, l.keys.Quit):
		return l, tea.Quit
	case key.Matches(msg, l.keys.Up):
		if l.cursor > 0 {
			l.cursor--
			l.ensureVisible()
		}
	case key.Matches(msg, l.keys.Down):
		if l.cursor < len(l.visible())-1 {
			l.cursor++
			l.ensureVisible()
		}
	case key.Matches(msg, l.keys.Add):
		l.mode = modeAdd
		l.err = nil
		return l, l.input.Focus()
	case key.Matches(msg, l.keys.Search):
		l.mode = modeSearch
		return l, l.search.Focus()
	case key.Matches(msg, l.keys.Toggle):
		l.toggleSelected()
	case key.Matches(msg, l.keys.Delete):
		if it, ok := l.selected(); ok {
			l.deleteID = it.ID
			l.deleteText = it.Text
			l.mode = modeConfirmDelete
		}
	case key.Matches(msg, l.keys.ClearDone):
		if n := l.app.Projection().Done(); n > 0 {
			l.clearCount = n
			l.mode = modeConfirmClear
		}
	case key.Matches(msg, l.keys.FilterAll):
		l.setFilter(view.FilterAll)
	case key.Matches(msg, l.keys.FilterAct):
		l.setFilter(view.FilterActive)
	case key.Matches(msg, l.keys.FilterDn):
		l.setFilter(view.FilterDone)
	case key.Matches(msg, l.keys.Cycle):
		l.setFilter(l.app.Filter().Next())
	}
	return l, nil
}

func (l *List) handleAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, l.ikeys.Cancel):
		l.input.Blur()
		l.input.Reset()
		l.mode = modeList
		return l, nil
	case key.Matches(msg, l.ikeys.Priority):
		l.priority = l.priority.Next()
		return l, nil
	case key.Matches(msg, l.ikeys.Submit):
		_, created, err := l.app.Submit(l.input.Value(), l.priority.String())
		l.err = err
		if created {
			l.input.Reset()
			l.cursor = 0
			l.offset = 0
		}
		return l, nil
	}

	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	return l, cmd
}

func (l *List) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, l.ikeys.Cancel):
		l.search.Reset()
		l.app.SetSearch("")
		l.search.Blur()
		l.mode = modeList
		l.clampCursor()
		return l, nil
	case key.Matches(msg, l.ikeys.Submit):
		l.search.Blur()
		l.mode = modeList
		return l, nil
	}

	var cmd tea.Cmd
	l.search, cmd = l.search.Update(msg)
	l.app.SetSearch(l.search.Value())
	l.cursor = 0
	l.offset = 0
	return l, cmd
}

func (l *List) handleDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		_, err := l.app.Delete(l.deleteID)
		l.err = err
		l.mode = modeList
		l.clampCursor()
	case "n", "N", "esc", "q":
		l.mode = modeList
	}
	return l, nil
}

func (l *List) handleClearKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		_, err := l.app.ClearDone()
		l.err = err
		l.mode = modeList
		l.clampCursor()
	case "n", "N", "esc", "q":
		l.mode = modeList
	}
	return l, nil
}

func (l *List) toggleSelected() {
	it, ok := l.selected()
	if !ok {
		return
	}
	_, err := l.app.ToggleDone(it.ID, !it.Done)
	l.err = err
	l.clampCursor()
}

func (l *List) setFilter(f view.Filter) {
	l.app.SetFilterMode(f)
	l.cursor = 0
	l.offset = 0
}

func (l *List) visible() []item.Item {
	return l.app.Projection().Visible
}

func (l *List) selected() (item.Item, bool) {
	items := l.visible()
	if l.cursor < 0 || l.cursor >= len(items) {
		return item.Item{}, false
	}
	return items[l.cursor], true
}

func (l *List) clampCursor() {
	n := len(l.visible())
	if l.cursor >= n {
		l.cursor = n - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	l.ensureVisible()
}

func (l *List) rows() int {
	if l.height == 0 {
		return len(l.visible())
	}
	return max(l.height-listChrome, minRows)
}

func (l *List) ensureVisible() {
	rows := l.rows()
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if rows > 0 && l.cursor >= l.offset+rows {
		l.offset = l.cursor - rows + 1
	}
}

// View implements tea.Model.
func (l *List) View() string {
	if l.width == 0 {
		return "Loading..."
	}

	switch l.mode {
	case modeConfirmDelete:
		return l.viewDeleteConfirm()
	case modeConfirmClear:
		return l.viewClearConfirm()
	default:
		return l.viewList()
	}
}

func (l *List) viewList() string {
	p := l.app.Projection()

	sections := []string{
		titleStyle.Render(l.opts.Name),
		l.renderTabs(p.Filter),
		l.renderInput(),
		l.renderItems(p.Visible),
		"",
		l.renderStatusBar(p),
	}
	if l.mode == modeAdd || l.mode == modeSearch {
		sections = append(sections, l.help.View(l.ikeys))
	} else {
		sections = append(sections, l.help.View(l.keys))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (l *List) renderTabs(active view.Filter) string {
	tabs := make([]string, 0, len(view.Filters()))
	for i, f := range view.Filters() {
		label := fmt.Sprintf("%d %s", i+1, f)
		if f == active {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (l *List) renderInput() string {
	switch l.mode {
	case modeAdd:
		return priorityBadge(l.priority) + "  " + l.input.View()
	case modeSearch:
		return l.search.View()
	default:
		if q := l.app.Search(); strings.TrimSpace(q) != "" {
			return dimStyle.Render("/ " + q)
		}
		return dimStyle.Render("a: add item  /: search")
	}
}

func (l *List) renderItems(items []item.Item) string {
	if len(items) == 0 {
		return dimStyle.Render("  Nothing here.")
	}

	rows := l.rows()
	end := min(l.offset+rows, len(items))
	lines := make([]string, 0, end-l.offset)
	for i := l.offset; i < end; i++ {
		lines = append(lines, l.renderItem(items[i], i == l.cursor))
	}
	return strings.Join(lines, "\n")
}

func (l *List) renderItem(it item.Item, active bool) string {
	cursor := "  "
	if active && l.mode == modeList {
		cursor = cursorStyle.Render("> ")
	}
	check := "[ ]"
	text := it.Text
	if it.Done {
		check = checkStyle.Render("[x]")
		text = doneStyle.Render(text)
	}

	line := cursor + check + " " + priorityBadge(it.Priority) + " " + text
	if l.opts.ShowCreated {
		line += "  " + dimStyle.Render(it.CreatedAt.String())
	}
	return truncate(line, l.width)
}

func (l *List) renderStatusBar(p view.Projection) string {
	status := fmt.Sprintf(" %d active · %d total", p.Active, p.Total)
	if len(p.Visible) != p.Total {
		status += fmt.Sprintf(" | showing %d", len(p.Visible))
	}
	status = truncate(status, l.width)

	if l.err != nil {
		errStr := errorStyle.Render(truncate("Error: "+l.err.Error(), l.width))
		return errStr + "\n" + statusBarStyle.Render(status)
	}
	return statusBarStyle.Render(status)
}

func (l *List) viewDeleteConfirm() string {
	content := errorStyle.Render("Delete item?") + "\n\n" +
		"  " + l.deleteText + "\n\n" +
		dimStyle.Render("y:yes  n:no")

	return dialogStyle.Render(content)
}

func (l *List) viewClearConfirm() string {
	noun := "items"
	if l.clearCount == 1 {
		noun = "item"
	}
	content := errorStyle.Render("Clear completed items?") + "\n\n" +
		fmt.Sprintf("  %d done %s will be removed.", l.clearCount, noun) + "\n\n" +
		dimStyle.Render("y:yes  n:no")

	return dialogStyle.Render(content)
}

// truncate shortens s to maxLen display cells, keeping ANSI styling intact
// when no cut is needed.
func truncate(s string, maxLen int) string {
	if maxLen < 4 { //nolint:mnd // minimum length for truncation
		maxLen = 4
	}
	if lipgloss.Width(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	target := min(maxLen-3, len(runes)) //nolint:mnd // room for "..."
	for target > 0 && lipgloss.Width(string(runes[:target])) > maxLen-3 {
		target--
	}
	return string(runes[:target]) + "..."
}
