// Package app routes user intents to the item store, persists every change
// and keeps the filter and search state the front ends render from.
package app

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/twiced-technology-gmbh/flowdo/internal/item"
	"github.com/twiced-technology-gmbh/flowdo/internal/logging"
	"github.com/twiced-technology-gmbh/flowdo/internal/persist"
	"github.com/twiced-technology-gmbh/flowdo/internal/view"
)

// Journal actions.
const (
	ActionCreate    = "create"
	ActionDone      = "done"
	ActionUndo      = "undo"
	ActionDelete    = "delete"
	ActionClearDone = "clear-done"
)

// Journal records mutations. *activity.Log satisfies it.
type Journal interface {
	Record(action, itemID, detail string)
}

// App is the event router shared by the CLI and the TUI. It is not safe for
// concurrent use.
type App struct {
	store   *item.Store
	adapter *persist.Adapter
	filter  view.Filter
	query   string
	journal Journal
	logger  *log.Logger
	opts    []item.Option
}

// Option configures an App.
type Option func(*App)

// WithJournal attaches an activity journal.
func WithJournal(j Journal) Option {
	return func(a *App) { a.journal = j }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(a *App) { a.logger = l }
}

// WithFilter sets the initial filter.
func WithFilter(f view.Filter) Option {
	return func(a *App) { a.filter = f }
}

// WithStoreOptions passes clock and id overrides to the item store.
func WithStoreOptions(opts ...item.Option) Option {
	return func(a *App) { a.opts = append(a.opts, opts...) }
}

// New loads the persisted collection through adapter and returns a ready App.
func New(adapter *persist.Adapter, opts ...Option) *App {
	a := &App{
		adapter: adapter,
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.store = item.NewStore(adapter.Load(), a.opts...)
	return a
}

// Submit creates an item. Empty text is a no-op returning false.
func (a *App) Submit(text, priority string) (item.Item, bool, error) {
	it, ok := a.store.Create(text, priority)
	if !ok {
		a.logger.Debug("ignored empty submission")
		return item.Item{}, false, nil
	}
	if err := a.save(); err != nil {
		return it, true, err
	}
	a.record(ActionCreate, it.ID, it.Text)
	return it, true, nil
}

// ToggleDone sets the done flag. Unknown ids and unchanged flags are no-ops
// and skip the save.
func (a *App) ToggleDone(id string, done bool) (bool, error) {
	if !a.store.Toggle(id, done) {
		return false, nil
	}
	if err := a.save(); err != nil {
		return true, err
	}
	action := ActionUndo
	if done {
		action = ActionDone
	}
	it, _ := a.store.Get(id)
	a.record(action, id, it.Text)
	return true, nil
}

// Delete removes an item. Unknown ids are a no-op.
func (a *App) Delete(id string) (bool, error) {
	it, found := a.store.Get(id)
	if !found || !a.store.Delete(id) {
		return false, nil
	}
	if err := a.save(); err != nil {
		return true, err
	}
	a.record(ActionDelete, id, it.Text)
	return true, nil
}

// ClearDone removes all completed items and returns how many were removed.
func (a *App) ClearDone() (int, error) {
	n := a.store.ClearDone()
	if n == 0 {
		return 0, nil
	}
	if err := a.save(); err != nil {
		return n, err
	}
	a.record(ActionClearDone, "", fmt.Sprintf("%d removed", n))
	return n, nil
}

// SetFilter selects the filter mode by name. Unknown names mean all.
func (a *App) SetFilter(mode string) {
	a.filter = view.ParseFilter(mode)
}

// SetFilterMode selects the filter mode.
func (a *App) SetFilterMode(f view.Filter) {
	a.filter = f
}

// SetSearch sets the search query.
func (a *App) SetSearch(query string) {
	a.query = query
}

// Filter returns the current filter mode.
func (a *App) Filter() view.Filter {
	return a.filter
}

// Search returns the current search query.
func (a *App) Search() string {
	return a.query
}

// Projection computes what the front end should render.
func (a *App) Projection() view.Projection {
	return view.Project(a.store.All(), a.filter, a.query)
}

// Items returns a copy of the whole collection in store order.
func (a *App) Items() []item.Item {
	return a.store.All()
}

// Get returns the item with the given id.
func (a *App) Get(id string) (item.Item, bool) {
	return a.store.Get(id)
}

// Resolve maps an id or unique id prefix to a full id.
func (a *App) Resolve(ref string) (string, bool) {
	return a.store.Resolve(ref)
}

// Reload replaces the in-memory collection with the persisted one.
func (a *App) Reload() {
	items := a.adapter.Load()
	a.store.Replace(items)
	a.logger.Debug("reloaded items", "count", len(items))
}

func (a *App) save() error {
	if err := a.adapter.Save(a.store.All()); err != nil {
		a.logger.Error("saving items failed", "err", err)
		return err
	}
	return nil
}

func (a *App) record(action, id, detail string) {
	if a.journal != nil {
		a.journal.Record(action, id, detail)
	}
}
