// Package persist round-trips the item collection through a kv.Store under a
// single fixed key. Loading is fail-safe: corrupt or foreign data yields an
// empty collection instead of an error.
package persist

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/twiced-technology-gmbh/flowdo/internal/epoch"
	"github.com/twiced-technology-gmbh/flowdo/internal/item"
	"github.com/twiced-technology-gmbh/flowdo/internal/kv"
)

// DefaultKey is the storage key for the serialized collection. The suffix
// versions the layout.
const DefaultKey = "flowdo-items-v1"

// Adapter saves and loads items under one key.
type Adapter struct {
	store  kv.Store
	key    string
	now    func() time.Time
	newID  func() string
	logger *log.Logger
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithKey overrides DefaultKey.
func WithKey(key string) Option {
	return func(a *Adapter) {
		if key != "" {
			a.key = key
		}
	}
}

// WithClock overrides the clock used for invalid createdAt values.
func WithClock(now func() time.Time) Option {
	return func(a *Adapter) { a.now = now }
}

// WithIDFunc overrides id generation for entries without a usable id.
func WithIDFunc(fn func() string) Option {
	return func(a *Adapter) { a.newID = fn }
}

// WithLogger sets the logger for discarded data.
func WithLogger(l *log.Logger) Option {
	return func(a *Adapter) { a.logger = l }
}

// New returns an Adapter over store.
func New(store kv.Store, opts ...Option) *Adapter {
	a := &Adapter{
		store:  store,
		key:    DefaultKey,
		now:    time.Now,
		newID:  item.NewID,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Key returns the storage key in use.
func (a *Adapter) Key() string {
	return a.key
}

// Save serializes items and overwrites the stored value.
func (a *Adapter) Save(items []item.Item) error {
	if items == nil {
		items = []item.Item{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding items: %w", err)
	}
	if err := a.store.Set(a.key, string(data)); err != nil {
		return fmt.Errorf("saving items: %w", err)
	}
	a.logger.Debug("saved items", "key", a.key, "count", len(items))
	return nil
}

// Load reads and sanitizes the stored collection, newest first. A missing
// key, a read failure or unparseable data all yield an empty collection.
func (a *Adapter) Load() []item.Item {
	raw, ok, err := a.store.Get(a.key)
	if err != nil {
		a.logger.Warn("reading stored items failed; starting empty", "key", a.key, "err", err)
		return []item.Item{}
	}
	if !ok {
		return []item.Item{}
	}
	items, err := a.decode(raw)
	if err != nil {
		a.logger.Warn("discarding unreadable stored items", "key", a.key, "err", err)
		return []item.Item{}
	}
	a.logger.Debug("loaded items", "key", a.key, "count", len(items))
	return items
}

// Decode sanitizes a serialized collection with default id and clock
// sources. It never fails: invalid input yields an empty collection.
func Decode(raw string) []item.Item {
	items, err := New(kv.NewMemory()).decode(raw)
	if err != nil {
		return []item.Item{}
	}
	return items
}

func (a *Adapter) decode(raw string) ([]item.Item, error) {
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("parsing stored items: %w", err)
	}
	entries, ok := parsed.([]any)
	if !ok {
		return nil, fmt.Errorf("stored value is %s, not an array", jsonKind(parsed))
	}

	items := make([]item.Item, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, entry := range entries {
		it, ok := a.sanitize(entry)
		if !ok {
			continue
		}
		if it.ID == "" || seen[it.ID] {
			it.ID = a.newID()
		}
		seen[it.ID] = true
		items = append(items, it)
	}

	slices.SortStableFunc(items, func(x, y item.Item) int {
		switch {
		case x.CreatedAt > y.CreatedAt:
			return -1
		case x.CreatedAt < y.CreatedAt:
			return 1
		default:
			return 0
		}
	})
	return items, nil
}

// sanitize converts one decoded entry. Only objects with a string text field
// survive; other fields fall back to defaults.
func (a *Adapter) sanitize(entry any) (item.Item, bool) {
	obj, ok := entry.(map[string]any)
	if !ok {
		return item.Item{}, false
	}
	text, ok := obj["text"].(string)
	if !ok {
		return item.Item{}, false
	}

	id, ok := obj["id"].(string)
	if !ok {
		id = a.newID()
	}
	priority, _ := obj["priority"].(string)
	createdAt, ok := epoch.Coerce(obj["createdAt"])
	if !ok {
		createdAt = epoch.FromTime(a.now())
	}

	return item.New(id, text, priority, truthy(obj["done"]), createdAt)
}

// truthy applies JavaScript Boolean() conversion to a decoded JSON value.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	default:
		return true
	}
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "an object"
	case string:
		return "a string"
	case float64:
		return "a number"
	case bool:
		return "a boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
