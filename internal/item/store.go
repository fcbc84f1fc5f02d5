package item

import (
	"slices"
	"strings"
	"time"

	"github.com/twiced-technology-gmbh/flowdo/internal/epoch"
)

// Store is the authoritative ordered collection of items, newest first.
// Lookups by id degrade to no-ops on a miss.
type Store struct {
	items []Item
	now   func() time.Time
	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used for createdAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDFunc overrides id generation.
func WithIDFunc(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// NewStore creates a Store holding a copy of items in the given order.
func NewStore(items []Item, opts ...Option) *Store {
	s := &Store{
		items: slices.Clone(items),
		now:   time.Now,
		newID: NewID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create inserts a new item at the front. Empty text (after trimming) is a
// no-op and returns false.
func (s *Store) Create(text, priority string) (Item, bool) {
	it, ok := New(s.newID(), text, priority, false, epoch.FromTime(s.now()))
	if !ok {
		return Item{}, false
	}
	s.items = slices.Insert(s.items, 0, it)
	return it, true
}

// Toggle sets the done flag of the item with the given id. It returns true
// only when an item was found and its flag changed.
func (s *Store) Toggle(id string, done bool) bool {
	i := s.index(id)
	if i < 0 || s.items[i].Done == done {
		return false
	}
	s.items[i].Done = done
	return true
}

// Delete removes the item with the given id.
func (s *Store) Delete(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	return true
}

// ClearDone removes every done item and returns how many were removed.
// Remaining items keep their relative order.
func (s *Store) ClearDone() int {
	before := len(s.items)
	s.items = slices.DeleteFunc(s.items, func(it Item) bool { return it.Done })
	return before - len(s.items)
}

// All returns a copy of the collection.
func (s *Store) All() []Item {
	return slices.Clone(s.items)
}

// Len returns the number of items.
func (s *Store) Len() int {
	return len(s.items)
}

// Get returns the item with the given id.
func (s *Store) Get(id string) (Item, bool) {
	i := s.index(id)
	if i < 0 {
		return Item{}, false
	}
	return s.items[i], true
}

// Resolve maps a full id or a unique id prefix to a full id.
func (s *Store) Resolve(ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", false
	}
	if s.index(ref) >= 0 {
		return ref, true
	}
	match := ""
	for _, it := range s.items {
		if strings.HasPrefix(it.ID, ref) {
			if match != "" {
				return "", false // ambiguous
			}
			match = it.ID
		}
	}
	return match, match != ""
}

// Replace swaps the whole collection, e.g. after reloading from storage.
func (s *Store) Replace(items []Item) {
	s.items = slices.Clone(items)
}

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.items, func(it Item) bool { return it.ID == id })
}
