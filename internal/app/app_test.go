package app

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/twiced-technology-gmbh/flowdo/internal/item"
	"github.com/twiced-technology-gmbh/flowdo/internal/kv"
	"github.com/twiced-technology-gmbh/flowdo/internal/persist"
	"github.com/twiced-technology-gmbh/flowdo/internal/view"
)

// countingStore counts writes and can be told to fail them.
type countingStore struct {
	*kv.Memory
	sets int
	fail bool
}

func (c *countingStore) Set(key, value string) error {
	c.sets++
	if c.fail {
		return errors.New("quota exceeded")
	}
	return c.Memory.Set(key, value)
}

type recordedEntry struct {
	action, id, detail string
}

type fakeJournal struct {
	entries []recordedEntry
}

func (f *fakeJournal) Record(action, id, detail string) {
	f.entries = append(f.entries, recordedEntry{action, id, detail})
}

func newTestApp(t *testing.T, opts ...Option) (*App, *countingStore, *fakeJournal) {
	t.Helper()
	store := &countingStore{Memory: kv.NewMemory()}
	journal := &fakeJournal{}

	n := 0
	clock := time.UnixMilli(1_000)
	storeOpts := WithStoreOptions(
		item.WithIDFunc(func() string { n++; return fmt.Sprintf("id-%d", n) }),
		item.WithClock(func() time.Time { clock = clock.Add(time.Millisecond); return clock }),
	)
	opts = append([]Option{storeOpts, WithJournal(journal)}, opts...)
	return New(persist.New(store), opts...), store, journal
}

func TestSubmitSavesAndRecords(t *testing.T) {
	a, store, journal := newTestApp(t)

	it, ok, err := a.Submit("  Buy milk ", "high")
	if err != nil || !ok {
		t.Fatalf("Submit = %v, %v", ok, err)
	}
	if it.Text != "Buy milk" || it.Priority != item.PriorityHigh || it.Done {
		t.Errorf("item = %+v", it)
	}
	if store.sets != 1 {
		t.Errorf("sets = %d, want 1", store.sets)
	}
	if len(journal.entries) != 1 || journal.entries[0].action != ActionCreate || journal.entries[0].id != it.ID {
		t.Errorf("journal = %+v", journal.entries)
	}

	// A fresh App over the same store sees the item.
	reloaded := New(persist.New(store))
	if got := reloaded.Items(); len(got) != 1 || got[0].ID != it.ID {
		t.Errorf("reloaded items = %+v", got)
	}
}

func TestNoOpsSkipSave(t *testing.T) {
	a, store, journal := newTestApp(t)
	it, _, _ := a.Submit("task", "low")
	before := store.sets

	if _, ok, err := a.Submit("   ", "low"); ok || err != nil {
		t.Errorf("empty Submit = %v, %v", ok, err)
	}
	if changed, err := a.ToggleDone("missing", true); changed || err != nil {
		t.Errorf("ToggleDone(missing) = %v, %v", changed, err)
	}
	if changed, err := a.ToggleDone(it.ID, false); changed || err != nil {
		t.Errorf("ToggleDone(unchanged) = %v, %v", changed, err)
	}
	if removed, err := a.Delete("missing"); removed || err != nil {
		t.Errorf("Delete(missing) = %v, %v", removed, err)
	}
	if n, err := a.ClearDone(); n != 0 || err != nil {
		t.Errorf("ClearDone with nothing done = %d, %v", n, err)
	}

	if store.sets != before {
		t.Errorf("no-op intents saved %d times", store.sets-before)
	}
	if len(journal.entries) != 1 {
		t.Errorf("journal has %d entries, want 1", len(journal.entries))
	}
}

func TestToggleDeleteClear(t *testing.T) {
	a, _, journal := newTestApp(t)
	first, _, _ := a.Submit("first", "medium")
	second, _, _ := a.Submit("second", "low")
	third, _, _ := a.Submit("third", "high")

	if changed, err := a.ToggleDone(first.ID, true); !changed || err != nil {
		t.Fatalf("ToggleDone = %v, %v", changed, err)
	}
	if changed, _ := a.ToggleDone(third.ID, true); !changed {
		t.Fatal("ToggleDone third did not change")
	}
	if changed, _ := a.ToggleDone(third.ID, false); !changed {
		t.Fatal("undo third did not change")
	}
	if removed, err := a.Delete(second.ID); !removed || err != nil {
		t.Fatalf("Delete = %v, %v", removed, err)
	}
	n, err := a.ClearDone()
	if n != 1 || err != nil {
		t.Fatalf("ClearDone = %d, %v", n, err)
	}

	items := a.Items()
	if len(items) != 1 || items[0].ID != third.ID {
		t.Errorf("items = %+v", items)
	}

	var actions []string
	for _, e := range journal.entries {
		actions = append(actions, e.action)
	}
	want := []string{ActionCreate, ActionCreate, ActionCreate, ActionDone, ActionDone, ActionUndo, ActionDelete, ActionClearDone}
	if fmt.Sprint(actions) != fmt.Sprint(want) {
		t.Errorf("journal actions = %v, want %v", actions, want)
	}
}

func TestSaveFailurePropagates(t *testing.T) {
	a, store, journal := newTestApp(t)
	store.fail = true

	_, ok, err := a.Submit("task", "low")
	if !ok || err == nil {
		t.Fatalf("Submit = %v, %v; want created with error", ok, err)
	}
	if len(journal.entries) != 0 {
		t.Errorf("failed save was journaled: %+v", journal.entries)
	}
}

func TestProjection(t *testing.T) {
	a, _, _ := newTestApp(t)
	milk, _, _ := a.Submit("Buy milk", "high")
	_, _, _ = a.Submit("Call mom", "low")
	_, _, _ = a.Submit("Buy bread", "medium")
	_, _ = a.ToggleDone(milk.ID, true)

	p := a.Projection()
	if p.Active != 2 || p.Total != 3 || len(p.Visible) != 3 {
		t.Errorf("initial projection = %+v", p)
	}

	a.SetSearch("  BUY ")
	a.SetFilter("active")
	p = a.Projection()
	if len(p.Visible) != 1 || p.Visible[0].Text != "Buy bread" {
		t.Errorf("active+buy = %+v", p.Visible)
	}
	if p.Active != 2 || p.Total != 3 {
		t.Errorf("counts changed with filter: %+v", p)
	}

	a.SetFilter("bogus")
	if a.Filter() != view.FilterAll {
		t.Errorf("unknown filter = %v, want all", a.Filter())
	}
}

func TestReload(t *testing.T) {
	a, store, _ := newTestApp(t)
	_, _, _ = a.Submit("mine", "low")

	other := New(persist.New(store))
	_, _, _ = other.Submit("theirs", "high")

	a.Reload()
	if got := a.Items(); len(got) != 2 {
		t.Errorf("after reload = %+v", got)
	}
}
