package item

import (
	"fmt"
	"testing"
	"time"
)

func newTestStore(items []Item) *Store {
	n := 0
	clock := time.UnixMilli(1000)
	return NewStore(items,
		WithIDFunc(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
		WithClock(func() time.Time {
			clock = clock.Add(time.Millisecond)
			return clock
		}),
	)
}

func TestCreate(t *testing.T) {
	s := newTestStore(nil)

	inputs := []struct {
		text     string
		priority string
	}{
		{"Buy milk", "high"},
		{"", "low"},
		{"   ", "medium"},
		{"  Walk dog  ", "urgent"},
		{"Call mom", ""},
	}

	created := 0
	for _, in := range inputs {
		if _, ok := s.Create(in.text, in.priority); ok {
			created++
		}
	}

	if created != 3 {
		t.Fatalf("created = %d, want 3", created)
	}
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}

	all := s.All()
	if all[0].Text != "Call mom" || all[1].Text != "Walk dog" || all[2].Text != "Buy milk" {
		t.Errorf("order = %q, %q, %q; want newest first", all[0].Text, all[1].Text, all[2].Text)
	}
	if all[1].Priority != PriorityMedium {
		t.Errorf("unknown priority = %#v, want medium", all[1].Priority)
	}
	if all[2].Priority != PriorityHigh {
		t.Errorf("priority = %#v, want high", all[2].Priority)
	}
	for _, it := range all {
		if it.Done {
			t.Errorf("item %s created done", it.ID)
		}
		if it.CreatedAt == 0 {
			t.Errorf("item %s has no createdAt", it.ID)
		}
	}
}

func TestCreateEmptyTextIsNoOp(t *testing.T) {
	s := newTestStore([]Item{{ID: "a", Text: "Buy milk", Priority: PriorityHigh}})

	if _, ok := s.Create("", "low"); ok {
		t.Fatal("Create with empty text reported success")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestCreateInsertsAtFrontRegardlessOfTimestamp(t *testing.T) {
	s := NewStore([]Item{{ID: "future", Text: "later", CreatedAt: 1 << 50}},
		WithClock(func() time.Time { return time.UnixMilli(5) }))

	s.Create("now", "low")

	if got := s.All()[0].Text; got != "now" {
		t.Errorf("front item = %q, want %q", got, "now")
	}
}

func TestToggleRoundTrip(t *testing.T) {
	orig := Item{ID: "a", Text: "Buy milk", Priority: PriorityLow, CreatedAt: 42}
	s := newTestStore([]Item{orig})

	if !s.Toggle("a", true) {
		t.Fatal("Toggle(a, true) = false, want true")
	}
	if got, _ := s.Get("a"); !got.Done {
		t.Fatal("item not done after Toggle(a, true)")
	}
	if !s.Toggle("a", false) {
		t.Fatal("Toggle(a, false) = false, want true")
	}

	got, _ := s.Get("a")
	if got != orig {
		t.Errorf("after round trip = %+v, want %+v", got, orig)
	}
}

func TestToggleMissingOrUnchanged(t *testing.T) {
	s := newTestStore([]Item{{ID: "a", Text: "x"}})

	if s.Toggle("missing", true) {
		t.Error("Toggle on missing id reported a change")
	}
	if s.Toggle("a", false) {
		t.Error("Toggle to the current value reported a change")
	}
}

func TestDeleteIdempotent(t *testing.T) {
	s := newTestStore([]Item{{ID: "a", Text: "x"}, {ID: "b", Text: "y"}})

	if s.Delete("missing") {
		t.Error("Delete(missing) = true")
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d after deleting missing id, want 2", s.Len())
	}
	if !s.Delete("a") {
		t.Fatal("Delete(a) = false")
	}
	if s.Delete("a") {
		t.Error("second Delete(a) = true")
	}
	if all := s.All(); len(all) != 1 || all[0].ID != "b" {
		t.Errorf("remaining = %+v, want only b", all)
	}
}

func TestClearDoneKeepsOrder(t *testing.T) {
	s := newTestStore([]Item{
		{ID: "a", Text: "a", Done: true},
		{ID: "b", Text: "b"},
		{ID: "c", Text: "c", Done: true},
		{ID: "d", Text: "d"},
		{ID: "e", Text: "e"},
	})

	if removed := s.ClearDone(); removed != 2 {
		t.Errorf("ClearDone() = %d, want 2", removed)
	}

	all := s.All()
	want := []string{"b", "d", "e"}
	if len(all) != len(want) {
		t.Fatalf("len = %d, want %d", len(all), len(want))
	}
	for i, id := range want {
		if all[i].ID != id {
			t.Errorf("all[%d] = %s, want %s", i, all[i].ID, id)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	s := newTestStore([]Item{{ID: "a", Text: "x"}})

	all := s.All()
	all[0].Text = "mutated"

	if got, _ := s.Get("a"); got.Text != "x" {
		t.Errorf("store mutated through All(): %q", got.Text)
	}
}

func TestResolve(t *testing.T) {
	s := newTestStore([]Item{
		{ID: "abc123", Text: "x"},
		{ID: "abd456", Text: "y"},
	})

	tests := []struct {
		ref    string
		want   string
		wantOK bool
	}{
		{"abc123", "abc123", true},
		{"abc", "abc123", true},
		{"abd", "abd456", true},
		{"ab", "", false},
		{"zzz", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := s.Resolve(tt.ref)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Resolve(%q) = %q, %v; want %q, %v", tt.ref, got, ok, tt.want, tt.wantOK)
		}
	}
}
