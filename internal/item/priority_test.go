package item

import (
	"encoding/json"
	"testing"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in   string
		want Priority
	}{
		{"high", PriorityHigh},
		{"medium", PriorityMedium},
		{"low", PriorityLow},
		{"", PriorityMedium},
		{"HIGH", PriorityMedium},
		{"urgent", PriorityMedium},
	}

	for _, tt := range tests {
		if got := ParsePriority(tt.in); got != tt.want {
			t.Errorf("ParsePriority(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}

func TestPriorityNext(t *testing.T) {
	p := PriorityHigh
	seen := []Priority{p}
	for range 3 {
		p = p.Next()
		seen = append(seen, p)
	}

	want := []Priority{PriorityHigh, PriorityMedium, PriorityLow, PriorityHigh}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("step %d = %#v, want %#v", i, seen[i], want[i])
		}
	}
}

func TestPriorityJSON(t *testing.T) {
	var got struct {
		P Priority `json:"p"`
		Q Priority `json:"q"`
	}
	if err := json.Unmarshal([]byte(`{"p":"low","q":"bogus"}`), &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.P != PriorityLow || got.Q != PriorityMedium {
		t.Errorf("got %#v, %#v; want low, medium", got.P, got.Q)
	}

	data, err := json.Marshal(PriorityHigh)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"high"` {
		t.Errorf("Marshal = %s, want \"high\"", data)
	}
}
