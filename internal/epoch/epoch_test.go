package epoch

import (
	"encoding/json"
	"testing"
	"time"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   Millis
		wantOK bool
	}{
		{"number", float64(1700000000000), 1700000000000, true},
		{"fraction truncated", 12.9, 12, true},
		{"negative kept", float64(-5), -5, true},
		{"numeric string", " 300 ", 300, true},
		{"hex string", "0x10", 16, true},
		{"empty string", "", 0, false},
		{"word", "yesterday", 0, false},
		{"zero", float64(0), 0, false},
		{"nil", nil, 0, false},
		{"true", true, 1, true},
		{"false", false, 0, false},
		{"empty array", []any{}, 0, false},
		{"single element array", []any{"42"}, 42, true},
		{"two element array", []any{float64(1), float64(2)}, 0, false},
		{"object", map[string]any{"a": float64(1)}, 0, false},
		{"infinity", "Infinity", 0, false},
		{"out of range", 9e15, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Coerce(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("Coerce(%v) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Coerce(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestMillisJSON(t *testing.T) {
	m := FromTime(time.Date(2024, 1, 2, 3, 4, 5, 6_000_000, time.UTC))

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != "1704164645006" {
		t.Fatalf("Marshal = %s, want 1704164645006", data)
	}

	var back Millis
	if err := json.Unmarshal([]byte("1704164645006.7"), &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != m {
		t.Errorf("Unmarshal = %d, want %d", back, m)
	}
}
