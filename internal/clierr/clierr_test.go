package clierr

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{ItemNotFound, 1},
		{InvalidPriority, 1},
		{ConfirmationReq, 1},
		{StorageError, 2},
		{InternalError, 2},
	}
	for _, tt := range tests {
		if got := New(tt.code, "x").ExitCode(); got != tt.want {
			t.Errorf("ExitCode(%s) = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestAs(t *testing.T) {
	cause := errors.New("disk full")
	wrapped := fmt.Errorf("saving: %w", Wrap(StorageError, cause))

	ce := As(wrapped)
	if ce.Code != StorageError {
		t.Errorf("As code = %s, want %s", ce.Code, StorageError)
	}
	if !errors.Is(wrapped, cause) {
		t.Error("cause lost through Wrap")
	}

	plain := As(errors.New("boom"))
	if plain.Code != InternalError || plain.Message != "boom" {
		t.Errorf("As(plain) = %+v", plain)
	}
}

func TestWithDetails(t *testing.T) {
	e := Newf(ItemNotFound, "item %q not found", "abc").WithDetails(map[string]any{"id": "abc"})
	if e.Error() != `item "abc" not found` || e.Details["id"] != "abc" {
		t.Errorf("got %+v", e)
	}
}
