package kv

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func backends(t *testing.T) map[string]Store {
	t.Helper()

	dir, err := NewDir(filepath.Join(t.TempDir(), "data"))
	if err != nil {
		t.Fatalf("NewDir: %v", err)
	}
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "kv.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return map[string]Store{
		"memory": NewMemory(),
		"dir":    dir,
		"sqlite": db,
	}
}

func TestStoreContract(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok, err := s.Get("flowdo-items-v1"); err != nil || ok {
				t.Fatalf("Get on empty store = ok %v, err %v; want absent", ok, err)
			}

			if err := s.Set("flowdo-items-v1", `[1]`); err != nil {
				t.Fatalf("Set: %v", err)
			}
			if err := s.Set("flowdo-items-v1", `[2]`); err != nil {
				t.Fatalf("second Set: %v", err)
			}

			v, ok, err := s.Get("flowdo-items-v1")
			if err != nil || !ok {
				t.Fatalf("Get = ok %v, err %v", ok, err)
			}
			if v != `[2]` {
				t.Errorf("Get = %q, want last write %q", v, `[2]`)
			}

			if err := s.Set("../escape", "x"); !errors.Is(err, ErrInvalidKey) {
				t.Errorf("Set with path key err = %v, want ErrInvalidKey", err)
			}
		})
	}
}

func TestDirLeavesNoTempFiles(t *testing.T) {
	root := t.TempDir()
	d, err := NewDir(root)
	if err != nil {
		t.Fatalf("NewDir: %v", err)
	}
	if err := d.Set("k", "v"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, e := range entries {
		if e.Name() != "k.json" && e.Name() != lockFileName {
			t.Errorf("unexpected file %s", e.Name())
		}
	}
}

func TestSQLitePersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")

	db, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := db.Set("k", "hello"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	db, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()

	v, ok, err := db.Get("k")
	if err != nil || !ok || v != "hello" {
		t.Errorf("Get after reopen = %q, %v, %v", v, ok, err)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	for _, b := range Backends() {
		s, err := Open(b, dir)
		if err != nil {
			t.Fatalf("Open(%q): %v", b, err)
		}
		if err := Close(s); err != nil {
			t.Errorf("Close(%q): %v", b, err)
		}
	}

	if _, err := Open("redis", dir); err == nil {
		t.Error("Open(redis) succeeded, want error")
	}
}
