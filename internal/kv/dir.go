package kv

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/twiced-technology-gmbh/flowdo/internal/filelock"
)

const (
	dirMode      = 0o750
	fileMode     = 0o600
	fileExt      = ".json"
	lockFileName = ".lock"
)

// Dir stores each key as <dir>/<key>.json. Writes go through a temp file and
// rename under an advisory lock, so readers never see a partial value.
type Dir struct {
	path string
}

// NewDir returns a Dir store rooted at path, creating the directory.
func NewDir(path string) (*Dir, error) {
	if err := os.MkdirAll(path, dirMode); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &Dir{path: path}, nil
}

// Path returns the file backing key.
func (d *Dir) Path(key string) string {
	return filepath.Join(d.path, key+fileExt)
}

// Get implements Store.
func (d *Dir) Get(key string) (string, bool, error) {
	if err := validateKey(key); err != nil {
		return "", false, err
	}
	data, err := os.ReadFile(d.Path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("reading %s: %w", key, err)
	}
	return string(data), true, nil
}

// Set implements Store.
func (d *Dir) Set(key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	return filelock.With(filepath.Join(d.path, lockFileName), func() error {
		return d.writeAtomic(d.Path(key), []byte(value))
	})
}

func (d *Dir) writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(d.path, ".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // already renamed on success

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Chmod(fileMode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("setting file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing %s: %w", filepath.Base(path), err)
	}
	return nil
}
