// Package activity keeps an append-only JSONL journal of item mutations.
package activity

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// FileName is the journal file inside the data directory.
	FileName = "activity.jsonl"

	fileMode   = 0o600
	maxEntries = 10000 // oldest entries are dropped beyond this
)

// Entry is one journal line.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	ItemID    string    `json:"item_id,omitempty"`
	Detail    string    `json:"detail,omitempty"`
}

// Log appends entries to <dir>/activity.jsonl.
type Log struct {
	path string
	now  func() time.Time
}

// New returns a journal stored in dir.
func New(dir string) *Log {
	return &Log{path: filepath.Join(dir, FileName), now: time.Now}
}

// Path returns the journal file path.
func (l *Log) Path() string {
	return l.path
}

// Record appends an entry. Errors are discarded: journaling must never fail
// a user action.
func (l *Log) Record(action, itemID, detail string) {
	_ = l.Append(Entry{
		Timestamp: l.now(),
		Action:    action,
		ItemID:    itemID,
		Detail:    detail,
	})
}

// Append writes entry and truncates the journal if it grew too large.
func (l *Log) Append(entry Entry) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, fileMode) //nolint:gosec // path from data dir
	if err != nil {
		return fmt.Errorf("opening activity log: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshaling activity entry: %w", err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing activity entry: %w", err)
	}

	// Best-effort.
	_ = truncate(l.path, maxEntries)
	return nil
}

// Recent returns up to n of the newest entries, oldest first. Lines that do
// not parse are skipped. A missing journal yields no entries.
func (l *Log) Recent(n int) ([]Entry, error) {
	lines, err := readLines(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading activity log: %w", err)
	}
	if n > 0 && len(lines) > n {
		lines = lines[len(lines)-n:]
	}

	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		var e Entry
		if json.Unmarshal([]byte(line), &e) == nil {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func truncate(path string, limit int) error {
	lines, err := readLines(path)
	if err != nil {
		return err
	}
	if len(lines) <= limit {
		return nil
	}
	lines = lines[len(lines)-limit:]

	var buf strings.Builder
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(buf.String()), fileMode)
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // path from data dir
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
