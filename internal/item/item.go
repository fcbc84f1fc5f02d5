// Package item holds task items and the in-memory store that owns them.
package item

import (
	"strings"

	"github.com/google/uuid"

	"github.com/twiced-technology-gmbh/flowdo/internal/epoch"
)

// Item is a single task record.
type Item struct {
	ID        string       `json:"id" yaml:"id"`
	Text      string       `json:"text" yaml:"text"`
	Priority  Priority     `json:"priority" yaml:"priority"`
	Done      bool         `json:"done" yaml:"done"`
	CreatedAt epoch.Millis `json:"createdAt" yaml:"created_at"`
}

// New builds a normalized Item. Text is trimmed and priority coerced; the
// second result is false when the trimmed text is empty.
func New(id, text, priority string, done bool, createdAt epoch.Millis) (Item, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Item{}, false
	}
	return Item{
		ID:        id,
		Text:      text,
		Priority:  ParsePriority(priority),
		Done:      done,
		CreatedAt: createdAt,
	}, true
}

// NewID returns a fresh random item id.
func NewID() string {
	return uuid.NewString()
}

// ShortID returns the first eight characters of the id for display.
func (it Item) ShortID() string {
	const shortLen = 8
	if len(it.ID) <= shortLen {
		return it.ID
	}
	return it.ID[:shortLen]
}
