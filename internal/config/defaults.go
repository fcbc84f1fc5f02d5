// Package config handles flowdo data directory configuration.
package config

import "github.com/twiced-technology-gmbh/flowdo/internal/persist"

const (
	// DefaultDir is the project-local data directory name.
	DefaultDir = ".flowdo"
	// DefaultName is the list name used when none is given.
	DefaultName = "flowdo"
	// DefaultBackend is the storage backend for new data directories.
	DefaultBackend = "file"
	// DefaultKey is the storage key holding the item collection.
	DefaultKey = persist.DefaultKey
	// DefaultPriority is the priority preselected for new items.
	DefaultPriority = "medium"
	// DefaultFilter is the filter mode a front end starts in.
	DefaultFilter = "all"

	// ConfigFileName is the name of the config file within the data directory.
	ConfigFileName = "config.yml"

	// CurrentVersion is the current config schema version.
	CurrentVersion = 2
)

// Value sets accepted by Validate (slices cannot be const).
var (
	Backends   = []string{"file", "sqlite", "memory"}
	Priorities = []string{"high", "medium", "low"}
	Filters    = []string{"all", "active", "done"}
)

// boolPtr returns a pointer to the given bool value.
func boolPtr(v bool) *bool { return &v }
