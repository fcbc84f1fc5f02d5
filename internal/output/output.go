// Package output renders command results as tables, compact lines or JSON.
package output

import "os"

// EnvVar overrides the default format when no flag is given.
const EnvVar = "FLOWDO_OUTPUT"

// Format selects how a command prints its result.
type Format int

const (
	FormatTable Format = iota
	FormatJSON
	FormatCompact
)

var formatNames = map[string]Format{
	"table":   FormatTable,
	"json":    FormatJSON,
	"compact": FormatCompact,
	"oneline": FormatCompact,
}

// ParseFormat maps a format name (as used in FLOWDO_OUTPUT) to a Format.
func ParseFormat(name string) (Format, bool) {
	f, ok := formatNames[name]
	return f, ok
}

// Detect picks the format from flags, then FLOWDO_OUTPUT, then table.
// --json wins over --compact, which wins over --table.
func Detect(jsonFlag, tableFlag, compactFlag bool) Format {
	switch {
	case jsonFlag:
		return FormatJSON
	case compactFlag:
		return FormatCompact
	case tableFlag:
		return FormatTable
	}
	if f, ok := ParseFormat(os.Getenv(EnvVar)); ok {
		return f
	}
	return FormatTable
}
