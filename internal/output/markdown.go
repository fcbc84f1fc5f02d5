package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/twiced-technology-gmbh/flowdo/internal/item"
)

const (
	darkStyle  = "dark"
	noTTYStyle = "notty"
	wrapWidth  = 80
)

var markdownStyle = darkStyle

// ItemMarkdown formats a single item as a markdown document.
func ItemMarkdown(it item.Item) string {
	var b strings.Builder
	check := "[ ]"
	if it.Done {
		check = "[x]"
	}
	fmt.Fprintf(&b, "# %s %s\n\n", check, escapeMarkdown(it.Text))
	fmt.Fprintf(&b, "| field | value |\n|---|---|\n")
	fmt.Fprintf(&b, "| id | `%s` |\n", it.ID)
	fmt.Fprintf(&b, "| priority | **%s** |\n", it.Priority)
	fmt.Fprintf(&b, "| status | %s |\n", status(it.Done))
	fmt.Fprintf(&b, "| created | %s |\n", it.CreatedAt)
	return b.String()
}

// ItemDetail renders a single item as styled markdown. If rendering fails
// the raw markdown is written instead.
func ItemDetail(w io.Writer, it item.Item) error {
	md := ItemMarkdown(it)
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(markdownStyle),
		glamour.WithWordWrap(wrapWidth),
	)
	if err != nil {
		_, werr := io.WriteString(w, md)
		return werr
	}
	out, err := r.Render(md)
	if err != nil {
		_, werr := io.WriteString(w, md)
		return werr
	}
	_, err = io.WriteString(w, out)
	return err
}

func status(done bool) string {
	if done {
		return "done"
	}
	return "active"
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "#", `\#`, "|", `\|`, "[", `\[`, "]", `\]`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
