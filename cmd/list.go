package cmd

import (
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/flowdo/internal/clierr"
	"github.com/twiced-technology-gmbh/flowdo/internal/output"
	"github.com/twiced-technology-gmbh/flowdo/internal/view"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List items",
	Long: `Lists items newest first. --filter selects all, active or done items;
--search keeps items whose text contains the query (case-insensitive).
The summary counts always cover the whole list.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringP("filter", "f", "", "filter mode ("+strings.Join(view.FilterNames(), ", ")+"; default from config)")
	listCmd.Flags().StringP("search", "s", "", "case-insensitive text search")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	s, err := openSession(logger)
	if err != nil {
		return err
	}
	defer s.Close()

	if cmd.Flags().Changed("filter") {
		mode, _ := cmd.Flags().GetString("filter")
		if !slices.Contains(view.FilterNames(), mode) {
			return clierr.Newf(clierr.InvalidFilter, "invalid filter %q; valid: %s",
				mode, strings.Join(view.FilterNames(), ", "))
		}
		s.app.SetFilter(mode)
	}
	search, _ := cmd.Flags().GetString("search")
	s.app.SetSearch(search)

	p := s.app.Projection()
	switch outputFormat() {
	case output.FormatJSON:
		return output.JSON(os.Stdout, p)
	case output.FormatCompact:
		output.ItemCompact(os.Stdout, p.Visible)
	default:
		output.ItemTable(os.Stdout, p.Visible)
		output.Summary(os.Stdout, p)
	}
	return nil
}
