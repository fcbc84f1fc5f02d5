package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/twiced-technology-gmbh/flowdo/internal/clierr"
	"github.com/twiced-technology-gmbh/flowdo/internal/item"
	"github.com/twiced-technology-gmbh/flowdo/internal/output"
)

var addCmd = &cobra.Command{
	Use:     "add TEXT...",
	Aliases: []string{"create", "new"},
	Short:   "Add an item",
	Long: `Adds an item at the top of the list. Multiple arguments are joined with spaces.
Text that is empty after trimming adds nothing.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringP("priority", "p", "", "priority ("+strings.Join(item.PriorityNames(), ", ")+"; default from config)")
	addCmd.Flags().SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		if name == "prio" {
			name = "priority"
		}
		return pflag.NormalizedName(name)
	})
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	s, err := openSession(logger)
	if err != nil {
		return err
	}
	defer s.Close()

	priority, _ := cmd.Flags().GetString("priority")
	if priority == "" {
		priority = s.cfg.Defaults.Priority
	} else if _, ok := item.LookupPriority(priority); !ok {
		return clierr.Newf(clierr.InvalidPriority, "invalid priority %q; allowed: %s",
			priority, strings.Join(item.PriorityNames(), ", "))
	}

	it, created, err := s.app.Submit(strings.Join(args, " "), priority)
	if err != nil {
		return storageErr(err)
	}
	if !created {
		return clierr.New(clierr.EmptyText, "item text is empty")
	}

	switch outputFormat() {
	case output.FormatJSON:
		return output.JSON(os.Stdout, it)
	case output.FormatCompact:
		output.ItemCompact(os.Stdout, []item.Item{it})
	default:
		output.Messagef(os.Stdout, "Added %s [%s] %s", it.ShortID(), it.Priority, it.Text)
	}
	return nil
}
