package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/flowdo/internal/activity"
	"github.com/twiced-technology-gmbh/flowdo/internal/clierr"
	"github.com/twiced-technology-gmbh/flowdo/internal/output"
)

const defaultLogLimit = 20

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show recent activity",
	Long:  `Prints the most recent changes from the activity journal, oldest first.`,
	Args:  cobra.NoArgs,
	RunE:  runLog,
}

func init() {
	logCmd.Flags().IntP("limit", "n", defaultLogLimit, "number of entries (0 for all)")
	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	limit, _ := cmd.Flags().GetInt("limit")
	if limit < 0 {
		return clierr.Newf(clierr.InvalidInput, "--limit must be >= 0, got %d", limit)
	}

	entries, err := activity.New(cfg.Dir()).Recent(limit)
	if err != nil {
		return err
	}

	switch outputFormat() {
	case output.FormatJSON:
		if entries == nil {
			entries = []activity.Entry{}
		}
		return output.JSON(os.Stdout, entries)
	case output.FormatCompact:
		output.ActivityCompact(os.Stdout, entries)
	default:
		output.ActivityTable(os.Stdout, entries)
	}
	return nil
}
