package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/flowdo/internal/output"
)

var clearDoneCmd = &cobra.Command{
	Use:     "clear-done",
	Aliases: []string{"clear"},
	Short:   "Remove all completed items",
	Long:    `Removes every done item, keeping the order of the rest. Prompts for confirmation in interactive mode.`,
	Args:    cobra.NoArgs,
	RunE:    runClearDone,
}

func init() {
	clearDoneCmd.Flags().BoolP("yes", "y", false, "skip confirmation prompt")
	rootCmd.AddCommand(clearDoneCmd)
}

func runClearDone(cmd *cobra.Command, _ []string) error {
	s, err := openSession(logger)
	if err != nil {
		return err
	}
	defer s.Close()

	pending := s.app.Projection().Done()
	if pending > 0 {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			ok, err := confirm(fmt.Sprintf("Remove %d done item(s)?", pending))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(os.Stderr, "Canceled.")
				return nil
			}
		}
	}

	n, err := s.app.ClearDone()
	if err != nil {
		return storageErr(err)
	}

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, output.MutationResult{Changed: n > 0, Count: n})
	}
	if n == 0 {
		output.Messagef(os.Stdout, "No done items.")
		return nil
	}
	output.Messagef(os.Stdout, "Removed %d done item(s)", n)
	return nil
}
