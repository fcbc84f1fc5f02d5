package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/flowdo/internal/output"
)

var deleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm"},
	Short:   "Delete an item",
	Long: `Removes an item permanently. ID may be a unique prefix. Prompts for confirmation
in interactive mode. Unknown IDs change nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolP("yes", "y", false, "skip confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	s, err := openSession(logger)
	if err != nil {
		return err
	}
	defer s.Close()

	id, ok := s.app.Resolve(args[0])
	if !ok {
		return reportMissing(args[0])
	}
	it, _ := s.app.Get(id)

	if yes, _ := cmd.Flags().GetBool("yes"); !yes {
		ok, err := confirm(fmt.Sprintf("Delete %s %q?", it.ShortID(), it.Text))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(os.Stderr, "Canceled.")
			return nil
		}
	}

	removed, err := s.app.Delete(id)
	if err != nil {
		return storageErr(err)
	}

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, output.MutationResult{ID: id, Changed: removed})
	}
	output.Messagef(os.Stdout, "Deleted %s: %s", it.ShortID(), it.Text)
	return nil
}
