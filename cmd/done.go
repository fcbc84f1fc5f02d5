package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/flowdo/internal/output"
)

var doneCmd = &cobra.Command{
	Use:     "done ID",
	Aliases: []string{"check"},
	Short:   "Mark an item as done",
	Long:    `Marks an item as done. ID may be a unique prefix. Unknown IDs change nothing.`,
	Args:    cobra.ExactArgs(1),
	RunE:    func(_ *cobra.Command, args []string) error { return runToggle(args[0], true) },
}

var undoCmd = &cobra.Command{
	Use:     "undo ID",
	Aliases: []string{"uncheck", "reopen"},
	Short:   "Mark an item as not done",
	Long:    `Marks an item as active again. ID may be a unique prefix. Unknown IDs change nothing.`,
	Args:    cobra.ExactArgs(1),
	RunE:    func(_ *cobra.Command, args []string) error { return runToggle(args[0], false) },
}

func init() {
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(undoCmd)
}

func runToggle(ref string, done bool) error {
	s, err := openSession(logger)
	if err != nil {
		return err
	}
	defer s.Close()

	id, ok := s.app.Resolve(ref)
	if !ok {
		return reportMissing(ref)
	}

	changed, err := s.app.ToggleDone(id, done)
	if err != nil {
		return storageErr(err)
	}

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, output.MutationResult{ID: id, Changed: changed})
	}

	it, _ := s.app.Get(id)
	state := "active"
	if done {
		state = "done"
	}
	if !changed {
		output.Messagef(os.Stdout, "Already %s: %s %s", state, it.ShortID(), it.Text)
		return nil
	}
	output.Messagef(os.Stdout, "Marked %s: %s %s", state, it.ShortID(), it.Text)
	return nil
}

// reportMissing notes an unknown item reference. A miss is not an error:
// the list is unchanged and the command exits 0.
func reportMissing(ref string) error {
	fmt.Fprintf(os.Stderr, "No item matches %q; nothing changed.\n", ref)
	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, output.MutationResult{Changed: false})
	}
	return nil
}
