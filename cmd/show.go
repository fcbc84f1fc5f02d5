package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/flowdo/internal/clierr"
	"github.com/twiced-technology-gmbh/flowdo/internal/output"
)

var showCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show item details",
	Long:  `Displays a single item. ID may be a unique prefix.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, args []string) error {
	s, err := openSession(logger)
	if err != nil {
		return err
	}
	defer s.Close()

	id, ok := s.app.Resolve(args[0])
	if !ok {
		return clierr.Newf(clierr.ItemNotFound, "no item matches %q", args[0]).
			WithDetails(map[string]any{"ref": args[0]})
	}
	it, _ := s.app.Get(id)

	switch outputFormat() {
	case output.FormatJSON:
		return output.JSON(os.Stdout, it)
	case output.FormatCompact:
		output.ItemDetailCompact(os.Stdout, it)
		return nil
	default:
		return output.ItemDetail(os.Stdout, it)
	}
}
