package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/flowdo/internal/config"
	"github.com/twiced-technology-gmbh/flowdo/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify configuration",
	Long:  `View the full configuration, get a specific key, or set a value.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2), //nolint:mnd // key and value
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if outputFormat() == output.FormatJSON {
		m := map[string]any{"version": cfg.Version, "dir": cfg.Dir()}
		for _, key := range config.Keys() {
			m[key], _ = cfg.Get(key)
		}
		return output.JSON(os.Stdout, m)
	}

	fmt.Fprintf(os.Stdout, "%-20s %s\n", "dir", cfg.Dir())
	for _, key := range config.Keys() {
		val, _ := cfg.Get(key)
		fmt.Fprintf(os.Stdout, "%-20s %s\n", key, val)
	}
	return nil
}

func runConfigGet(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	val, err := cfg.Get(args[0])
	if err != nil {
		return err
	}

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, val)
	}
	fmt.Fprintln(os.Stdout, val)
	return nil
}

func runConfigSet(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	if err := cfg.Set(key, value); err != nil {
		return err
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	logger.Debug("config updated", "key", key, "value", value)

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, map[string]string{"key": key, "value": value})
	}
	output.Messagef(os.Stdout, "Set %s = %s", key, value)
	return nil
}
