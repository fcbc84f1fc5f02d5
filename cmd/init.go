package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/flowdo/internal/clierr"
	"github.com/twiced-technology-gmbh/flowdo/internal/config"
	"github.com/twiced-technology-gmbh/flowdo/internal/kv"
	"github.com/twiced-technology-gmbh/flowdo/internal/output"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a flowdo directory",
	Long:  `Creates a .flowdo directory with config.yml in the current directory (or --dir).`,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().String("name", "", "list name (defaults to current directory name)")
	initCmd.Flags().String("backend", config.DefaultBackend, "storage backend ("+strings.Join(kv.Backends(), ", ")+")")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	dir := flagDir
	if dir == "" {
		dir = config.DefaultDir
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}

	if _, err := os.Stat(filepath.Join(absDir, config.ConfigFileName)); err == nil {
		return clierr.Newf(clierr.StoreAlreadyExists, "flowdo already initialized in %s", absDir).
			WithDetails(map[string]any{"dir": absDir})
	}

	backend, _ := cmd.Flags().GetString("backend")
	if !slices.Contains(kv.Backends(), backend) {
		return clierr.Newf(clierr.InvalidBackend, "invalid backend %q; valid: %s",
			backend, strings.Join(kv.Backends(), ", "))
	}

	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		name = filepath.Base(cwd)
	}

	cfg, err := config.Init(absDir, name)
	if err != nil {
		return err
	}
	if backend != cfg.Storage.Backend {
		cfg.Storage.Backend = backend
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
	}
	logger.Debug("initialized", "dir", absDir, "backend", backend)

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, map[string]string{
			"status":  "initialized",
			"dir":     absDir,
			"name":    cfg.Name,
			"config":  cfg.ConfigPath(),
			"backend": cfg.Storage.Backend,
		})
	}

	output.Messagef(os.Stdout, "Initialized %q in %s", cfg.Name, absDir)
	output.Messagef(os.Stdout, "  Config:  %s", cfg.ConfigPath())
	output.Messagef(os.Stdout, "  Backend: %s", cfg.Storage.Backend)
	return nil
}
