package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/thruflo/pipemaze/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize .pipemaze/ directory",
	Long: `Creates the .pipemaze/ directory with a default config.yaml.

Settings in config.yaml can be overridden per machine with a .pipemaze/.env
file or PIPEMAZE_* environment variables.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config.yaml")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir, err := resolveBaseDir()
	if err != nil {
		return err
	}

	configDir := filepath.Join(dir, config.Dir)
	configPath := filepath.Join(configDir, "config.yaml")

	if fileExists(configPath) && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", configPath)
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", configDir, err)
	}
	if err := writeConfigYAML(configPath); err != nil {
		return fmt.Errorf("failed to write config.yaml: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s\n", configDir)
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func writeConfigYAML(path string) error {
	content := fmt.Sprintf(`# pipemaze configuration

solver:
  # Number of solved grids remembered per run (0 disables the cache)
  cache_size: %d

logging:
  # debug, info, warn or error
  level: %s

render:
  # Single characters drawn for cells inside and outside the loop
  inside_marker: %q
  outside_marker: %q
`, config.DefaultCacheSize, config.DefaultLogLevel, config.DefaultInsideMarker, config.DefaultOutsideMarker)
	return os.WriteFile(path, []byte(content), 0o644)
}
