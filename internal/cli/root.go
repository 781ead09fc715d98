package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thruflo/pipemaze/internal/config"
	"github.com/thruflo/pipemaze/internal/logging"
	"github.com/thruflo/pipemaze/internal/solver"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	baseDir string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "pipemaze",
	Short: "Trace pipe loops and count the cells they enclose",
	Long: `pipemaze reads a grid of pipe symbols (| - L J 7 F . S) containing a
single closed loop through the start cell S. It reports how far along the
loop the farthest cell lies and how many cells the loop encloses.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("pipemaze version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&baseDir, "dir", "", "directory holding .pipemaze/ (default: current directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// app is the per-invocation state shared by commands.
type app struct {
	cfg    *config.Config
	solver *solver.Solver
}

func resolveBaseDir() (string, error) {
	if baseDir != "" {
		return baseDir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return cwd, nil
}

// setup loads configuration, applies the log level and builds a solver.
func setup() (*app, error) {
	dir, err := resolveBaseDir()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = logging.LevelDebug
	}
	logging.SetLevel(level)

	s, err := solver.New(solver.Options{
		CacheSize: cfg.Solver.CacheSize,
		Logger:    logging.Default(),
	})
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, solver: s}, nil
}
