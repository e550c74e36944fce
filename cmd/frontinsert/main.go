package main

import (
	"fmt"
	"os"

	"frontinsert/internal/config"
	"frontinsert/internal/logging"
	"frontinsert/internal/session"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "frontinsert",
	Short: "Insert an integer at the front of an array",
	Long: `frontinsert reads an element count n, then n integers, then one more
integer from standard input. It prints the array, shifts every element one
slot to the right, stores the new integer at index 0 and prints the array
again.

Example:
  printf '3\n10 20 30\n5\n' | frontinsert --quiet`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		if err := logging.Initialize(logging.Options{
			Level:      cfg.Logging.Level,
			Format:     cfg.Logging.Format,
			Categories: cfg.Logging.Categories,
			Verbose:    verbose,
			Output:     zapcore.AddSync(cmd.ErrOrStderr()),
		}); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = logging.Get(logging.CategoryBoot)
		logger.Debug("configuration loaded",
			zap.String("path", configPath),
			zap.Bool("show_prompts", cfg.Session.ShowPrompts),
			zap.Int("max_count", cfg.Session.MaxCount),
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.Sync()
	},
	RunE: runFrontInsert,
}

// configInitCmd writes a default config file
var configInitCmd = &cobra.Command{
	Use:   "config-init [path]",
	Short: "Write the default configuration to a YAML file",
	Long: `Writes the built-in defaults to path so they can be edited and passed
back with --config. An existing file is never overwritten.

Example:
  frontinsert config-init ./frontinsert.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigInit,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to YAML config file")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not print input prompts")

	rootCmd.AddCommand(configInitCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// runFrontInsert runs one front-insertion session on the command's stdin/stdout.
func runFrontInsert(cmd *cobra.Command, args []string) error {
	s := session.New(session.Options{
		ShowPrompts: cfg.Session.ShowPrompts && !quiet,
		MaxCount:    cfg.Session.MaxCount,
	})

	if _, err := s.Run(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		logger.Error("front insertion failed", zap.Error(err))
		return err
	}
	return nil
}

// runConfigInit saves config.DefaultConfig to args[0].
func runConfigInit(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check config file: %w", err)
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		logger.Error("config init failed", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("config written", zap.String("path", path))
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", path)
	return nil
}
