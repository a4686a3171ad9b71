package main

import (
	"errors"
	"fmt"
	"os"

	"brandlint/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	cfgPath    string
	verbose    bool
	quiet      bool
	failOnWarn bool

	// Logger, replaced in PersistentPreRunE. The nop default keeps helper
	// functions callable from tests.
	logger = zap.NewNop()
)

// errValidationFailed marks runs that found misconfigurations, as opposed
// to setup failures. main maps it to exit code 1, everything else to 2.
var errValidationFailed = errors.New("validation failed")

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "brandlint",
	Short: "Validate event branding assets",
	Long: `brandlint checks an events directory tree against the layout the
branding bot expects: every event directory carries a meta.md with YAML
front matter, a non-empty description, and banner and server-icon assets,
and the calendar holds exactly one fallback event with no overlapping
windows.

Run without arguments to validate the configured events root.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load .env: %w", err)
		}

		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runValidate,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultFile, "Path to the brandlint config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "Print the report only when validation fails")
	rootCmd.PersistentFlags().BoolVar(&failOnWarn, "fail-on-warn", false, "Exit non-zero when warnings are present")

	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errValidationFailed) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "brandlint:", err)
		os.Exit(2)
	}
}

// loadConfig resolves the effective configuration for a command: config
// file, environment, then any root argument and flags on top.
func loadConfig(args []string) (config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return config.Config{}, err
	}
	if len(args) > 0 {
		cfg.Root = args[0]
	}
	if failOnWarn {
		cfg.FailOnWarn = true
	}
	return cfg, nil
}

// stdoutIsTerminal gates colored output.
func stdoutIsTerminal() bool {
	fi, err := os.Stdout.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
