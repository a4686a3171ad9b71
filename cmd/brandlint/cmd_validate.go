package main

import (
	"fmt"
	"io"

	"brandlint/internal/config"
	"brandlint/internal/event"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// validateCmd runs the two-stage validation pipeline once
var validateCmd = &cobra.Command{
	Use:   "validate [root]",
	Short: "Validate the events tree and print the report",
	Long: `Runs both validation stages over the events root:

  1. Per-event: meta.md presence and front matter, description length,
     banner and server-icon assets. All problems in an event are reported
     together.
  2. Cross-event: exactly one fallback event, no overlapping windows.
     Skipped while any event fails stage one.

Exit codes: 0 on success, 1 on violations, 2 on setup failure.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	return validateOnce(cfg, cmd.OutOrStdout(), stdoutIsTerminal())
}

// validateOnce runs the pipeline and prints the report. It returns
// errValidationFailed when the run should exit non-zero.
func validateOnce(cfg config.Config, out io.Writer, styled bool) error {
	res, err := event.ValidateTree(cfg.Root, optionsFrom(cfg))
	if err != nil {
		return err
	}

	rep := res.Report
	errs, warns := rep.Counts()
	logger.Debug("validation run complete",
		zap.String("run_id", rep.RunID),
		zap.String("root", cfg.Root),
		zap.Int("events", len(rep.Events())),
		zap.Int("errors", errs),
		zap.Int("warnings", warns))

	failed := rep.Failed(cfg.FailOnWarn)
	if !quiet || failed {
		fmt.Fprint(out, rep.Render(styled))
	}
	if failed {
		return errValidationFailed
	}
	return nil
}

func optionsFrom(cfg config.Config) event.Options {
	return event.Options{
		MetaFile:         cfg.MetaFile,
		BannersDir:       cfg.BannersDir,
		IconsDir:         cfg.IconsDir,
		DescriptionLimit: cfg.DescriptionLimit,
		Ignore:           cfg.Ignore,
	}
}
