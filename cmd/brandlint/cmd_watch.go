package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"brandlint/internal/watch"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// watchCmd keeps validating while an author edits the tree locally
var watchCmd = &cobra.Command{
	Use:   "watch [root]",
	Short: "Re-run validation whenever the events tree changes",
	Long: `Watches the events root and re-runs the full validation pipeline
after each settled burst of filesystem changes. Intended for local
authoring; CI should use 'validate'. Stop with Ctrl-C.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	styled := stdoutIsTerminal()
	runOnce := func() {
		if err := validateOnce(cfg, out, styled); err != nil && !errors.Is(err, errValidationFailed) {
			logger.Warn("validation run failed", zap.Error(err))
		}
	}

	w, err := watch.New(cfg.Root, watch.DefaultDebounce, logger, runOnce)
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		return err
	}
	defer w.Stop()

	// Initial pass so the author sees the current state immediately.
	runOnce()
	fmt.Fprintf(out, "Watching %s (Ctrl-C to stop)\n", cfg.Root)

	<-ctx.Done()
	return nil
}
