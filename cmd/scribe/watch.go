package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/swift-scribe/internal/processor"
	"github.com/nguyentantai21042004/swift-scribe/internal/watcher"
)

func newWatchCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the inbox folder and write a note for every text or audio file dropped in it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(*configPath, true)
			if err != nil {
				return err
			}
			paths := a.cfg.Paths
			if err := ensureDirectories(paths.Input, paths.Output, paths.Archived, paths.Temp); err != nil {
				return err
			}

			tr, err := a.transcriber()
			if err != nil {
				return err
			}
			proc := processor.New(a.cfg, afero.NewOsFs(), a.summarizer(), tr, a.logger)

			w, err := watcher.New(paths.Input, proc.Process, proc.Supports, a.logger, a.cfg.Performance.MaxConcurrent)
			if err != nil {
				return err
			}
			defer w.Stop()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a.logStartup(ctx, "inbox")
			a.logger.Info(ctx, "Monitoring: %s", paths.Input)
			a.logger.Info(ctx, "Output: %s", paths.Output)
			a.logger.Info(ctx, "Press Ctrl+C to stop")

			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			a.logger.Info(context.Background(), "Watcher stopped")
			return nil
		},
	}
}
