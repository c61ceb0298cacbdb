package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/philipparndt/gobounds/internal/loader"
	"github.com/philipparndt/gobounds/pkg/analysis"
	"github.com/philipparndt/gobounds/pkg/watcher"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Recompute the bounding box whenever the model changes",
	Long: `Print the bounding box report, then print it again every time the file
changes. For OpenSCAD files every used or included file is watched too.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	filename := args[0]
	w := cmd.OutOrStdout()
	opts := loader.Options{OpenSCAD: cfg.OpenSCAD, Logger: logger}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	analyze := func() ([]string, error) {
		res, err := loader.Load(ctx, filename, opts)
		if err != nil {
			return nil, err
		}
		report, err := analysis.AnalyzeModel(ctx, res.Model, cfg.Workers)
		if err != nil {
			return nil, err
		}
		printReport(w, filename, report)
		return res.Sources, nil
	}

	sources, err := analyze()
	if err != nil {
		return err
	}

	fw, err := watcher.NewFileWatcher(cfg.Debounce, logger)
	if err != nil {
		return err
	}
	defer fw.Close()

	changes := make(chan string, 1)
	notify := func(path string) {
		select {
		case changes <- path:
		default:
		}
	}
	if err := fw.Watch(sources, notify); err != nil {
		return err
	}

	runErr := make(chan error, 1)
	go func() { runErr <- fw.Run(ctx) }()

	logger.Info("watching for changes", "files", len(sources))
	for {
		select {
		case <-ctx.Done():
			return nil

		case err := <-runErr:
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil

		case path := <-changes:
			logger.Info("file changed", "path", path)
			fmt.Fprintln(w)

			updated, err := analyze()
			if err != nil {
				logger.Error("reload failed", "err", err)
				continue
			}
			if !slices.Equal(updated, sources) {
				if err := fw.RemoveAll(); err != nil {
					return err
				}
				if err := fw.Watch(updated, notify); err != nil {
					return err
				}
				sources = updated
			}
		}
	}
}
