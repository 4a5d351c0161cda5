package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/meeting-digest/internal/config"
	"github.com/nguyentantai21042004/meeting-digest/internal/errs"
	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
	"github.com/nguyentantai21042004/meeting-digest/internal/pipeline"
	"github.com/nguyentantai21042004/meeting-digest/internal/watcher"
)

func newRootCmd() *cobra.Command {
	var configPath string
	var yes, watch bool

	cmd := &cobra.Command{
		Use:   "digest <directory>",
		Short: "Transcribe and summarize a directory of meeting recordings",
		Long: "Splits long recordings, transcribes every audio file, combines the transcripts,\n" +
			"summarizes each one and writes summary.md grouped by meeting time.",
		Args:          directoryArg,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch && !yes {
				return fmt.Errorf("%w: --watch reruns over existing transcripts and needs --yes", errs.ErrConfiguration)
			}

			cfg, err := config.LoadOrDefault(configPath)
			if err != nil {
				return err
			}
			log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
			a := newApp(cfg, log)
			dir := args[0]

			if watch {
				return runWatch(cmd.Context(), a, cfg, log, dir)
			}
			return runOnce(cmd.Context(), a, dir, yes, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "Config file (defaults are used when it does not exist)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Overwrite existing transcripts without asking")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep running and digest again when new recordings arrive")

	return cmd
}

// directoryArg requires exactly one argument naming an existing directory.
func directoryArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: expected one input directory, got %d arguments", errs.ErrConfiguration, len(args))
	}
	info, err := os.Stat(args[0])
	if err != nil {
		return fmt.Errorf("%w: input directory: %w", errs.ErrConfiguration, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", errs.ErrConfiguration, args[0])
	}
	return nil
}

func runOnce(ctx context.Context, a *app, dir string, yes bool, in io.Reader, out io.Writer) error {
	overwrite := yes
	if !yes {
		exists, err := a.transcriber.HasExisting(dir)
		if err != nil {
			return err
		}
		if exists {
			if !confirm(in, out, fmt.Sprintf("Transcripts already exist in %s. Overwrite them?", dir)) {
				return errs.ErrOverwriteDeclined
			}
			overwrite = true
		}
	}

	result, err := a.pipeline.Run(ctx, dir, pipeline.Options{Overwrite: overwrite})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%d audio files found, %d transcribed.\n", result.Found, result.Transcribed)
	if !result.Digested {
		fmt.Fprintln(out, "Fewer than two transcripts, no digest written.")
		return nil
	}
	for _, path := range result.Artifacts {
		fmt.Fprintf(out, "Wrote %s\n", path)
	}
	return nil
}

func runWatch(ctx context.Context, a *app, cfg *config.Config, log logger.Logger, dir string) error {
	handler := func(ctx context.Context, trigger string) error {
		log.Info(ctx, "Recording %s arrived, digesting %s again", trigger, dir)
		_, err := a.pipeline.Run(logger.WithRunID(ctx), dir, pipeline.Options{Overwrite: true})
		return err
	}

	w, err := watcher.New(dir, handler, log, cfg.Watch.Debounce, cfg.Audio.Accepts)
	if err != nil {
		return err
	}
	defer w.Stop()

	if _, err := a.pipeline.Run(logger.WithRunID(ctx), dir, pipeline.Options{Overwrite: true}); err != nil {
		log.Error(ctx, "Initial run failed: %v", err)
	}

	log.Info(ctx, "Press Ctrl+C to stop")
	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info(ctx, "Meeting digest watcher stopped")
	return nil
}

// confirm asks question on out and reads a y/N answer from in. Anything but yes declines.
func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N] ", question)
	answer, _ := bufio.NewReader(in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
