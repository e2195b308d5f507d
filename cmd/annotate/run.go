package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"imgannotate/pkg/annotator"
	"imgannotate/pkg/config"
	"imgannotate/pkg/display"
	"imgannotate/pkg/imageset"
	"imgannotate/pkg/ledger"
	"imgannotate/pkg/logger"
	"imgannotate/pkg/ui"
)

func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile, flagOverrides(cmd))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := logger.Initialize(&cfg.Logging); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	// Every log line of this run carries the same session id
	log := logger.GetLogger().WithField("session_id", uuid.NewString())
	logger.SetLogger(log)

	images, err := imageset.Load(cfg.Dataset.Directory)
	if err != nil {
		return err
	}
	log.WithFields(map[string]interface{}{
		"dataset": cfg.Dataset.Directory,
		"images":  images.Len(),
	}).Info("Dataset loaded")

	lg := ledger.New(cfg.Ledger.Path)
	if cfg.Ledger.Lock {
		release, err := lg.Lock()
		if err != nil {
			return err
		}
		defer func() {
			if err := release(); err != nil {
				log.WithError(err).Warn("Failed to release ledger lock")
			}
		}()
	}

	viewer, err := display.New(cfg.Display)
	if err != nil {
		return err
	}
	defer viewer.Close()

	console := ui.NewConsole(os.Stdin, os.Stdout)
	ui.PrintBanner(os.Stdout)
	ui.PrintInfo("Dataset", fmt.Sprintf("%s (%d images)", cfg.Dataset.Directory, images.Len()))
	ui.PrintInfo("Ledger", lg.Path())

	ctx := cmd.Context()
	session, err := annotator.StartSession(ctx, lg, console, log)
	if err != nil {
		return err
	}
	logger.LogSessionStart(lg.Path(), session.Cursor, session.Fresh)

	outcome, err := annotator.New(images, lg, console, viewer).Run(ctx, session.Cursor)
	if err != nil {
		return err
	}

	if outcome.Quit {
		logger.LogSessionEnd(outcome.Annotated, true, "quit")
	} else {
		logger.LogSessionEnd(outcome.Annotated, false, "dataset exhausted")
	}
	reportOutcome(os.Stdout, ui.NewNotifier(os.Stdout, cfg.Notifications.Enabled), outcome, cfg.Notifications.OnComplete)
	return nil
}

// reportOutcome prints how the session ended. Only an exhausted dataset
// goes through the notifier, and only when onComplete is set.
func reportOutcome(out io.Writer, notifier *ui.Notifier, outcome *annotator.Outcome, onComplete bool) {
	if outcome.Quit {
		fmt.Fprintf(out, "\nSession saved: %d annotated this session, last image id %d\n",
			outcome.Annotated, outcome.LastIndex)
		return
	}
	if onComplete {
		notifier.SendSuccess("Annotation complete",
			fmt.Sprintf("%d annotated this session, %d images in dataset", outcome.Annotated, outcome.Total))
		return
	}
	fmt.Fprintf(out, "\nAnnotation complete: %d annotated this session\n", outcome.Annotated)
}
