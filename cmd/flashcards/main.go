package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/vytor/flashcards/internal/app"
	"github.com/vytor/flashcards/internal/cli"
	"github.com/vytor/flashcards/internal/config"
	"github.com/vytor/flashcards/internal/errors"
	"github.com/vytor/flashcards/internal/logger"
	"github.com/vytor/flashcards/internal/study"
	"github.com/vytor/flashcards/internal/window"
)

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logger.NewContext(ctx, log)

	run := func(ctx context.Context, paths []string) error {
		cfg := cfg.WithFiles(paths)
		log.Debug("files=%v", cfg.FilePaths)
		log.Debug("window=%dx%d title=%q fps=%d", cfg.Width, cfg.Height, cfg.Title, cfg.TargetFPS)
		log.Debug("journal_path=%s", cfg.JournalPath)

		return app.Run(ctx, cfg, func(ctx context.Context, ctrl *study.Controller) error {
			g, err := window.New(ctx, ctrl, window.Options{
				Width:     cfg.Width,
				Height:    cfg.Height,
				Title:     cfg.Title,
				TargetFPS: cfg.TargetFPS,
			})
			if err != nil {
				return err
			}
			return g.Run()
		})
	}

	if err := cli.Execute(ctx, run, os.Args[1:]); err != nil {
		log.Error("%v", err)
		stop()
		os.Exit(errors.ExitCode(err))
	}
}
