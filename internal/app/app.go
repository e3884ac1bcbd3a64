// Package app wires configuration, deck loading, the journal and a
// presenter into one study run.
package app

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/vytor/flashcards/internal/config"
	"github.com/vytor/flashcards/internal/deck"
	"github.com/vytor/flashcards/internal/errors"
	"github.com/vytor/flashcards/internal/journal"
	"github.com/vytor/flashcards/internal/logger"
	"github.com/vytor/flashcards/internal/models"
	"github.com/vytor/flashcards/internal/source"
	"github.com/vytor/flashcards/internal/study"
)

// Presenter shows the session to the user until it ends.
type Presenter func(ctx context.Context, ctrl *study.Controller) error

// Run validates cfg, loads the deck and hands a controller to present.
func Run(ctx context.Context, cfg config.Config, present Presenter) error {
	log := logger.FromContext(ctx).WithPrefix("app")

	if err := cfg.Validate(); err != nil {
		return errors.NewConfigError("invalid configuration", err)
	}

	cards, err := source.Load(ctx, cfg.FilePaths)
	if err != nil {
		return err
	}
	d, err := deck.New(cards)
	if err != nil {
		return err
	}
	log.Info("deck ready: %d cards from %d files", d.Len(), len(cfg.FilePaths))

	opts := []study.Option{}
	var j *journal.Journal
	if cfg.JournalPath != "" {
		j, err = journal.Open(ctx, cfg.JournalPath, d.Len())
		if err != nil {
			// The journal is optional; studying works without it.
			log.Warn("journal disabled: %v", err)
		} else {
			defer func() {
				if err := j.Close(); err != nil {
					log.Warn("failed to close journal: %v", err)
				}
			}()
			opts = append(opts, study.WithRecorder(j))
		}
	}

	ctrl := study.NewController(d, opts...)
	if err := present(ctx, ctrl); err != nil {
		return errors.NewInternalError(err)
	}
	log.Info("session ended: %d/%d cards mastered", d.MasteredCount(), d.Len())

	if j != nil {
		summary, err := j.Summary(ctx)
		if err != nil {
			log.Warn("failed to summarise session: %v", err)
			return nil
		}
		log.Info("journal session %s: %s", j.SessionID(), FormatSummary(summary))
	}
	return nil
}

// FormatSummary renders counts as "action=n" pairs sorted by action name.
func FormatSummary(counts map[models.Action]int) string {
	parts := make([]string, 0, len(counts))
	for k, n := range counts {
		parts = append(parts, fmt.Sprintf("%s=%d", k, n))
	}
	sort.Strings(parts)
	if len(parts) == 0 {
		return "no actions"
	}
	return strings.Join(parts, " ")
}
