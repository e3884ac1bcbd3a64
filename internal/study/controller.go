// Package study drives a session: it owns the deck, the reveal flag and the
// completion prompt, and turns per-frame input into deck operations.
package study

import (
	"context"

	"github.com/vytor/flashcards/internal/deck"
	"github.com/vytor/flashcards/internal/journal"
	"github.com/vytor/flashcards/internal/logger"
	"github.com/vytor/flashcards/internal/models"
)

// Recorder receives every action the controller applies.
type Recorder interface {
	Record(ctx context.Context, ev journal.Event) error
}

type nopRecorder struct{}

func (nopRecorder) Record(context.Context, journal.Event) error { return nil }

// Input is the per-frame input snapshot from the window.
type Input struct {
	MouseX, MouseY int
	Released       bool // left mouse button released this frame
	YPressed       bool
	NPressed       bool
}

// Controller is the single owner of session state.
type Controller struct {
	deck     *deck.Deck
	regions  Regions
	recorder Recorder
	revealed bool
	quit     bool
	log      *logger.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithRecorder sends applied actions to r.
func WithRecorder(r Recorder) Option {
	return func(c *Controller) {
		if r != nil {
			c.recorder = r
		}
	}
}

// WithRegions overrides the button geometry.
func WithRegions(r Regions) Option {
	return func(c *Controller) {
		c.regions = r
	}
}

// NewController wraps d. The controller takes exclusive ownership of it.
func NewController(d *deck.Deck, opts ...Option) *Controller {
	c := &Controller{
		deck:     d,
		regions:  DefaultRegions(),
		recorder: nopRecorder{},
		log:      logger.Default().WithPrefix("study"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Deck exposes the underlying deck for read-only inspection.
func (c *Controller) Deck() *deck.Deck { return c.deck }

// Regions returns the button geometry used for hit testing.
func (c *Controller) Regions() Regions { return c.regions }

// Revealed reports whether the answer is shown.
func (c *Controller) Revealed() bool { return c.revealed }

// Completed reports whether the completion prompt is active.
func (c *Controller) Completed() bool { return c.deck.IsAllMastered() }

// Quit reports whether the user asked to leave.
func (c *Controller) Quit() bool { return c.quit }

// HandleInput maps one frame of input to at most one action and applies it.
// It reports whether the loop should stop.
func (c *Controller) HandleInput(ctx context.Context, in Input) bool {
	if a := c.actionFor(in); a != models.ActionNone {
		c.Apply(ctx, a)
	}
	return c.quit
}

func (c *Controller) actionFor(in Input) models.Action {
	if c.Completed() {
		switch {
		case in.YPressed:
			return models.ActionRestart
		case in.NPressed:
			return models.ActionQuit
		}
		return models.ActionNone
	}
	if in.Released {
		return c.regions.HitTest(in.MouseX, in.MouseY)
	}
	return models.ActionNone
}

// Apply performs a, returning false when a is not valid in the current state.
// While the completion prompt is up only restart and quit are accepted.
func (c *Controller) Apply(ctx context.Context, a models.Action) bool {
	if c.quit {
		return false
	}
	completed := c.Completed()
	if completed != (a == models.ActionRestart || a == models.ActionQuit) {
		return false
	}

	index, question := c.deck.Cursor(), c.deck.Current().Question

	switch a {
	case models.ActionReveal:
		c.revealed = true
	case models.ActionSkip:
		c.deck.AdvanceToNextUnmastered()
		c.revealed = false
	case models.ActionMarkMastered:
		c.deck.MarkCurrentMastered()
		c.deck.AdvanceToNextUnmastered()
		c.revealed = false
		if c.deck.IsAllMastered() {
			c.log.Info("all %d cards mastered", c.deck.Len())
		}
	case models.ActionRestart:
		c.deck.Restart()
		c.log.Info("session restarted")
	case models.ActionQuit:
		c.quit = true
	default:
		return false
	}

	c.log.Debug("applied %s: card=%d, cursor=%d, mastered=%d/%d", a, index, c.deck.Cursor(), c.deck.MasteredCount(), c.deck.Len())
	if err := c.recorder.Record(ctx, journal.Event{Action: a, CardIndex: index, Question: question}); err != nil {
		// Journal failures never interrupt studying.
		c.log.Warn("failed to record %s: %v", a, err)
	}
	return true
}
