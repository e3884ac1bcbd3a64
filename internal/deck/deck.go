// Package deck holds the card navigation state machine: which card is
// current, how the cursor skips mastered cards, and when a pass is complete.
package deck

import (
	"github.com/vytor/flashcards/internal/errors"
	"github.com/vytor/flashcards/internal/models"
)

// Deck is an ordered, non-empty set of cards plus a cursor.
// Cards are never removed or reordered; skipping is purely a cursor policy.
type Deck struct {
	cards       []models.Card
	cursor      int
	allMastered bool
}

// New builds a deck from cards in the given order. Every card starts
// unmastered. An empty slice is rejected.
func New(cards []models.Card) (*Deck, error) {
	if len(cards) == 0 {
		return nil, errors.NewEmptyDeckError()
	}
	d := &Deck{cards: make([]models.Card, len(cards))}
	for i, c := range cards {
		d.cards[i] = models.NewCard(c.Question, c.Answer)
	}
	return d, nil
}

// Current returns the card under the cursor.
func (d *Deck) Current() models.Card {
	return d.cards[d.cursor]
}

// Cursor returns the index of the current card.
func (d *Deck) Cursor() int {
	return d.cursor
}

// Len returns the number of cards.
func (d *Deck) Len() int {
	return len(d.cards)
}

// AdvanceToNextUnmastered moves the cursor to the next unmastered card,
// looking after the current position first and then wrapping around to
// the start. When no unmastered card remains, the cursor falls back to 0
// even though that card is mastered; callers check IsAllMastered first.
func (d *Deck) AdvanceToNextUnmastered() {
	n := len(d.cards)
	for step := 1; step <= n; step++ {
		i := (d.cursor + step) % n
		if !d.cards[i].Mastered {
			d.cursor = i
			return
		}
	}
	d.cursor = 0
}

// MarkCurrentMastered flags the current card and refreshes the completion
// flag. The cursor does not move.
func (d *Deck) MarkCurrentMastered() {
	d.cards[d.cursor].Mastered = true
	d.allMastered = d.scanAllMastered()
}

// IsAllMastered reports whether every card was mastered at the last mark.
func (d *Deck) IsAllMastered() bool {
	return d.allMastered
}

// MasteredCount returns how many cards are currently mastered.
func (d *Deck) MasteredCount() int {
	count := 0
	for _, c := range d.cards {
		if c.Mastered {
			count++
		}
	}
	return count
}

// Restart clears every mastery flag. Order and cursor are kept.
func (d *Deck) Restart() {
	for i := range d.cards {
		d.cards[i].Mastered = false
	}
	d.allMastered = false
}

// Cards returns a copy of the deck's cards in order.
func (d *Deck) Cards() []models.Card {
	return append([]models.Card(nil), d.cards...)
}

func (d *Deck) scanAllMastered() bool {
	for _, c := range d.cards {
		if !c.Mastered {
			return false
		}
	}
	return true
}
