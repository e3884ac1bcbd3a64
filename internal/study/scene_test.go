package study_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/flashcards/internal/deck"
	"github.com/vytor/flashcards/internal/models"
	"github.com/vytor/flashcards/internal/study"
)

func charMeasure(s string, size int) int {
	return len(s) * size / 2
}

func TestScene_QuestionOnly(t *testing.T) {
	c := newController(t, 2)

	f := c.Scene(1000, 400, 0, 0, charMeasure)

	assert.Equal(t, 1000, f.Width)
	assert.Equal(t, study.Background, f.Background)
	require.Len(t, f.Text, 1)
	assert.Equal(t, "Q0 ", f.Text[0].Text)
	assert.Equal(t, study.QuestionY, f.Text[0].Y)
	assert.Equal(t, study.FontSize, f.Text[0].FontSize)
	assert.Nil(t, f.Overlay)
	assert.Empty(t, f.Prompt)
}

func TestScene_RevealedAnswer(t *testing.T) {
	c := newController(t, 2)
	c.Apply(context.Background(), models.ActionReveal)

	f := c.Scene(1000, 400, 0, 0, charMeasure)

	require.Len(t, f.Text, 2)
	assert.Equal(t, "A0 ", f.Text[1].Text)
	assert.Equal(t, study.AnswerY, f.Text[1].Y)
}

func TestScene_WrapsWithinMargin(t *testing.T) {
	// 60 four-letter words at 10px per char is far wider than 920px.
	question := ""
	for i := 0; i < 60; i++ {
		question += "word "
	}
	d, err := deck.New([]models.Card{models.NewCard(question, "a")})
	require.NoError(t, err)
	c := study.NewController(d)

	f := c.Scene(1000, 400, 0, 0, charMeasure)

	require.Greater(t, len(f.Text), 1)
	for _, op := range f.Text {
		assert.Less(t, charMeasure(op.Text, op.FontSize), 1000)
	}
}

func TestScene_HoverColors(t *testing.T) {
	c := newController(t, 1)
	r := c.Regions()

	idle := c.Scene(1000, 400, 0, 0, charMeasure)
	require.Len(t, idle.Buttons, 3)
	assert.Equal(t, study.SkipColor, idle.Buttons[0].Color)
	assert.Equal(t, study.RevealColor, idle.Buttons[1].Color)
	assert.Equal(t, study.MarkColor, idle.Buttons[2].Color)

	hover := c.Scene(1000, 400, int(r.Reveal.X)+1, int(r.Reveal.Y)+1, charMeasure)
	assert.Equal(t, study.SkipColor, hover.Buttons[0].Color)
	assert.Equal(t, study.RevealHoverColor, hover.Buttons[1].Color)
	assert.Equal(t, study.MarkColor, hover.Buttons[2].Color)
	assert.Equal(t, r.Reveal, hover.Buttons[1].Rect)
	assert.Equal(t, study.Roundness, hover.Buttons[1].Roundness)
}

func TestScene_CompletionPrompt(t *testing.T) {
	c := newController(t, 1)
	c.Apply(context.Background(), models.ActionMarkMastered)

	f := c.Scene(1000, 400, 0, 0, charMeasure)

	require.NotNil(t, f.Overlay)
	assert.Equal(t, study.Rect{Width: 1000, Height: 400}, f.Overlay.Rect)
	require.Len(t, f.Prompt, 1)
	assert.Equal(t, study.Prompt, f.Prompt[0].Text)
	assert.Equal(t, (1000-charMeasure(study.Prompt, 30))/2, f.Prompt[0].X)
	assert.Equal(t, study.PromptY, f.Prompt[0].Y)
	assert.Equal(t, study.PromptText, f.Prompt[0].Color)
}
