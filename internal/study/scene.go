package study

import (
	"image/color"

	"github.com/vytor/flashcards/internal/layout"
)

// Text placement for a card.
const (
	FontSize       = 20
	QuestionY      = 40
	AnswerY        = 80
	TextMargin     = 80
	PromptFontSize = 30
	PromptY        = 200
	Prompt         = "All questions answered, again? [Y/N]"
	// Roundness is the corner radius as a fraction of the button's shorter side.
	Roundness = 0.85
)

// Palette. Hover variants are darker versions of the resting colour.
var (
	Background = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	TextColor  = color.RGBA{A: 255}
	Overlay    = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	PromptText = color.RGBA{R: 230, G: 41, B: 55, A: 255}

	SkipColor        = color.RGBA{R: 230, G: 41, B: 55, A: 255}
	SkipHoverColor   = color.RGBA{R: 139, A: 255}
	RevealColor      = color.RGBA{G: 121, B: 241, A: 255}
	RevealHoverColor = color.RGBA{G: 82, B: 172, A: 255}
	MarkColor        = color.RGBA{G: 228, B: 48, A: 255}
	MarkHoverColor   = color.RGBA{G: 117, B: 44, A: 255}
)

// TextOp draws one line of text with its top-left corner at (X, Y).
type TextOp struct {
	Text     string
	X, Y     int
	FontSize int
	Color    color.RGBA
}

// RectOp fills a rounded rectangle.
type RectOp struct {
	Rect      Rect
	Roundness float64
	Color     color.RGBA
}

// Frame is everything the window draws for one tick, in painter's order:
// background, card text, buttons, then the overlay and its prompt.
type Frame struct {
	Width, Height int
	Background    color.RGBA
	Text          []TextOp
	Buttons       []RectOp
	Overlay       *RectOp
	Prompt        []TextOp
}

// Scene builds the frame for the current state. measure must be the same
// metric the window draws with, otherwise centring drifts.
func (c *Controller) Scene(width, height, mouseX, mouseY int, measure layout.MeasureFunc) Frame {
	f := Frame{Width: width, Height: height, Background: Background}

	card := c.deck.Current()
	maxWidth := width - TextMargin
	f.Text = append(f.Text, textOps(layout.Wrap(card.Question, layout.Options{
		Y: QuestionY, FontSize: FontSize, MaxWidth: maxWidth, ViewportWidth: width,
	}, measure), FontSize, TextColor)...)
	if c.revealed {
		f.Text = append(f.Text, textOps(layout.Wrap(card.Answer, layout.Options{
			Y: AnswerY, FontSize: FontSize, MaxWidth: maxWidth, ViewportWidth: width,
		}, measure), FontSize, TextColor)...)
	}

	mx, my := float64(mouseX), float64(mouseY)
	button := func(r Rect, rest, hover color.RGBA) RectOp {
		clr := rest
		if r.Contains(mx, my) {
			clr = hover
		}
		return RectOp{Rect: r, Roundness: Roundness, Color: clr}
	}
	f.Buttons = []RectOp{
		button(c.regions.Skip, SkipColor, SkipHoverColor),
		button(c.regions.Reveal, RevealColor, RevealHoverColor),
		button(c.regions.Mark, MarkColor, MarkHoverColor),
	}

	if c.Completed() {
		f.Overlay = &RectOp{
			Rect:  Rect{Width: float64(width), Height: float64(height)},
			Color: Overlay,
		}
		f.Prompt = []TextOp{{
			Text:     Prompt,
			X:        (width - measure(Prompt, PromptFontSize)) / 2,
			Y:        PromptY,
			FontSize: PromptFontSize,
			Color:    PromptText,
		}}
	}
	return f
}

func textOps(lines []layout.Line, size int, clr color.RGBA) []TextOp {
	ops := make([]TextOp, 0, len(lines))
	for _, l := range lines {
		ops = append(ops, TextOp{Text: l.Text, X: l.X, Y: l.Y, FontSize: size, Color: clr})
	}
	return ops
}
