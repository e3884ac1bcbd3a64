package study

import "github.com/vytor/flashcards/internal/models"

// Rect is an axis-aligned rectangle in window pixels.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// Regions is the geometry of the three action buttons.
type Regions struct {
	Skip   Rect
	Reveal Rect
	Mark   Rect
}

// DefaultRegions lays the buttons out along the bottom of a 1000x400 window.
func DefaultRegions() Regions {
	return Regions{
		Skip:   Rect{X: 150, Y: 350, Width: 100, Height: 35},
		Reveal: Rect{X: 425, Y: 350, Width: 150, Height: 35},
		Mark:   Rect{X: 750, Y: 350, Width: 100, Height: 35},
	}
}

// HitTest returns the action of the button under (x, y), or ActionNone.
func (r Regions) HitTest(x, y int) models.Action {
	fx, fy := float64(x), float64(y)
	switch {
	case r.Skip.Contains(fx, fy):
		return models.ActionSkip
	case r.Reveal.Contains(fx, fy):
		return models.ActionReveal
	case r.Mark.Contains(fx, fy):
		return models.ActionMarkMastered
	}
	return models.ActionNone
}
