// Package window runs a study session in an ebiten window.
package window

import (
	"bytes"
	"context"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vytor/flashcards/internal/logger"
	"github.com/vytor/flashcards/internal/study"
)

// Options are the fixed window parameters.
type Options struct {
	Width     int
	Height    int
	Title     string
	TargetFPS int
}

// Game adapts a study.Controller to ebiten.Game.
type Game struct {
	ctx   context.Context
	ctrl  *study.Controller
	opts  Options
	fonts *fonts
	log   *logger.Logger
}

type fonts struct {
	source *text.GoTextFaceSource
	faces  map[int]*text.GoTextFace
}

func newFonts() (*fonts, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &fonts{source: src, faces: map[int]*text.GoTextFace{}}, nil
}

func (f *fonts) face(size int) *text.GoTextFace {
	if face, ok := f.faces[size]; ok {
		return face
	}
	face := &text.GoTextFace{Source: f.source, Size: float64(size)}
	f.faces[size] = face
	return face
}

// measure rounds the advance up so centring never overshoots.
func (f *fonts) measure(s string, size int) int {
	return int(math.Ceil(text.Advance(s, f.face(size))))
}

// New prepares a Game. Fonts are loaded eagerly so failures surface before
// the window opens.
func New(ctx context.Context, ctrl *study.Controller, opts Options) (*Game, error) {
	f, err := newFonts()
	if err != nil {
		return nil, err
	}
	return &Game{
		ctx:   ctx,
		ctrl:  ctrl,
		opts:  opts,
		fonts: f,
		log:   logger.FromContext(ctx).WithPrefix("window"),
	}, nil
}

// Run opens the window and blocks until the user quits or closes it.
func (g *Game) Run() error {
	ebiten.SetWindowSize(g.opts.Width, g.opts.Height)
	ebiten.SetWindowTitle(g.opts.Title)
	ebiten.SetTPS(g.opts.TargetFPS)

	g.log.Debug("opening %dx%d window at %d tps", g.opts.Width, g.opts.Height, g.opts.TargetFPS)
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		return err
	}
	g.log.Debug("window closed")
	return nil
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if err := g.ctx.Err(); err != nil {
		return ebiten.Termination
	}
	x, y := ebiten.CursorPosition()
	in := study.Input{
		MouseX:   x,
		MouseY:   y,
		Released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		YPressed: inpututil.IsKeyJustPressed(ebiten.KeyY),
		NPressed: inpututil.IsKeyJustPressed(ebiten.KeyN),
	}
	if g.ctrl.HandleInput(g.ctx, in) {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	x, y := ebiten.CursorPosition()
	f := g.ctrl.Scene(g.opts.Width, g.opts.Height, x, y, g.fonts.measure)

	screen.Fill(f.Background)
	for _, op := range f.Text {
		g.drawText(screen, op)
	}
	for _, b := range f.Buttons {
		fillRounded(screen, b)
	}
	if f.Overlay != nil {
		fillRounded(screen, *f.Overlay)
	}
	for _, op := range f.Prompt {
		g.drawText(screen, op)
	}
}

// Layout implements ebiten.Game. The logical screen never scales.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.opts.Width, g.opts.Height
}

func (g *Game) drawText(dst *ebiten.Image, op study.TextOp) {
	o := &text.DrawOptions{}
	o.GeoM.Translate(float64(op.X), float64(op.Y))
	o.ColorScale.ScaleWithColor(op.Color)
	text.Draw(dst, op.Text, g.fonts.face(op.FontSize), o)
}

// fillRounded draws a filled rectangle whose corner radius is
// Roundness * min(width, height) / 2.
func fillRounded(dst *ebiten.Image, op study.RectOp) {
	r := op.Rect
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height)
	radius := float32(op.Roundness) * min(w, h) / 2
	if radius <= 0 {
		vector.DrawFilledRect(dst, x, y, w, h, op.Color, false)
		return
	}

	vector.DrawFilledRect(dst, x+radius, y, w-2*radius, h, op.Color, true)
	vector.DrawFilledRect(dst, x, y+radius, w, h-2*radius, op.Color, true)
	for _, c := range [][2]float32{
		{x + radius, y + radius},
		{x + w - radius, y + radius},
		{x + radius, y + h - radius},
		{x + w - radius, y + h - radius},
	} {
		vector.DrawFilledCircle(dst, c[0], c[1], radius, op.Color, true)
	}
}
