// Package layout turns a block of text into centered, word-wrapped lines.
package layout

import "strings"

// centerBias shifts every line left to compensate for the trailing space
// counted in each line's measured width.
const centerBias = 15

// MeasureFunc returns the pixel width of s at the given font size.
type MeasureFunc func(s string, fontSize int) int

// Options controls where and how wide text is laid out.
type Options struct {
	Y             int // top of the first line
	FontSize      int
	MaxWidth      int // a word is only appended while the line stays strictly narrower
	ViewportWidth int // lines are centred against this width
}

// Line is a single draw instruction.
type Line struct {
	Text string
	X    int
	Y    int
}

// LineHeight is the vertical step between consecutive lines.
func LineHeight(fontSize int) int {
	return fontSize * 12 / 10
}

// Wrap greedily packs whitespace-separated words into lines no wider than
// opts.MaxWidth. Each line keeps a trailing space. A word that is wider than
// MaxWidth on its own still gets a line and is never split.
//
// The returned slice is freshly allocated; empty or blank text yields nil.
func Wrap(text string, opts Options, measure MeasureFunc) []Line {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	space := measure(" ", opts.FontSize)
	y := opts.Y

	var (
		lines []Line
		line  strings.Builder
		width int
	)
	flush := func() {
		if line.Len() > 0 {
			lines = append(lines, Line{
				Text: line.String(),
				X:    (opts.ViewportWidth-width)/2 - centerBias,
				Y:    y,
			})
		}
		line.Reset()
	}

	for _, word := range words {
		w := measure(word, opts.FontSize)
		if width+w < opts.MaxWidth {
			line.WriteString(word)
			line.WriteByte(' ')
			width += w + space
			continue
		}
		// An empty line still consumes a row, which keeps over-wide first
		// words one step below opts.Y.
		flush()
		y += LineHeight(opts.FontSize)
		line.WriteString(word)
		line.WriteByte(' ')
		width = w + space
	}
	flush()

	return lines
}

// Height returns the vertical extent of lines, measured from the first
// line's top to the bottom of the last one. It is zero for no lines.
func Height(lines []Line, fontSize int) int {
	if len(lines) == 0 {
		return 0
	}
	return lines[len(lines)-1].Y - lines[0].Y + LineHeight(fontSize)
}
