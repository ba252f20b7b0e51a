package text

import (
	"math"
	"strings"

	m "marquee/model"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/ansi"
	"golang.org/x/image/font"
	"golang.org/x/text/unicode/norm"
)

type Measurer interface {
	Measure(s string) (width, height float64)
}

// Split breaks text into trimmed lines. Empty lines are kept.
func Split(text string) []string {
	text = norm.NFC.String(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}

// Layout measures every fragment and returns the sequence to scroll.
func Layout(fragments []string, measurer Measurer) m.Sequence {
	lines := make(m.Sequence, len(fragments))
	for i, fragment := range fragments {
		var width, height float64
		if fragment != "" {
			width, height = measurer.Measure(fragment)
		}
		lines[i] = m.NewLine(fragment, math.Max(width, 0), math.Max(height, 0))
	}
	return lines
}

// Cells measures text in terminal cells, one row per line.
type Cells struct{}

func (Cells) Measure(s string) (float64, float64) {
	if s == "" {
		return 0, 0
	}
	return float64(ansi.PrintableRuneWidth(s)), 1
}

// RuneCells is the number of cells a single rune occupies on a terminal.
func RuneCells(r rune) int {
	return runewidth.RuneWidth(r)
}

// Face measures text in pixels as rendered with an anti-aliased font face.
type Face struct {
	font.Face
}

func (f Face) Measure(s string) (float64, float64) {
	if s == "" {
		return 0, 0
	}
	advance := font.MeasureString(f.Face, s)
	height := f.Face.Metrics().Height
	return float64(advance.Ceil()), float64(height.Ceil())
}
