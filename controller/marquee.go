package controller

import (
	"marquee/device"
	m "marquee/model"
	"marquee/scroll"
)

type Palette struct {
	Background device.Color
	Foreground device.Color
}

// Marquee owns the scrolling lines and the placements of the last frame.
type Marquee struct {
	lines      m.Sequence
	engine     *scroll.Engine
	palette    Palette
	placements []m.Placement
}

func NewMarquee(lines m.Sequence, engine *scroll.Engine, palette Palette) *Marquee {
	return &Marquee{lines: lines, engine: engine, palette: palette}
}

// Step advances the marquee by exactly one frame.
func (q *Marquee) Step(width, height float64) {
	q.placements = q.engine.Advance(q.lines, width, height)
}

// Draw renders the placements computed by the last Step.
func (q *Marquee) Draw(dev device.Device) error {
	dev.Clear(q.palette.Background)
	for i, placement := range q.placements {
		if placement.Visible {
			dev.Text(q.lines[i].Text, placement.X, placement.Y, q.palette.Foreground)
		}
	}
	return dev.Show()
}

func (q *Marquee) Frame(dev device.Device) error {
	q.Step(dev.Size())
	return q.Draw(dev)
}

func (q *Marquee) Restart() {
	scroll.Reset(q.lines)
	q.placements = nil
}

func (q *Marquee) Lines() m.Sequence {
	return q.lines
}

func (q *Marquee) Placements() []m.Placement {
	return q.placements
}
