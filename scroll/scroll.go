// Package scroll advances a marquee of text lines by one frame at a time.
//
// Lines enter from below the viewport one after another, move up by Speed
// every frame and stop moving once their bottom edge crossed the top of the
// viewport. When the last line of the sequence is gone, every line starts
// over from below the viewport.
package scroll

import (
	"math"

	m "marquee/model"
)

const DefaultSpeed = 1.0

type Engine struct {
	Speed float64
}

func New(speed float64) *Engine {
	if speed <= 0 || math.IsNaN(speed) || math.IsInf(speed, 0) {
		speed = DefaultSpeed
	}
	return &Engine{Speed: speed}
}

// Advance moves every line of the sequence by one frame and returns where
// each line has to be drawn for that frame.
//
// Lines are processed in order in a single pass: a line that has not been
// placed yet is stacked right below its predecessor's offset as updated in
// this same pass, unless the predecessor sits at or above the top of the
// viewport, in which case it starts at the bottom edge.
//
// An empty sequence or a viewport without height is a no-op frame.
func (e *Engine) Advance(lines m.Sequence, width, height float64) []m.Placement {
	if len(lines) == 0 {
		return nil
	}
	placements := make([]m.Placement, len(lines))
	if height <= 0 {
		return placements
	}

	prevOffset, prevHeight := 0.0, 0.0
	for i := range lines {
		line := &lines[i]
		visible := true

		switch {
		case line.Offset.Phase == m.NotStarted:
			y := height
			if prevOffset > 0 {
				y = prevOffset + prevHeight
			}
			line.Offset = m.ActiveAt(y)

		case line.Offset.Phase == m.Exited || line.Gone():
			line.Offset = m.ExitedAt(line.Offset.Y)
			visible = false

		default:
			line.Offset.Y -= e.Speed
		}

		if visible {
			placements[i] = m.Placement{
				Visible: true,
				X:       width/2 - line.Width/2,
				Y:       line.Offset.Y,
			}
		}
		prevOffset, prevHeight = line.Offset.Y, line.Height
	}

	// Only the last line decides when the marquee starts over.
	if last := &lines[len(lines)-1]; last.Gone() {
		Reset(lines)
	}
	return placements
}

// Reset schedules every line to enter the viewport again.
func Reset(lines m.Sequence) {
	for i := range lines {
		lines[i].Offset = m.Offset{}
	}
}

// Cycle returns the number of frames one full pass of the sequence takes in
// a viewport of the given height, counting the frame that restarts it.
// It returns 0 when the sequence never restarts: no lines, no height, or a
// speed too small to move any offset at that height.
func (e *Engine) Cycle(lines m.Sequence, height float64) int {
	if len(lines) == 0 || height <= 0 {
		return 0
	}
	scratch := make(m.Sequence, len(lines))
	for i := range lines {
		scratch[i] = m.NewLine(lines[i].Text, lines[i].Width, lines[i].Height)
	}
	prev := make([]m.Offset, len(lines))
	for frames := 1; ; frames++ {
		for i := range scratch {
			prev[i] = scratch[i].Offset
		}
		e.Advance(scratch, 0, height)
		if !scratch[0].Offset.Placed() {
			return frames
		}
		if !moved(prev, scratch) {
			return 0
		}
	}
}

func moved(prev []m.Offset, lines m.Sequence) bool {
	for i := range lines {
		if lines[i].Offset != prev[i] {
			return true
		}
	}
	return false
}
