package model

import (
	"fmt"
)

type Phase int

const (
	NotStarted Phase = iota
	Active
	Exited
)

// Offset is the vertical screen coordinate of a line together with its
// scrolling phase. Y is meaningless while the phase is NotStarted.
type Offset struct {
	Phase Phase
	Y     float64
}

func ActiveAt(y float64) Offset { return Offset{Phase: Active, Y: y} }
func ExitedAt(y float64) Offset { return Offset{Phase: Exited, Y: y} }

func (o Offset) Placed() bool {
	return o.Phase != NotStarted
}

type Line struct {
	Text   string
	Width  float64
	Height float64
	Offset Offset
}

func NewLine(text string, width, height float64) Line {
	return Line{Text: text, Width: width, Height: height}
}

// Gone reports whether the bottom edge of a placed line is at or above the
// top of the viewport.
func (l *Line) Gone() bool {
	return l.Offset.Placed() && l.Offset.Y <= -l.Height
}

type Sequence []Line

type Placement struct {
	Visible bool
	X, Y    float64
}

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "NotStarted"
	case Active:
		return "Active"
	case Exited:
		return "Exited"
	}
	return "UNKNOWN PHASE"
}

func (o Offset) String() string {
	if o.Phase == NotStarted {
		return "NotStarted"
	}
	return fmt.Sprintf("%s(%g)", o.Phase, o.Y)
}

func (l Line) String() string {
	return fmt.Sprintf("Line{Text: %q, Width: %g, Height: %g, Offset: %s}", l.Text, l.Width, l.Height, l.Offset)
}

func (p Placement) String() string {
	if !p.Visible {
		return "Hidden"
	}
	return fmt.Sprintf("Placement{X: %g, Y: %g}", p.X, p.Y)
}
