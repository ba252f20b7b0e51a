package tcell

import (
	"context"
	"log/slog"
	"math"
	"os"

	"marquee/device"
	"marquee/lifecycle"
	m "marquee/model"
	"marquee/stream"
	"marquee/text"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
)

type tcellDevice struct {
	screen tcell.Screen
	events *stream.Stream[m.Event]
	lc     *lifecycle.Lifecycle
	output *termenv.Output
	fg, bg termenv.Color
	style  tcell.Style
}

// NewDevice opens the terminal and starts forwarding its input to events.
func NewDevice(ctx context.Context, title string, events *stream.Stream[m.Event]) (*tcellDevice, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "opening terminal")
	}

	output := termenv.NewOutput(os.Stdout)
	fg := output.ForegroundColor()
	bg := output.BackgroundColor()
	output.SetWindowTitle(title)

	d, err := newDevice(ctx, screen, events)
	if err != nil {
		return nil, err
	}
	d.output, d.fg, d.bg = output, fg, bg
	return d, nil
}

func newDevice(ctx context.Context, screen tcell.Screen, events *stream.Stream[m.Event]) (*tcellDevice, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "initializing terminal")
	}
	screen.HideCursor()

	d := &tcellDevice{
		screen: screen,
		events: events,
		lc:     lifecycle.New(ctx),
		style:  tcell.StyleDefault,
	}
	d.lc.Go(d.pollEvents)
	return d, nil
}

func (d *tcellDevice) pollEvents(_ context.Context) {
	for !d.lc.ShouldStop() {
		event := d.screen.PollEvent()
		if event == nil {
			return
		}
		if event := d.handleEvent(event); event != nil {
			d.events.Push(event)
		}
	}
}

func (d *tcellDevice) handleEvent(event tcell.Event) m.Event {
	switch tcellEvent := event.(type) {
	case *tcell.EventResize:
		d.screen.Sync()
		w, h := tcellEvent.Size()
		return m.ScreenSize{Width: w, Height: h}

	case *tcell.EventKey:
		return handleKeyEvent(tcellEvent)
	}
	return nil
}

func handleKeyEvent(key *tcell.EventKey) m.Event {
	slog.Debug("key", "name", key.Name(), "rune", string(key.Rune()))
	switch key.Name() {
	case "Ctrl+C", "Esc", "Rune[q]", "Rune[Q]":
		return m.Quit{}

	case "Rune[ ]":
		return m.TogglePause{}

	case "Rune[r]", "Rune[R]":
		return m.Restart{}
	}
	return nil
}

func (d *tcellDevice) Size() (float64, float64) {
	w, h := d.screen.Size()
	return float64(w), float64(h)
}

func (d *tcellDevice) Clear(bg device.Color) {
	d.style = tcell.StyleDefault.Background(color(bg))
	d.screen.SetStyle(d.style)
	d.screen.Clear()
}

func (d *tcellDevice) Text(str string, x, y float64, fg device.Color) {
	width, height := d.screen.Size()
	row := int(math.Floor(y))
	if row < 0 || row >= height {
		return
	}
	style := d.style.Foreground(color(fg))
	col := int(math.Round(x))
	for _, r := range str {
		cells := text.RuneCells(r)
		if cells == 0 {
			continue
		}
		if col >= 0 && col+cells <= width {
			d.screen.SetContent(col, row, r, nil, style)
		}
		col += cells
	}
}

func (d *tcellDevice) Show() error {
	d.screen.Show()
	return nil
}

func (d *tcellDevice) Stop() {
	d.lc.Cancel()
	d.screen.Fini()
	d.lc.Stop()
	if d.output != nil {
		d.output.SetForegroundColor(d.fg)
		d.output.SetBackgroundColor(d.bg)
	}
}

func color(c device.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
