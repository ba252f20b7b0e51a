// Package window shows the marquee in a desktop window.
package window

import (
	"log/slog"
	"math"

	"marquee/controller"
	"marquee/device"
	m "marquee/model"
	"marquee/stream"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebitentext "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
)

type Options struct {
	Title         string
	Width, Height int
	FPS           int
}

type game struct {
	controller *controller.Controller
	events     *stream.Stream[m.Event]
	face       font.Face
	width      int
	height     int
}

// Run opens the window and blocks until it is closed.
func Run(c *controller.Controller, events *stream.Stream[m.Event], face font.Face, opts Options) error {
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.FPS > 0 {
		ebiten.SetTPS(opts.FPS)
	}

	g := &game{controller: c, events: events, face: face, width: opts.Width, height: opts.Height}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "running window")
	}
	return nil
}

func (g *game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		g.events.Push(m.Quit{})
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.events.Push(m.TogglePause{})
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.events.Push(m.Restart{})
	}

	g.controller.Update(float64(g.width), float64(g.height))
	if g.controller.Quit() {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if err := g.controller.Marquee().Draw(&windowDevice{screen: screen, face: g.face}); err != nil {
		slog.Error("drawing frame", "err", err)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.events.Push(m.ScreenSize{Width: outsideWidth, Height: outsideHeight})
	}
	return outsideWidth, outsideHeight
}

type windowDevice struct {
	screen *ebiten.Image
	face   font.Face
}

func (d *windowDevice) Size() (float64, float64) {
	size := d.screen.Bounds().Size()
	return float64(size.X), float64(size.Y)
}

func (d *windowDevice) Clear(bg device.Color) {
	d.screen.Fill(bg.RGBA())
}

// Text draws str with its top left corner at (x, y).
func (d *windowDevice) Text(str string, x, y float64, fg device.Color) {
	ebitentext.Draw(d.screen, str, d.face, int(x), baseline(d.face, y), fg.RGBA())
}

// baseline converts the top edge y of a line into the baseline ebiten draws at.
func baseline(face font.Face, y float64) int {
	return int(math.Floor(y)) + face.Metrics().Ascent.Ceil()
}

func (d *windowDevice) Show() error {
	return nil
}
