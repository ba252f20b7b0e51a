package device

import (
	"fmt"
	"image/color"
)

// Device is a surface the marquee is drawn on, one frame at a time.
// Coordinates are in the device's own unit: pixels for image based
// devices, cells for terminals.
type Device interface {
	Size() (width, height float64)
	Clear(bg Color)
	Text(text string, x, y float64, fg Color)
	Show() error
}

type Color struct {
	R, G, B byte
}

var (
	White = Color{R: 255, G: 255, B: 255}
	Green = Color{R: 0, G: 228, B: 48}
	Black = Color{}
)

func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return fmt.Sprintf("Color{R: %d, G: %d, B: %d}", c.R, c.G, c.B)
}
