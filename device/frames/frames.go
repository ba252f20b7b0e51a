// Package frames renders the marquee into images and writes every shown
// frame as a PNG file.
package frames

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"marquee/device"

	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

type framesDevice struct {
	canvas *image.RGBA
	face   font.Face
	dir    string
	frame  int
}

// NewDevice creates a device of the given pixel size writing frames to dir.
// An empty dir keeps frames in memory only.
func NewDevice(width, height int, face font.Face, dir string) (*framesDevice, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("invalid frame size %dx%d", width, height)
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "creating frame directory")
		}
	}
	return &framesDevice{
		canvas: image.NewRGBA(image.Rect(0, 0, width, height)),
		face:   face,
		dir:    dir,
	}, nil
}

func (d *framesDevice) Size() (float64, float64) {
	size := d.canvas.Bounds().Size()
	return float64(size.X), float64(size.Y)
}

func (d *framesDevice) Clear(bg device.Color) {
	draw.Draw(d.canvas, d.canvas.Bounds(), image.NewUniform(bg.RGBA()), image.Point{}, draw.Src)
}

// Text draws str with its top left corner at (x, y).
func (d *framesDevice) Text(str string, x, y float64, fg device.Color) {
	drawer := font.Drawer{
		Dst:  d.canvas,
		Src:  image.NewUniform(fg.RGBA()),
		Face: d.face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(x * 64),
			Y: fixed.Int26_6(y*64) + d.face.Metrics().Ascent,
		},
	}
	drawer.DrawString(str)
}

func (d *framesDevice) Show() error {
	d.frame++
	if d.dir == "" {
		return nil
	}
	path := filepath.Join(d.dir, fmt.Sprintf("frame-%05d.png", d.frame))
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating frame file")
	}
	if err := png.Encode(file, d.canvas); err != nil {
		file.Close()
		return errors.Wrapf(err, "encoding %s", path)
	}
	return file.Close()
}

func (d *framesDevice) Frames() int {
	return d.frame
}
