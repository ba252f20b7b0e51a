package fonts

import (
	"os"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const (
	DefaultSize = 64
	DPI         = 72
	cachedFaces = 8
)

// Bank hands out font faces of one font family in different sizes.
type Bank struct {
	font  *opentype.Font
	faces *lru.Cache[float64, font.Face]
}

// Load parses the TTF/OTF file at path. An empty path selects the embedded
// Go Regular font.
func Load(path string) (*Bank, error) {
	data := goregular.TTF
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "reading font")
		}
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing font %q", path)
	}

	faces, err := lru.NewWithEvict(cachedFaces, func(_ float64, face font.Face) {
		face.Close()
	})
	if err != nil {
		return nil, err
	}
	return &Bank{font: parsed, faces: faces}, nil
}

// Face returns an anti-aliased face for the given size in pixels.
func (b *Bank) Face(size float64) (font.Face, error) {
	if size <= 0 {
		size = DefaultSize
	}
	if face, ok := b.faces.Get(size); ok {
		return face, nil
	}
	face, err := opentype.NewFace(b.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     DPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "creating face of size %g", size)
	}
	b.faces.Add(size, face)
	return face, nil
}

func (b *Bank) Close() {
	b.faces.Purge()
}
