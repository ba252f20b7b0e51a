package text

import (
	"testing"

	m "marquee/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type countingMeasurer struct {
	calls int
}

func (c *countingMeasurer) Measure(s string) (float64, float64) {
	c.calls++
	return float64(len(s) * 10), 20
}

func TestSplit(t *testing.T) {
	for _, tc := range []struct {
		name string
		text string
		want []string
	}{
		{"single", "hello", []string{"hello"}},
		{"trims", "  a  \n\tb\t", []string{"a", "b"}},
		{"keeps empty", "a\n\n  \nb", []string{"a", "", "", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b", ""}},
		{"empty", "", []string{""}},
		{"nfc", "e\u0301", []string{"\u00e9"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Split(tc.text))
		})
	}
}

func TestLayout(t *testing.T) {
	measurer := &countingMeasurer{}
	lines := Layout([]string{"abc", "", "de"}, measurer)

	require.Len(t, lines, 3)
	assert.Equal(t, m.NewLine("abc", 30, 20), lines[0])
	assert.Equal(t, m.NewLine("", 0, 0), lines[1])
	assert.Equal(t, m.NewLine("de", 20, 20), lines[2])
	assert.Equal(t, 2, measurer.calls, "empty lines are not measured")
	for _, line := range lines {
		assert.False(t, line.Offset.Placed())
	}
}

func TestLayoutIsPure(t *testing.T) {
	parsed, err := opentype.Parse(goregular.TTF)
	require.NoError(t, err)
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{Size: 32, DPI: 72})
	require.NoError(t, err)
	defer face.Close()

	fragments := Split("The quick brown fox\n\njumps over the lazy dog")
	first := Layout(fragments, Face{Face: face})
	second := Layout(fragments, Face{Face: face})
	assert.Equal(t, first, second)

	assert.Greater(t, first[0].Width, 0.0)
	assert.Greater(t, first[0].Height, 0.0)
	assert.Equal(t, first[0].Height, first[2].Height)
	assert.Zero(t, first[1].Width)
	assert.Zero(t, first[1].Height)
}

func TestCells(t *testing.T) {
	for _, tc := range []struct {
		text          string
		width, height float64
	}{
		{"", 0, 0},
		{"hello", 5, 1},
		{"\x1b[31mred\x1b[0m", 3, 1},
		{"日本", 4, 1},
	} {
		w, h := Cells{}.Measure(tc.text)
		assert.Equal(t, tc.width, w, "%q", tc.text)
		assert.Equal(t, tc.height, h, "%q", tc.text)
	}
}

func TestRuneCells(t *testing.T) {
	assert.Equal(t, 1, RuneCells('a'))
	assert.Equal(t, 2, RuneCells('日'))
}
