package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"marquee/device"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorContains(t, err, "reading config")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path := filepath.Join(dir, "marquee", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`
textfile = "credits.txt"
fontsize = 32
bgcolor = "#000000"
driver = "window"
speed = 2.5
`), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "credits.txt", cfg.TextFile)
	assert.Equal(t, 32, cfg.FontSize)
	assert.Equal(t, "#000000", cfg.Background)
	assert.Equal(t, Window, cfg.Driver)
	assert.Equal(t, 2.5, cfg.Speed)
	assert.Equal(t, DefaultWidth, cfg.Width, "unset keys keep defaults")

	require.NoError(t, os.WriteFile(path, []byte(`fontsize = "big"`), 0o644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "parsing")
}

func TestFlagsOverrideFile(t *testing.T) {
	flagged := Default()
	flags := pflag.NewFlagSet("marquee", pflag.ContinueOnError)
	BindFlags(flags, &flagged)
	require.NoError(t, flags.Parse([]string{"-f", "100", "--driver", "frames", "-c", "255-0-0"}))

	cfg := Default()
	cfg.FontSize = 32
	cfg.TextFile = "from-file.txt"
	cfg.Override(flags, flagged)

	assert.Equal(t, 100, cfg.FontSize)
	assert.Equal(t, Frames, cfg.Driver)
	assert.Equal(t, "255-0-0", cfg.Foreground)
	assert.Equal(t, "from-file.txt", cfg.TextFile)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())

	cfg.Driver = "opengl"
	assert.ErrorContains(t, cfg.Validate(), `unknown driver "opengl"`)

	cfg = Default()
	cfg.Driver = Window
	cfg.Width = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Frames = -1
	assert.Error(t, cfg.Validate())

	for _, speed := range []float64{-1, 1e-20, math.NaN(), math.Inf(1)} {
		cfg = Default()
		cfg.Speed = speed
		assert.ErrorContains(t, cfg.Validate(), "invalid speed", "speed %g", speed)
	}
	cfg = Default()
	cfg.Speed = 0
	assert.NoError(t, cfg.Validate())
	cfg.Speed = MinSpeed
	assert.NoError(t, cfg.Validate())
}

func TestTargetFPS(t *testing.T) {
	cfg := Default()
	assert.Equal(t, TerminalFPS, cfg.TargetFPS())
	cfg.Driver = Window
	assert.Equal(t, DefaultFPS, cfg.TargetFPS())
	cfg.FPS = 30
	assert.Equal(t, 30, cfg.TargetFPS())
}

func TestParseColor(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want device.Color
		ok   bool
	}{
		{"#00FF00", device.Color{G: 255}, true},
		{"#1a2B3c", device.Color{R: 0x1a, G: 0x2b, B: 0x3c}, true},
		{"000-255-000", device.Color{G: 255}, true},
		{"1-2-3", device.Color{R: 1, G: 2, B: 3}, true},
		{"256-0-0", device.Color{}, false},
		{"#00FF0", device.Color{}, false},
		{"green", device.Color{}, false},
		{"", device.Color{}, false},
	} {
		t.Run(tc.in, func(t *testing.T) {
			c, err := ParseColor(tc.in)
			if !tc.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, c)
		})
	}
}

func TestColors(t *testing.T) {
	cfg := Default()
	bg, fg := cfg.Colors()
	assert.Equal(t, device.Green, bg)
	assert.Equal(t, device.White, fg)

	cfg.Background = "#000000"
	cfg.Foreground = "not a color"
	bg, fg = cfg.Colors()
	assert.Equal(t, device.Black, bg)
	assert.Equal(t, device.White, fg)
}

func TestClampedFontSize(t *testing.T) {
	for size, want := range map[int]int{
		1:   1,
		64:  64,
		179: 179,
		0:   DefaultFontSize,
		-5:  DefaultFontSize,
		180: DefaultFontSize,
	} {
		cfg := Config{FontSize: size}
		assert.Equal(t, want, cfg.ClampedFontSize(), "size %d", size)
	}
}

func TestLines(t *testing.T) {
	cfg := Default()
	lines := cfg.Lines()
	require.Len(t, lines, 19)
	assert.Equal(t, "Lorem ipsum dolor sit amet,", lines[0])
	assert.Equal(t, "consetetur sadipscing elitr,", lines[1])
	assert.Equal(t, "****", lines[18])

	dir := t.TempDir()
	path := filepath.Join(dir, "credits.txt")
	require.NoError(t, os.WriteFile(path, []byte("  Director  \n\nCast\n"), 0o644))
	cfg.TextFile = path
	assert.Equal(t, []string{"Director", "", "Cast", ""}, cfg.Lines())

	cfg.TextFile = filepath.Join(dir, "missing.txt")
	assert.Equal(t, lines, cfg.Lines(), "missing files fall back to the built-in text")
}
