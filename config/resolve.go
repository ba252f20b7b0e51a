package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"marquee/device"
	"marquee/text"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

const DefaultText = `Lorem ipsum dolor sit amet,
                   consetetur sadipscing elitr,
                   sed diam nonumy eirmod tempor
                   invidunt ut labore et dolore
                   magna aliquyam erat, sed diam
                   voluptua. At vero eos et accusam
                   et justo duo dolores et ea rebum.
                   Stet clita kasd gubergren, no sea
                   takimata sanctus est Lorem ipsum
                   dolor sit amet. Lorem ipsum dolor
                   sit amet, consetetur sadipscing elitr,
                   sed diam nonumy eirmod tempor invidunt
                   ut labore et dolore magna aliquyam erat,
                   sed diam voluptua. At vero eos et
                   accusam et justo duo dolores et ea
                   rebum. Stet clita kasd gubergren, no
                   sea takimata sanctus est Lorem ipsum
                   dolor sit amet.
                   ****`

var (
	hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	rgbColor = regexp.MustCompile(`^([0-9]{1,3})-([0-9]{1,3})-([0-9]{1,3})$`)
)

// ParseColor accepts "#RRGGBB" and decimal "RRR-GGG-BBB".
func ParseColor(s string) (device.Color, error) {
	if hexColor.MatchString(s) {
		c, err := colorful.Hex(s)
		if err != nil {
			return device.Color{}, errors.Wrapf(err, "invalid color %q", s)
		}
		r, g, b := c.RGB255()
		return device.Color{R: r, G: g, B: b}, nil
	}
	if parts := rgbColor.FindStringSubmatch(s); parts != nil {
		var rgb [3]byte
		for i, part := range parts[1:] {
			v, err := strconv.ParseUint(part, 10, 8)
			if err != nil {
				return device.Color{}, errors.Errorf("invalid color %q: component %q out of range", s, part)
			}
			rgb[i] = byte(v)
		}
		return device.Color{R: rgb[0], G: rgb[1], B: rgb[2]}, nil
	}
	return device.Color{}, errors.Errorf("invalid color format %q", s)
}

// Colors resolves the configured colors, keeping the default for missing or
// invalid ones.
func (cfg *Config) Colors() (bg, fg device.Color) {
	return resolveColor("background", cfg.Background, device.Green),
		resolveColor("foreground", cfg.Foreground, device.White)
}

func resolveColor(role, value string, fallback device.Color) device.Color {
	if value == "" {
		return fallback
	}
	c, err := ParseColor(value)
	if err != nil {
		slog.Warn("invalid color format", "role", role, "color", value)
		return fallback
	}
	slog.Info("using color", "role", role, "color", c.Hex())
	return c
}

// ClampedFontSize returns the configured font size if it lies in (0, 180)
// and the default otherwise.
func (cfg *Config) ClampedFontSize() int {
	if cfg.FontSize > 0 && cfg.FontSize < MaxFontSize {
		return cfg.FontSize
	}
	slog.Warn("font size out of range, using default", "fontsize", cfg.FontSize, "default", DefaultFontSize)
	return DefaultFontSize
}

// Lines returns the trimmed lines of the configured text file, or of the
// built-in text when no file is configured or it cannot be read.
func (cfg *Config) Lines() []string {
	var lines []string
	if cfg.TextFile != "" {
		lines = loadText(cfg.TextFile)
	}
	if len(lines) == 0 {
		lines = text.Split(DefaultText)
	}
	return lines
}

func loadText(path string) []string {
	abs := absPath(path)
	if _, err := os.Stat(path); err != nil {
		slog.Error("file not found", "path", abs)
		return nil
	}
	slog.Info("loading text file", "path", abs)
	content, err := os.ReadFile(path)
	if err != nil {
		slog.Error("error loading text file", "path", abs, "err", err)
		return nil
	}
	return text.Split(string(content))
}

func absPath(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
