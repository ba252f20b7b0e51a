package config

import (
	"math"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

type Driver string

const (
	Terminal Driver = "terminal"
	Window   Driver = "window"
	Frames   Driver = "frames"
)

const (
	Title           = "Vertical Text Marquee"
	DefaultFontSize = 64
	MaxFontSize     = 180
	DefaultWidth    = 1024
	DefaultHeight   = 768
	DefaultFPS      = 60
	TerminalFPS     = 10
	MinSpeed        = 1e-3
)

type Config struct {
	TextFile   string  `toml:"textfile"`
	FontSize   int     `toml:"fontsize"`
	Background string  `toml:"bgcolor"`
	Foreground string  `toml:"fgcolor"`
	Font       string  `toml:"font"`
	Speed      float64 `toml:"speed"`
	FPS        int     `toml:"fps"`
	Driver     Driver  `toml:"driver"`
	Frames     int     `toml:"frames"`
	OutDir     string  `toml:"out"`
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	LogFile    string  `toml:"log_file"`
	Debug      bool    `toml:"-"`
}

func Default() Config {
	return Config{
		FontSize: DefaultFontSize,
		Speed:    1,
		Driver:   Terminal,
		OutDir:   "frames",
		Width:    DefaultWidth,
		Height:   DefaultHeight,
	}
}

// Dir is $XDG_CONFIG_HOME/marquee, or %APPDATA%\marquee on Windows.
func Dir() string {
	var base string

	if runtime.GOOS == "windows" {
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	} else {
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, _ := os.UserHomeDir()
			base = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(base, "marquee")
}

func DefaultPath() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the TOML file at path over the defaults. A missing file at the
// default location is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, errors.Wrap(err, "reading config")
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing %s", path)
	}
	return cfg, nil
}

// BindFlags registers the command line flags writing into cfg.
func BindFlags(flags *pflag.FlagSet, cfg *Config) {
	flags.StringVarP(&cfg.TextFile, "textfile", "t", cfg.TextFile, "Name of text file being loaded and displayed")
	flags.IntVarP(&cfg.FontSize, "fontsize", "f", cfg.FontSize, "Size of the font used to display the text")
	flags.StringVarP(&cfg.Background, "bgcolor", "b", cfg.Background, `Background color in hex or RGB format (examples: "#00FF00", "000-255-000")`)
	flags.StringVarP(&cfg.Foreground, "fgcolor", "c", cfg.Foreground, `Text color in hex or RGB format (examples: "#00FF00", "000-255-000")`)
	flags.StringVar(&cfg.Font, "font", cfg.Font, "TTF or OTF font file (default: embedded Go Regular)")
	flags.Float64Var(&cfg.Speed, "speed", cfg.Speed, "Scrolling speed in pixels (or rows) per frame")
	flags.IntVar(&cfg.FPS, "fps", cfg.FPS, "Target frame rate (default: 60, 10 in a terminal)")
	flags.StringVar((*string)(&cfg.Driver), "driver", string(cfg.Driver), "Where to render: terminal, window or frames")
	flags.IntVar(&cfg.Frames, "frames", cfg.Frames, "Number of frames to write with the frames driver (default: one full cycle)")
	flags.StringVar(&cfg.OutDir, "out", cfg.OutDir, "Directory receiving PNG frames")
	flags.IntVar(&cfg.Width, "width", cfg.Width, "Window or frame width in pixels")
	flags.IntVar(&cfg.Height, "height", cfg.Height, "Window or frame height in pixels")
	flags.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write logs to this file")
	flags.BoolVarP(&cfg.Debug, "debug", "d", cfg.Debug, "Enable debug logging")
}

// Override copies the values of every flag set on the command line from
// flagged into cfg.
func (cfg *Config) Override(flags *pflag.FlagSet, flagged Config) {
	flags.Visit(func(flag *pflag.Flag) {
		switch flag.Name {
		case "textfile":
			cfg.TextFile = flagged.TextFile
		case "fontsize":
			cfg.FontSize = flagged.FontSize
		case "bgcolor":
			cfg.Background = flagged.Background
		case "fgcolor":
			cfg.Foreground = flagged.Foreground
		case "font":
			cfg.Font = flagged.Font
		case "speed":
			cfg.Speed = flagged.Speed
		case "fps":
			cfg.FPS = flagged.FPS
		case "driver":
			cfg.Driver = flagged.Driver
		case "frames":
			cfg.Frames = flagged.Frames
		case "out":
			cfg.OutDir = flagged.OutDir
		case "width":
			cfg.Width = flagged.Width
		case "height":
			cfg.Height = flagged.Height
		case "log-file":
			cfg.LogFile = flagged.LogFile
		case "debug":
			cfg.Debug = flagged.Debug
		}
	})
}

func (cfg *Config) Validate() error {
	switch cfg.Driver {
	case Terminal, Window, Frames:
	default:
		return errors.Errorf("unknown driver %q", cfg.Driver)
	}
	if cfg.Driver != Terminal && (cfg.Width <= 0 || cfg.Height <= 0) {
		return errors.Errorf("invalid size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Frames < 0 {
		return errors.Errorf("invalid frame count %d", cfg.Frames)
	}
	// Zero keeps the default speed.
	if math.IsNaN(cfg.Speed) || math.IsInf(cfg.Speed, 0) || cfg.Speed < 0 ||
		(cfg.Speed > 0 && cfg.Speed < MinSpeed) {
		return errors.Errorf("invalid speed %g, must be at least %g", cfg.Speed, MinSpeed)
	}
	return nil
}

func (cfg *Config) TargetFPS() int {
	if cfg.FPS > 0 {
		return cfg.FPS
	}
	if cfg.Driver == Terminal {
		return TerminalFPS
	}
	return DefaultFPS
}
