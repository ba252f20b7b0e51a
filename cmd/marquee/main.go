package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"marquee/config"
	"marquee/controller"
	"marquee/device/frames"
	"marquee/device/tcell"
	"marquee/device/window"
	"marquee/fonts"
	m "marquee/model"
	"marquee/scroll"
	"marquee/stream"
	"marquee/text"

	"github.com/charmbracelet/fang"
	"github.com/lmittmann/tint"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func main() {
	flagged := config.Default()
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "marquee [flags]",
		Short: "Vertical text marquee",
		Long: `Marquee scrolls lines of text up the screen in an endless loop,
in the terminal, in a window or into PNG frames.`,
		Example: `  # Scroll the built-in text in the terminal
  marquee

  # Scroll a text file in a window with custom colors
  marquee --driver window -t credits.txt -b "#000000" -c 255-255-000

  # Write one full cycle as PNG frames
  marquee --driver frames --out ./frames`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg.Override(cmd.Flags(), flagged)
			if err := cfg.Validate(); err != nil {
				return err
			}

			closeLog, err := setupLogging(cfg)
			if err != nil {
				return err
			}
			defer closeLog()

			return run(cmd.Context(), cfg)
		},
	}

	config.BindFlags(rootCmd.Flags(), &flagged)
	rootCmd.Flags().StringVar(&configPath, "config", "", "Config file (default: "+config.DefaultPath()+")")

	if err := fang.Execute(context.Background(), rootCmd,
		fang.WithVersion("v0.1.0"),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

func setupLogging(cfg config.Config) (func(), error) {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	var w io.Writer = os.Stderr
	closeLog := func() {}
	switch {
	case cfg.LogFile != "":
		file, err := os.OpenFile(cfg.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return nil, errors.Wrap(err, "opening log file")
		}
		w = file
		closeLog = func() { file.Close() }
	case cfg.Driver == config.Terminal:
		// The terminal belongs to the marquee.
		w = io.Discard
	}

	slog.SetDefault(slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    cfg.LogFile != "",
	})))
	return closeLog, nil
}

func run(ctx context.Context, cfg config.Config) error {
	bg, fg := cfg.Colors()
	palette := controller.Palette{Background: bg, Foreground: fg}
	engine := scroll.New(cfg.Speed)
	events := stream.NewStream[m.Event]("events")
	defer events.Close()
	lines := cfg.Lines()

	if cfg.Driver == config.Terminal {
		marquee := controller.NewMarquee(text.Layout(lines, text.Cells{}), engine, palette)
		dev, err := tcell.NewDevice(ctx, config.Title, events)
		if err != nil {
			return err
		}
		defer dev.Stop()
		if slog.Default().Enabled(ctx, slog.LevelDebug) {
			_, height := dev.Size()
			slog.Debug("layout", "lines", len(lines), "cycle", engine.Cycle(marquee.Lines(), height))
		}
		return controller.Run(ctx, dev, controller.New(marquee, events), cfg.TargetFPS())
	}

	bank, err := fonts.Load(cfg.Font)
	if err != nil {
		return err
	}
	defer bank.Close()
	face, err := bank.Face(float64(cfg.ClampedFontSize()))
	if err != nil {
		return err
	}
	marquee := controller.NewMarquee(text.Layout(lines, text.Face{Face: face}), engine, palette)
	c := controller.New(marquee, events)

	if cfg.Driver == config.Window {
		return window.Run(c, events, face, window.Options{
			Title:  config.Title,
			Width:  cfg.Width,
			Height: cfg.Height,
			FPS:    cfg.TargetFPS(),
		})
	}

	count := cfg.Frames
	if count == 0 {
		count = engine.Cycle(marquee.Lines(), float64(cfg.Height))
		if count == 0 {
			return errors.Errorf("speed %g never completes a cycle at height %d, set --frames", engine.Speed, cfg.Height)
		}
	}
	dev, err := frames.NewDevice(cfg.Width, cfg.Height, face, cfg.OutDir)
	if err != nil {
		return err
	}
	slog.Info("writing frames", "count", count, "dir", cfg.OutDir)
	for range count {
		if err := c.Tick(dev); err != nil {
			return err
		}
	}
	slog.Info("wrote frames", "count", dev.Frames())
	return nil
}
