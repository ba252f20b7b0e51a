package controller

import (
	"context"
	"log/slog"
	"time"

	"marquee/device"
	m "marquee/model"
	"marquee/stream"
)

type Controller struct {
	marquee *Marquee
	events  *stream.Stream[m.Event]

	screenSize m.ScreenSize
	paused     bool
	quit       bool

	frames   int
	fps      int
	prevTick time.Time
}

func New(marquee *Marquee, events *stream.Stream[m.Event]) *Controller {
	return &Controller{marquee: marquee, events: events, prevTick: time.Now()}
}

// Run renders one frame per tick until a Quit event arrives or ctx is done.
func Run(ctx context.Context, dev device.Device, c *Controller, fps int) error {
	if fps <= 0 {
		fps = 60
	}
	frameTicker := time.NewTicker(time.Second / time.Duration(fps))
	defer frameTicker.Stop()
	fpsTicker := time.NewTicker(time.Second)
	defer fpsTicker.Stop()

	for {
		if err := c.Tick(dev); err != nil {
			return err
		}
		if c.quit {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case tick := <-fpsTicker.C:
			c.handleTick(tick)
			if !waitFrame(ctx, frameTicker.C) {
				return nil
			}
		case <-frameTicker.C:
		}
	}
}

// waitFrame blocks until the next frame is due. It returns false if ctx is
// done first.
func waitFrame(ctx context.Context, frames <-chan time.Time) bool {
	select {
	case <-ctx.Done():
		return false
	case <-frames:
		return true
	}
}

// Tick handles pending events and renders a frame. A paused marquee is
// drawn again without moving.
func (c *Controller) Tick(dev device.Device) error {
	c.Update(dev.Size())
	if c.quit {
		return nil
	}
	return c.marquee.Draw(dev)
}

// Update handles pending events and advances the marquee unless paused.
func (c *Controller) Update(width, height float64) {
	c.HandleEvents()
	if c.quit || c.paused {
		return
	}
	c.frames++
	c.marquee.Step(width, height)
}

func (c *Controller) HandleEvents() {
	for _, event := range c.events.PullAll() {
		c.handleEvent(event)
	}
}

func (c *Controller) handleEvent(event m.Event) {
	slog.Debug("event", "event", event)
	switch event := event.(type) {
	case m.ScreenSize:
		c.screenSize = event
	case m.Quit:
		c.quit = true
		slog.Debug("quitting", "events", c.events)
	case m.TogglePause:
		c.paused = !c.paused
	case m.Restart:
		c.marquee.Restart()
	default:
		slog.Warn("unhandled event", "event", event)
	}
}

func (c *Controller) Paused() bool {
	return c.paused
}

func (c *Controller) Quit() bool {
	return c.quit
}

func (c *Controller) Marquee() *Marquee {
	return c.marquee
}
