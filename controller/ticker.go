package controller

import (
	"log/slog"
	"time"
)

func (c *Controller) handleTick(now time.Time) {
	dur := now.Sub(c.prevTick).Seconds()
	if dur > 0 {
		c.fps = int(float64(c.frames) / dur)
	}
	c.prevTick = now
	c.frames = 0
	slog.Debug("frame rate", "fps", c.fps, "screen", c.screenSize)
}

func (c *Controller) FPS() int {
	return c.fps
}
